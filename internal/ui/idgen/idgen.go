// Package idgen supplies default identifiers for widgets that were not
// given one by their owner.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultPrefix is prepended to sequence identifiers
const DefaultPrefix = "select_____"

// Provider hands out identifiers that do not collide within one process
type Provider interface {
	NextID() string
}

// Sequence numbers widgets in creation order
type Sequence struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequence creates a sequence with DefaultPrefix
func NewSequence() *Sequence {
	return NewSequenceWithPrefix(DefaultPrefix)
}

// NewSequenceWithPrefix creates a sequence with a custom prefix
func NewSequenceWithPrefix(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NextID returns the prefix followed by the next number, starting at 1
func (s *Sequence) NextID() string {
	return s.prefix + strconv.FormatUint(s.counter.Add(1), 10)
}

// UUID hands out random identifiers
type UUID struct {
	prefix string
}

// NewUUID creates a UUID provider with DefaultPrefix
func NewUUID() *UUID {
	return &UUID{prefix: DefaultPrefix}
}

// NextID returns the prefix followed by a random UUID
func (u *UUID) NextID() string {
	return u.prefix + uuid.NewString()
}

// Static always returns the same identifier
type Static string

// NextID returns s
func (s Static) NextID() string {
	return string(s)
}

var defaultProvider Provider = NewSequence()

// Default returns the process-wide sequence used when a widget is built
// without a provider
func Default() Provider {
	return defaultProvider
}

// RowID returns the identifier of the row for key inside widget id.
// The select-all row uses an empty key.
func RowID(id, key string) string {
	return id + "____" + key
}
