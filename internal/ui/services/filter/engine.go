package filter

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"selectbox/internal/domain"
)

// Engine filters an option list by search text. It holds no state besides
// its mode; results are recomputed on every call.
type Engine struct {
	mode Mode
}

// NewEngine creates a filter engine
func NewEngine(mode Mode) *Engine {
	return &Engine{mode: mode}
}

// Mode returns the engine's matching mode
func (e *Engine) Mode() Mode {
	if e == nil {
		return ModeSubstring
	}
	return e.mode
}

// Apply returns the options matching query, in their original order.
// An empty query matches everything.
func (e *Engine) Apply(options []domain.Option, query string) []domain.Option {
	if query == "" {
		out := make([]domain.Option, len(options))
		copy(out, options)
		return out
	}
	if e.Mode() == ModeFuzzy {
		return fuzzyFilter(options, query)
	}
	return Substring(options, query)
}

// Substring keeps the options whose label contains query, ignoring case
func Substring(options []domain.Option, query string) []domain.Option {
	q := strings.ToLower(query)
	out := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), q) {
			out = append(out, opt)
		}
	}
	return out
}

// Matches reports whether a label passes the substring filter
func Matches(label, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(label), strings.ToLower(query))
}

type labels []domain.Option

func (l labels) String(i int) string { return l[i].Label }
func (l labels) Len() int            { return len(l) }

func fuzzyFilter(options []domain.Option, query string) []domain.Option {
	matches := fuzzy.FindFrom(query, labels(options))

	// fuzzy ranks by score; keep option order so row indices stay stable
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	sort.Ints(idx)

	out := make([]domain.Option, 0, len(idx))
	for _, i := range idx {
		out = append(out, options[i])
	}
	return out
}
