package domain

import (
	"strings"

	"github.com/spf13/cast"
)

// Type is the selection mode of a select field
type Type string

const (
	TypeSingle   Type = "single"
	TypeMultiple Type = "multiple"
)

// ParseType converts a config string to a Type. Empty input means single.
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeSingle:
		return TypeSingle, true
	case TypeMultiple:
		return TypeMultiple, true
	default:
		return TypeSingle, false
	}
}

// Option is a label/value pair offered by a select field.
// Value is a string or a number; identity is Key(Value).
type Option struct {
	Label string
	Value any
}

// Key normalizes a raw option value for comparison. Numbers and strings
// compare equal when their string forms match, so 2 and "2" are the same key.
func Key(v any) string {
	return cast.ToString(v)
}

// Key returns the option's normalized identity
func (o Option) Key() string {
	return Key(o.Value)
}

// FindOption returns the first option whose key matches key
func FindOption(options []Option, key string) (Option, bool) {
	for _, opt := range options {
		if opt.Key() == key {
			return opt, true
		}
	}
	return Option{}, false
}

// ValueList coerces a raw value into an ordered sequence of values.
// Slices of any element type are flattened; a scalar becomes a one-element
// list and nil becomes an empty list.
func ValueList(v any) []any {
	switch vv := v.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, len(vv))
		copy(out, vv)
		return out
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out
	case []int:
		out := make([]any, len(vv))
		for i, n := range vv {
			out[i] = n
		}
		return out
	case []int64:
		out := make([]any, len(vv))
		for i, n := range vv {
			out[i] = n
		}
		return out
	case []float64:
		out := make([]any, len(vv))
		for i, n := range vv {
			out[i] = n
		}
		return out
	default:
		return []any{v}
	}
}

// ScalarValue coerces a raw value into a single value. A sequence yields
// its first element, or nil when empty.
func ScalarValue(v any) any {
	switch v.(type) {
	case []any, []string, []int, []int64, []float64:
		list := ValueList(v)
		if len(list) == 0 {
			return nil
		}
		return list[0]
	default:
		return v
	}
}

// IsEmptyValue reports whether an externally supplied value should be
// ignored when re-seeding a field: nil and the empty string carry nothing.
// An empty slice is a real value (it clears a multiple select).
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}
