// Package display derives the text a closed select shows for its value.
package display

import (
	"fmt"

	"selectbox/internal/domain"
)

// Formatter turns a selection into the human-readable summary
type Formatter struct{}

// NewFormatter creates a display formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Single returns the label of the option whose key equals key, or "" when
// nothing matches.
func (f *Formatter) Single(options []domain.Option, key string) string {
	if opt, ok := domain.FindOption(options, key); ok {
		return opt.Label
	}
	return ""
}

// Multiple returns the label of the first selected value followed by
// "+ (k)" when k more values are selected. An unknown first value yields
// an empty label but keeps the suffix.
func (f *Formatter) Multiple(options []domain.Option, values []any) string {
	if len(values) == 0 {
		return ""
	}
	label := ""
	if opt, ok := domain.FindOption(options, domain.Key(values[0])); ok {
		label = opt.Label
	}
	if len(values) >= 2 {
		label += Suffix(len(values) - 1)
	}
	return label
}

// Format dispatches on the select type
func (f *Formatter) Format(typ domain.Type, options []domain.Option, value any) string {
	if typ == domain.TypeMultiple {
		return f.Multiple(options, domain.ValueList(value))
	}
	v := domain.ScalarValue(value)
	if v == nil {
		return ""
	}
	return f.Single(options, domain.Key(v))
}

// Suffix returns the summary appended for k additional selected values
func Suffix(k int) string {
	return fmt.Sprintf("+ (%d)", k)
}
