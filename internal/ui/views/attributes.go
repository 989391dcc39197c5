package views

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Attributes is an open-ended bag of presentation attributes passed
// through to the widget's frame. Unknown keys are kept for hosts to read.
type Attributes map[string]string

// Known attribute keys
const (
	AttrWidth            = "width"
	AttrForeground       = "foreground"
	AttrBackground       = "background"
	AttrBorder           = "border"
	AttrBorderForeground = "border-foreground"
	AttrMultiple         = "multiple"
)

// Merge returns a new bag with other's entries layered over a's
func (a Attributes) Merge(other Attributes) Attributes {
	out := make(Attributes, len(a)+len(other))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Get returns the value for key and whether it is set
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Has reports whether key is set
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Keys returns the attribute names in sorted order
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Width returns the width attribute, or 0 when unset or malformed
func (a Attributes) Width() int {
	n, err := strconv.Atoi(a[AttrWidth])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Apply restyles s with the known attributes
func (a Attributes) Apply(s lipgloss.Style) lipgloss.Style {
	if w := a.Width(); w > 0 {
		s = s.Width(w)
	}
	if v, ok := a[AttrForeground]; ok {
		s = s.Foreground(lipgloss.Color(v))
	}
	if v, ok := a[AttrBackground]; ok {
		s = s.Background(lipgloss.Color(v))
	}
	if v, ok := a[AttrBorderForeground]; ok {
		s = s.BorderForeground(lipgloss.Color(v))
	}
	if v, ok := a[AttrBorder]; ok {
		switch v {
		case "none":
			s = s.UnsetBorderStyle().BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false)
		case "rounded":
			s = s.Border(lipgloss.RoundedBorder())
		case "thick":
			s = s.Border(lipgloss.ThickBorder())
		case "double":
			s = s.Border(lipgloss.DoubleBorder())
		case "normal":
			s = s.Border(lipgloss.NormalBorder())
		}
	}
	return s
}
