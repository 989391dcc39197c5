package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Control is a row's activation primitive
type Control interface {
	// Checked reports the control's visual state
	Checked() bool
	// Activate is a user activation (space or click). It returns the new
	// checked state and whether the control fired a change.
	Activate() (checked bool, changed bool)
	// Glyph renders the control without its label
	Glyph() string
}

// Radio is a single-choice control. Activating a checked radio does nothing.
type Radio struct {
	checked bool
}

// NewRadio creates a radio control
func NewRadio(checked bool) *Radio {
	return &Radio{checked: checked}
}

func (r *Radio) Checked() bool { return r.checked }

func (r *Radio) Activate() (bool, bool) {
	if r.checked {
		return true, false
	}
	r.checked = true
	return true, true
}

func (r *Radio) Glyph() string {
	if r.checked {
		return "(•)"
	}
	return "( )"
}

// Checkbox is an on/off control
type Checkbox struct {
	checked bool
}

// NewCheckbox creates a checkbox control
func NewCheckbox(checked bool) *Checkbox {
	return &Checkbox{checked: checked}
}

func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Activate() (bool, bool) {
	c.checked = !c.checked
	return c.checked, true
}

func (c *Checkbox) Glyph() string {
	if c.checked {
		return "[x]"
	}
	return "[ ]"
}

// Row is one line of the option list: a control followed by a label
type Row struct {
	ID       string
	Label    string
	Control  Control
	Focused  bool
	Selected bool
	// Highlighted marks special rows such as select-all
	Highlighted bool
	// Match is the search text to emphasise inside Label
	Match string
}

// Activate forwards to the row's control
func (r *Row) Activate() (bool, bool) {
	return r.Control.Activate()
}

// Render draws the row with the given styles and width
func (r *Row) Render(styles *Styles, width int) string {
	label := r.Label
	base := Compose(styles.Row,
		When(styles.SelectAll, r.Highlighted),
		When(styles.RowSelected, r.Selected),
	)
	if r.Match != "" {
		label = HighlightMatch(label, r.Match, styles.Highlight.Inherit(base), base)
	} else {
		label = base.Render(label)
	}
	line := base.Render(r.Control.Glyph()) + " " + label

	if w := lipgloss.Width(line); width > 0 && w < width {
		line += strings.Repeat(" ", width-w)
	}
	if r.Focused {
		return styles.RowFocused.Render(line)
	}
	return line
}
