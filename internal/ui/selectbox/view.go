package selectbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/domain"
	"selectbox/internal/ui/idgen"
	"selectbox/internal/ui/outside"
	"selectbox/internal/ui/services/filter"
	"selectbox/internal/ui/views"
)

const (
	toggleClosed = "▾"
	toggleOpen   = "▴"
)

// row is a rendered option line plus what activating it means
type row struct {
	views.Row
	option    domain.Option
	selectAll bool
}

// rows builds the rendered rows: the select-all row first when shown,
// then the filtered options
func (m *Model) rows() []row {
	filtered := m.Filtered()
	out := make([]row, 0, len(filtered)+1)

	if m.showSelectAll() {
		all := m.selection.AllSelected(filtered)
		out = append(out, row{
			Row: views.Row{
				ID:          idgen.RowID(m.id, ""),
				Label:       m.selectAllText,
				Control:     views.NewCheckbox(all),
				Selected:    all,
				Highlighted: true,
			},
			selectAll: true,
		})
	}

	for _, opt := range filtered {
		selected := m.selection.IsSelected(opt.Key())
		var control views.Control
		if m.typ == domain.TypeMultiple {
			control = views.NewCheckbox(selected)
		} else {
			control = views.NewRadio(selected)
		}
		out = append(out, row{
			Row: views.Row{
				ID:       idgen.RowID(m.id, opt.Key()),
				Label:    opt.Label,
				Control:  control,
				Selected: selected,
			},
			option: opt,
		})
	}
	return out
}

// frameStyle is the input frame with the attribute bag applied
func (m *Model) frameStyle() lipgloss.Style {
	s := views.Compose(m.styles.Frame, views.When(m.styles.FrameActive, m.focused))
	s = m.attrs.Apply(s)
	if s.GetWidth() == 0 {
		s = s.Width(DefaultWidth)
	}
	return s
}

// textWidth is the room left for text inside the frame, next to the toggle
func (m *Model) textWidth() int {
	s := m.frameStyle()
	w := s.GetWidth() - s.GetHorizontalPadding() - lipgloss.Width(toggleClosed) - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) inputLine() string {
	width := m.textWidth()

	var text string
	switch {
	case m.expansion.IsOpen():
		text = m.input.TextInput().View()
	case m.displayValue != "":
		text = m.styles.Input.Render(m.displayValue)
	default:
		text = m.styles.Placeholder.Render(m.placeholder)
	}
	text = lipgloss.NewStyle().MaxWidth(width).Render(text)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	toggle := toggleClosed
	if m.expansion.IsOpen() {
		toggle = toggleOpen
	}
	return text + " " + m.styles.Toggle.Render(toggle)
}

// layout is the rendered widget and where its regions are, relative to
// the widget's top-left corner
type layout struct {
	view        string
	labelHeight int
	frameHeight int
	frameWidth  int
	toggleZone  int
	rowsTop     int // line of the first visible row, below the frame
	firstRow    int
	lastRow     int // exclusive
}

func (m *Model) render() layout {
	var l layout
	var parts []string

	if m.label != "" {
		label := m.styles.Label.Render(m.label)
		l.labelHeight = lipgloss.Height(label)
		parts = append(parts, label)
	}

	fs := m.frameStyle()
	frame := fs.Render(m.inputLine())
	l.frameHeight = lipgloss.Height(frame)
	l.frameWidth = lipgloss.Width(frame)
	l.toggleZone = fs.GetBorderRightSize() + fs.GetPaddingRight() + lipgloss.Width(toggleClosed) + 1
	parts = append(parts, frame)

	if m.expansion.IsOpen() {
		parts = append(parts, m.renderRows(&l))
	}

	l.view = lipgloss.JoinVertical(lipgloss.Left, parts...)
	return l
}

func (m *Model) renderRows(l *layout) string {
	rows := m.rows()
	if len(rows) == 0 {
		return m.styles.List.Render(m.styles.Dim.Render("No matches"))
	}

	l.firstRow, l.lastRow = 0, len(rows)
	if m.maxRows > 0 && len(rows) > m.maxRows {
		l.firstRow = m.offset
		l.lastRow = min(m.offset+m.maxRows, len(rows))
	}

	width := l.frameWidth - m.styles.List.GetHorizontalFrameSize()
	match := ""
	if m.filter.Mode() == filter.ModeSubstring {
		match = m.expansion.Search()
	}

	var lines []string
	if l.firstRow > 0 {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↑ %d more", l.firstRow)))
		l.rowsTop = 1
	}
	for i := l.firstRow; i < l.lastRow; i++ {
		r := rows[i].Row
		r.Focused = i == m.nav.Index()
		if !rows[i].selectAll {
			r.Match = match
		}
		lines = append(lines, r.Render(m.styles, width))
	}
	if rest := len(rows) - l.lastRow; rest > 0 {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↓ %d more", rest)))
	}
	return m.styles.List.Render(strings.Join(lines, "\n"))
}

// View renders the label, the input frame and, when open, the rows
func (m *Model) View() string {
	return m.render().view
}

// Bounds is the screen rectangle the widget currently covers
func (m *Model) Bounds() outside.Rect {
	view := m.View()
	return outside.Rect{
		X:      m.originX,
		Y:      m.originY,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

type region int

const (
	regionNone region = iota
	regionInput
	regionToggle
	regionRow
)

type hit struct {
	region region
	row    int
}

// hitTest maps a screen cell to the widget region under it
func (m *Model) hitTest(x, y int) hit {
	l := m.render()
	bounds := outside.Rect{
		X:      m.originX,
		Y:      m.originY,
		Width:  lipgloss.Width(l.view),
		Height: lipgloss.Height(l.view),
	}
	if !bounds.Contains(x, y) {
		return hit{region: regionNone}
	}

	rx, ry := x-m.originX, y-m.originY

	// the label belongs to the input
	if ry < l.labelHeight {
		return hit{region: regionInput}
	}
	ry -= l.labelHeight

	if ry < l.frameHeight {
		if rx >= l.frameWidth-l.toggleZone && rx < l.frameWidth {
			return hit{region: regionToggle}
		}
		return hit{region: regionInput}
	}
	ry -= l.frameHeight

	index := l.firstRow + ry - l.rowsTop
	if ry < l.rowsTop || index >= l.lastRow {
		return hit{region: regionNone}
	}
	return hit{region: regionRow, row: index}
}
