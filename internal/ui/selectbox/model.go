// Package selectbox is a select/combobox component for Bubble Tea: single
// or multiple selection over a filtered option list, with keyboard
// navigation and dismissal on outside interaction.
package selectbox

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/domain"
	"selectbox/internal/logging"
	"selectbox/internal/ui/idgen"
	"selectbox/internal/ui/input"
	"selectbox/internal/ui/input/types"
	"selectbox/internal/ui/outside"
	"selectbox/internal/ui/services/display"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/expansion"
	"selectbox/internal/ui/services/filter"
	"selectbox/internal/ui/services/navigation"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/views"
)

// Model is one select widget
type Model struct {
	id            string
	typ           domain.Type
	options       []domain.Option
	label         string
	placeholder   string
	selectAllText string
	attrs         views.Attributes
	styles        *views.Styles
	maxRows       int
	logger        *slog.Logger

	// Services
	selection *selection.Service
	display   *display.Formatter
	expansion *expansion.Controller
	nav       *navigation.Service
	filter    *filter.Engine
	input     *input.Handler
	outside   *outside.Detector

	onChange     func(any)
	displayValue string
	focused      bool
	originX      int
	originY      int
	offset       int // first visible row
	pending      []tea.Cmd
}

// New creates a closed, unfocused select widget
func New(opts ...Option) *Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	id := cfg.id
	if id == "" {
		ids := cfg.ids
		if ids == nil {
			ids = idgen.Default()
		}
		id = ids.NextID()
	}

	attrs := views.Attributes{}.Merge(cfg.attrs)
	if cfg.typ == domain.TypeMultiple {
		attrs[views.AttrMultiple] = "multiple"
	}

	styles := cfg.styles
	if styles == nil {
		styles = views.NewStyles()
	}
	logger := cfg.logger
	if logger == nil {
		logger = logging.Discard()
	}
	bus := events.OrNull(cfg.bus)

	m := &Model{
		id:            id,
		typ:           cfg.typ,
		options:       append([]domain.Option(nil), cfg.options...),
		label:         cfg.label,
		placeholder:   cfg.placeholder,
		selectAllText: cfg.selectAllText,
		attrs:         attrs,
		styles:        styles,
		maxRows:       cfg.maxRows,
		logger:        logger.With("widget", id),
		selection:     selection.NewService(cfg.typ, bus),
		display:       display.NewFormatter(),
		expansion:     expansion.NewController(bus),
		nav:           navigation.NewService(bus),
		filter:        filter.NewEngine(cfg.matcher),
		input:         input.New(),
		onChange:      cfg.onChange,
	}

	m.selection.SetSelectAllPolicy(cfg.selectAll)
	m.selection.SetAllSelectedCheck(cfg.allSelected)
	m.selection.SetOnChange(m.notify)
	m.expansion.SetEscapePolicy(cfg.escape)
	m.nav.SetQueryFunction(m.maxIndex)
	m.outside = outside.NewDetector(m.dismiss)

	ti := m.input.TextInput()
	ti.Placeholder = cfg.placeholder
	ti.Width = m.textWidth() - 1

	if !domain.IsEmptyValue(cfg.value) {
		m.selection.Seed(cfg.value)
	}
	m.displayValue = m.formatDisplay()
	return m
}

// Init returns the initial command for the widget
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key, mouse and cursor messages. Keys are ignored unless
// the widget is focused; mouse presses are always inspected so presses
// outside the widget dismiss it.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	default:
		cmds = append(cmds, m.input.Update(msg))
	}

	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.input.HandleKey(msg, m)

	for _, action := range actions {
		switch a := action.(type) {
		case types.OpenAction:
			m.expansion.OpenFromKeyboard()
		case types.NavigateAction:
			m.nav.Navigate(navigation.Direction(a.Direction))
		case types.EscapeAction:
			m.expansion.Escape()
		case types.ActivateAction:
			index := m.nav.Index()
			m.nav.Reset()
			m.activate(index)
		case types.FocusInputAction:
			m.nav.SetTarget(navigation.TargetInput)
		case types.UpdateTextAction:
			m.expansion.SetSearch(a.Text)
		}
	}

	m.sync()
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.outside.SetBounds(m.Bounds())
	if m.outside.HandleMouse(msg) {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	var cmd tea.Cmd
	if !m.focused {
		m.focused = true
		cmd = tea.Batch(focusedCmd(m.id), textinput.Blink)
	}

	target := m.hitTest(msg.X, msg.Y)
	switch target.region {
	case regionInput:
		m.expansion.OpenFromInput()
	case regionToggle:
		m.expansion.Toggle()
	case regionRow:
		m.activate(target.row)
	}

	m.sync()
	return cmd
}

// activate fires the control of the row at index, as a click or space would
func (m *Model) activate(index int) {
	rows := m.rows()
	if index < 0 || index >= len(rows) {
		return
	}
	r := rows[index]
	checked, changed := r.Activate()
	if !changed {
		return
	}

	switch {
	case r.selectAll:
		m.selection.SelectAll(checked, m.Filtered())
	case m.typ == domain.TypeMultiple:
		m.selection.ToggleMultiple(r.option.Value, checked)
	default:
		m.expansion.CloseAfterSelect()
		m.nav.Reset()
		m.selection.SetSingle(r.option.Value)
	}
}

// notify runs after every selection mutation. Derived state is recomputed
// from the current selection again once the owner returns, since the owner
// may call back into the widget.
func (m *Model) notify(value any) {
	m.displayValue = m.formatDisplay()
	m.logger.Debug("value changed", "value", value, "display", m.displayValue)
	m.pending = append(m.pending, changedCmd(ChangedMsg{
		ID:      m.id,
		Value:   value,
		Display: m.displayValue,
	}))

	if m.onChange != nil {
		m.onChange(value)
	}

	m.displayValue = m.formatDisplay()
	m.sync()
}

// dismiss is the outside-interaction callback
func (m *Model) dismiss() {
	wasOpen := m.expansion.IsOpen()
	m.focused = false
	m.expansion.Dismiss()
	m.nav.Reset()
	m.sync()
	if wasOpen {
		m.logger.Debug("dismissed")
	}
}

// sync brings derived state in line with the services after a transition
func (m *Model) sync() {
	if !m.expansion.IsOpen() {
		m.nav.Reset()
		m.offset = 0
	}
	m.nav.Clamp()
	m.ensureVisible()
	m.input.SetText(m.expansion.Search())
	m.input.Sync(m)
}

func (m *Model) flush() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

func (m *Model) formatDisplay() string {
	return m.display.Format(m.typ, m.options, m.selection.Value())
}

func (m *Model) showSelectAll() bool {
	return m.typ == domain.TypeMultiple && m.selectAllText != ""
}

func (m *Model) rowCount() int {
	n := len(m.Filtered())
	if m.showSelectAll() {
		n++
	}
	return n
}

func (m *Model) maxIndex() int {
	return m.rowCount() - 1
}

// ensureVisible scrolls the row window so the focused row is shown
func (m *Model) ensureVisible() {
	if m.maxRows <= 0 {
		m.offset = 0
		return
	}
	if index := m.nav.Index(); index >= 0 {
		if index < m.offset {
			m.offset = index
		} else if index >= m.offset+m.maxRows {
			m.offset = index - m.maxRows + 1
		}
	}
	if last := m.rowCount() - m.maxRows; m.offset > last {
		m.offset = max(last, 0)
	}
}

// Focus gives the widget the keyboard and opens it with an empty search
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.expansion.OpenFromInput()
	m.sync()
	return textinput.Blink
}

// Blur reports that the keyboard moved to another component, which counts
// as an outside interaction
func (m *Model) Blur() {
	if !m.focused {
		return
	}
	m.outside.FocusLost()
}

// SetValue re-seeds the selection from the owner without notifying it.
// nil and "" are ignored; an empty slice clears a multiple select.
func (m *Model) SetValue(v any) {
	if domain.IsEmptyValue(v) {
		return
	}
	m.selection.Seed(v)
	m.displayValue = m.formatDisplay()
}

// SetOptions replaces the option list
func (m *Model) SetOptions(opts []domain.Option) {
	m.options = append([]domain.Option(nil), opts...)
	m.sync()
}

// SetOnChange replaces the owner's change function
func (m *Model) SetOnChange(fn func(any)) {
	m.onChange = fn
}

// SetBounds places the widget's top-left corner on screen, for mouse hit testing
func (m *Model) SetBounds(x, y int) {
	m.originX, m.originY = x, y
	m.outside.SetBounds(m.Bounds())
}

// Filtered returns the options matching the current search text
func (m *Model) Filtered() []domain.Option {
	return m.filter.Apply(m.options, m.expansion.Search())
}

func (m *Model) ID() string                   { return m.id }
func (m *Model) Type() domain.Type            { return m.typ }
func (m *Model) Label() string                { return m.label }
func (m *Model) Options() []domain.Option     { return append([]domain.Option(nil), m.options...) }
func (m *Model) Attributes() views.Attributes { return m.attrs.Merge(nil) }
func (m *Model) Focused() bool                { return m.focused }
func (m *Model) IsOpen() bool                 { return m.expansion.IsOpen() }
func (m *Model) Search() string               { return m.expansion.Search() }
func (m *Model) FocusIndex() int              { return m.nav.Index() }
func (m *Model) DisplayValue() string         { return m.displayValue }
func (m *Model) Mode() types.Mode             { return m.input.CurrentMode() }
func (m *Model) KeyMap() input.KeyMap         { return m.input.KeyMap() }

// ListTargeted reports whether keys go to the focused row rather than the search box
func (m *Model) ListTargeted() bool {
	return m.nav.Target() == navigation.TargetList
}

// Value returns the logical value: a scalar (nil for none) for single
// selects, an ordered []any for multiple selects
func (m *Model) Value() any {
	return m.selection.Value()
}

// AllSelected reports whether the select-all row shows as checked
func (m *Model) AllSelected() bool {
	return m.selection.AllSelected(m.Filtered())
}
