package ui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/logging"
	"selectbox/internal/ui/idgen"
	"selectbox/internal/ui/input"
	"selectbox/internal/ui/selectbox"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/expansion"
	"selectbox/internal/ui/services/filter"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/views"
)

// Title is drawn above the fields
const Title = "selectbox"

// E2EEnv enables the ready marker for the end-to-end test driver
const E2EEnv = "SELECTBOX_E2E_TEST"

const statusTimeout = 3 * time.Second

// Model is the demo host: a column of select fields built from the config
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *slog.Logger

	width  int
	height int
	help   help.Model
	keys   keyMap

	fields []*selectbox.Model
	names  map[string]string // widget id -> field name
	values map[string]any    // field name -> last value the owner received
	focus  int

	status      string
	statusError bool
	inPagerMode bool
	e2e         bool

	widgetBus    *events.Bus
	styles       *views.Styles
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	program      *tea.Program
}

// NewModel creates a host with one widget per configured field
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	styles := views.NewStyles()
	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		help:         help.New(),
		keys:         defaultKeyMap(),
		names:        make(map[string]string, len(cfg.Fields)),
		values:       cfg.FieldValues(),
		focus:        -1,
		e2e:          os.Getenv(E2EEnv) == "1",
		widgetBus:    events.NewBus(),
		styles:       styles,
		renderer:     views.NewRenderer(styles),
		helpRenderer: NewHelpRenderer(),
	}

	m.widgetBus.SubscribeAll(func(event interface{}) {
		m.logger.Debug("widget event", "type", events.TypeOf(event), "event", event)
	})

	var ids idgen.Provider = idgen.NewSequence()
	if cfg.UI.IDStyle == config.IDStyleUUID {
		ids = idgen.NewUUID()
	}

	for _, f := range cfg.Fields {
		field := m.newField(f, ids)
		m.names[field.ID()] = f.Name
		m.fields = append(m.fields, field)
	}

	if len(m.fields) > 0 {
		m.status = "tab to focus a field, f1 for help"
	}
	return m
}

func (m *Model) newField(f config.Field, ids idgen.Provider) *selectbox.Model {
	typ, _ := domain.ParseType(f.Type)

	options := make([]domain.Option, 0, len(f.Options))
	for _, o := range f.Options {
		options = append(options, domain.Option{Label: o.Label, Value: o.Value})
	}

	name := f.Name
	opts := []selectbox.Option{
		selectbox.WithType(typ),
		selectbox.WithOptions(options),
		selectbox.WithValue(f.Value),
		selectbox.WithLabel(f.Label),
		selectbox.WithPlaceholder(f.Placeholder),
		selectbox.WithIDProvider(ids),
		selectbox.WithAttributes(views.Attributes(f.Attributes)),
		selectbox.WithBus(m.widgetBus),
		selectbox.WithStyles(m.styles),
		selectbox.WithMatcher(filter.ParseMode(m.config.UI.Filter)),
		selectbox.WithSelectAllPolicy(selection.ParseSelectAllPolicy(m.config.UI.SelectAll)),
		selectbox.WithAllSelectedCheck(selection.ParseAllSelectedCheck(m.config.UI.AllSelected)),
		selectbox.WithEscapePolicy(expansion.ParseEscapePolicy(m.config.UI.Escape)),
		selectbox.WithMaxRows(m.config.UI.MaxRows),
		selectbox.WithLogger(m.logger.With("field", name)),
		selectbox.WithOnChange(func(v any) {
			m.values[name] = v
		}),
	}
	if f.SelectAllText != nil {
		opts = append(opts, selectbox.WithSelectAllText(*f.SelectAllText))
	}
	return selectbox.New(opts...)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Fields returns the widgets top to bottom
func (m *Model) Fields() []*selectbox.Model {
	return m.fields
}

// FocusedField returns the index of the field holding the keyboard, or -1
func (m *Model) FocusedField() int {
	return m.focus
}

// Values returns a copy of the last value each field's owner received
func (m *Model) Values() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Status returns the status line text
func (m *Model) Status() string {
	return m.status
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case selectbox.ChangedMsg:
		return m, m.handleChanged(msg)

	case selectbox.FocusedMsg:
		for i, f := range m.fields {
			if f.ID() == msg.ID {
				m.setFocus(i, false)
				break
			}
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", "error", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	default:
		// Cursor blink and other textinput messages
		if f := m.focusedField(); f != nil {
			_, cmd := f.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	field := m.focusedField()

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Help):
		return m.showHelp()
	case key.Matches(msg, m.keys.Quit) && (field == nil || !field.IsOpen()):
		return tea.Quit
	}

	if field == nil {
		return nil
	}
	_, cmd := field.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.layoutFields()

	var cmds []tea.Cmd
	for _, f := range m.fields {
		if _, cmd := f.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	// A press outside the focused field has already dismissed it
	if f := m.focusedField(); f != nil && !f.Focused() {
		m.focus = -1
	}
	return tea.Batch(cmds...)
}

// layoutFields tells every widget where it is drawn
func (m *Model) layoutFields() {
	x, y := m.renderer.FieldOrigin(Title)
	for _, f := range m.fields {
		f.SetBounds(x, y)
		y += lipgloss.Height(f.View()) + views.FieldGap
	}
}

func (m *Model) handleChanged(msg selectbox.ChangedMsg) tea.Cmd {
	name, ok := m.names[msg.ID]
	if !ok {
		return nil
	}

	display := msg.Display
	if display == "" {
		display = "(none)"
	}
	m.status = fmt.Sprintf("%s: %s", m.fieldLabel(name), display)
	m.statusError = false
	m.logger.Info("value changed", "field", name, "value", msg.Value)

	if m.bus != nil {
		m.bus.Publish(eventbus.ValueChangedEvent{Field: name, Value: msg.Value, Display: msg.Display})
		if isCleared(msg.Value) {
			m.bus.Publish(eventbus.SelectionClearedEvent{Field: name})
		}
		if m.config.UI.AutosaveValues {
			m.bus.Publish(eventbus.ConfigChangedEvent{Values: m.Values()})
		}
	}
	return clearStatusAfter(statusTimeout)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		m.logger.Debug("config saved", "path", e.Path)
		return nil
	case eventbus.ErrorEvent:
		m.status = e.Message
		if e.Err != nil {
			m.status = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		m.statusError = true
		return clearStatusAfter(statusTimeout)
	}
	return nil
}

func (m *Model) fieldLabel(name string) string {
	for _, f := range m.config.Fields {
		if f.Name == name && f.Label != "" {
			return f.Label
		}
	}
	return name
}

func (m *Model) focusedField() *selectbox.Model {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus]
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	next := 0
	if m.focus >= 0 {
		next = ((m.focus+step)%n + n) % n
	} else if step < 0 {
		next = n - 1
	}
	return m.setFocus(next, true)
}

// setFocus moves the keyboard to field i. The previous field loses focus.
func (m *Model) setFocus(i int, focusWidget bool) tea.Cmd {
	if prev := m.focusedField(); prev != nil && m.focus != i {
		prev.Blur()
	}
	m.focus = i
	if !focusWidget {
		return nil
	}
	return m.fields[i].Focus()
}

func (m *Model) showHelp() tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	content := m.helpRenderer.RenderHelpContentPlain(input.DefaultKeyMap(), m.keys, "")
	return m.fetchHelpPager(content)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	rendered := make([]string, len(m.fields))
	for i, f := range m.fields {
		rendered[i] = f.View()
	}

	return m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Title:       Title,
		Fields:      rendered,
		Status:      m.status,
		StatusError: m.statusError,
		HelpView:    m.help.View(helpKeys{field: input.DefaultKeyMap(), app: m.keys}),
		Ready:       m.e2e,
	})
}

// isCleared reports whether v is an empty selection: nil for a single
// field, an empty list for a multiple one
func isCleared(v any) bool {
	if v == nil {
		return true
	}
	list, ok := v.([]any)
	return ok && len(list) == 0
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
