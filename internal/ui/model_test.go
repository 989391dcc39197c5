package ui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/config"
	"selectbox/internal/eventbus"
	"selectbox/internal/ui/selectbox"
	"selectbox/internal/ui/views"
)

// recordingBus keeps every published event
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func newHost(t *testing.T) (*Model, *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	m := NewModel(bus, config.DefaultConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, bus
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	msg := tea.KeyMsg{Type: k}
	if k == tea.KeySpace {
		msg.Runes = []rune(" ")
	}
	return msg
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// widgetMsgs runs cmd and returns the widget messages it produces
func widgetMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, widgetMsgs(c)...)
		}
		return out
	case selectbox.ChangedMsg, selectbox.FocusedMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

// send feeds msg to the host and then every widget message it triggers
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	for _, next := range widgetMsgs(cmd) {
		m.Update(next)
	}
}

func TestNewModelBuildsFields(t *testing.T) {
	m, _ := newHost(t)

	require.Len(t, m.Fields(), 2)
	assert.Equal(t, "Color", m.Fields()[0].Label())
	assert.Equal(t, "Fruits", m.Fields()[1].Label())
	assert.NotEqual(t, m.Fields()[0].ID(), m.Fields()[1].ID())
	assert.True(t, strings.HasPrefix(m.Fields()[0].ID(), "select_____"))
	assert.Equal(t, "multiple", m.Fields()[1].Attributes()[views.AttrMultiple])
	assert.Equal(t, -1, m.FocusedField())
}

func TestNewModelUUIDIDs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.IDStyle = config.IDStyleUUID
	m := NewModel(nil, cfg, nil)

	id := m.Fields()[0].ID()
	assert.True(t, strings.HasPrefix(id, "select_____"))
	assert.Len(t, id, len("select_____")+36)
}

func TestNewModelHiddenSelectAll(t *testing.T) {
	cfg := config.DefaultConfig()
	empty := ""
	cfg.Fields[1].SelectAllText = &empty
	m := NewModel(nil, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	send(m, keyPress(tea.KeyTab))
	send(m, keyPress(tea.KeyTab))
	require.True(t, m.Fields()[1].IsOpen())
	assert.NotContains(t, m.View(), selectbox.DefaultSelectAllText)
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newHost(t)

	send(m, keyPress(tea.KeyTab))
	assert.Equal(t, 0, m.FocusedField())
	assert.True(t, m.Fields()[0].Focused())
	assert.True(t, m.Fields()[0].IsOpen())

	send(m, keyPress(tea.KeyTab))
	assert.Equal(t, 1, m.FocusedField())
	assert.False(t, m.Fields()[0].Focused())
	assert.False(t, m.Fields()[0].IsOpen())
	assert.True(t, m.Fields()[1].IsOpen())

	send(m, keyPress(tea.KeyTab))
	assert.Equal(t, 0, m.FocusedField())

	send(m, keyPress(tea.KeyShiftTab))
	assert.Equal(t, 1, m.FocusedField())
}

func TestShiftTabFromNothingFocusesLast(t *testing.T) {
	m, _ := newHost(t)

	send(m, keyPress(tea.KeyShiftTab))
	assert.Equal(t, 1, m.FocusedField())
}

func TestKeyboardSelectionPublishesEvents(t *testing.T) {
	m, bus := newHost(t)

	send(m, keyPress(tea.KeyTab))
	send(m, keyPress(tea.KeyDown))
	send(m, keyPress(tea.KeySpace))

	assert.False(t, m.Fields()[0].IsOpen())
	assert.Equal(t, "Red", m.Fields()[0].DisplayValue())
	assert.Equal(t, 1, m.Values()["color"])
	assert.Equal(t, "Color: Red", m.Status())

	changed := bus.ofType(eventbus.EventValueChanged)
	require.Len(t, changed, 1)
	ev := changed[0].(eventbus.ValueChangedEvent)
	assert.Equal(t, "color", ev.Field)
	assert.Equal(t, 1, ev.Value)
	assert.Equal(t, "Red", ev.Display)

	saved := bus.ofType(eventbus.EventConfigChanged)
	require.Len(t, saved, 1)
	assert.Equal(t, 1, saved[0].(eventbus.ConfigChangedEvent).Values["color"])
}

func TestClearingSelectionPublishesCleared(t *testing.T) {
	m, bus := newHost(t)

	send(m, keyPress(tea.KeyTab))
	send(m, keyPress(tea.KeyTab))
	// select-all row, then the same row again
	send(m, keyPress(tea.KeyDown))
	send(m, keyPress(tea.KeySpace))
	send(m, keyPress(tea.KeyDown))
	send(m, keyPress(tea.KeySpace))

	assert.Equal(t, []any{}, m.Values()["fruits"])
	assert.Len(t, bus.ofType(eventbus.EventValueChanged), 2)
	assert.Len(t, bus.ofType(eventbus.EventSelectionCleared), 1)
	assert.Equal(t, "Fruits: (none)", m.Status())
}

func TestAutosaveOff(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.AutosaveValues = false
	bus := &recordingBus{}
	m := NewModel(bus, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	send(m, keyPress(tea.KeyTab))
	send(m, keyPress(tea.KeyDown))
	send(m, keyPress(tea.KeySpace))

	assert.Len(t, bus.ofType(eventbus.EventValueChanged), 1)
	assert.Empty(t, bus.ofType(eventbus.EventConfigChanged))
}

func TestQuitKeys(t *testing.T) {
	m, _ := newHost(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuitKeyTypesWhileOpen(t *testing.T) {
	m, _ := newHost(t)

	send(m, keyPress(tea.KeyTab))
	_, cmd := m.Update(runes("q"))

	assert.Equal(t, "q", m.Fields()[0].Search())
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}

func TestMouseFocusesAndDismisses(t *testing.T) {
	m, _ := newHost(t)
	m.layoutFields()
	b := m.Fields()[1].Bounds()

	send(m, leftPress(b.X+1, b.Y+2))
	assert.Equal(t, 1, m.FocusedField())
	assert.True(t, m.Fields()[1].Focused())
	assert.True(t, m.Fields()[1].IsOpen())

	send(m, leftPress(0, 0))
	assert.Equal(t, -1, m.FocusedField())
	assert.False(t, m.Fields()[1].Focused())
	assert.False(t, m.Fields()[1].IsOpen())
}

func TestMouseMovesFocusBetweenFields(t *testing.T) {
	m, _ := newHost(t)

	send(m, keyPress(tea.KeyTab))
	require.True(t, m.Fields()[0].IsOpen())

	m.layoutFields()
	b := m.Fields()[1].Bounds()
	send(m, leftPress(b.X+1, b.Y+2))

	assert.Equal(t, 1, m.FocusedField())
	assert.False(t, m.Fields()[0].Focused())
	assert.False(t, m.Fields()[0].IsOpen())
	assert.True(t, m.Fields()[1].IsOpen())
}

func TestLayoutStacksFields(t *testing.T) {
	m, _ := newHost(t)
	m.layoutFields()

	first := m.Fields()[0].Bounds()
	second := m.Fields()[1].Bounds()
	x, y := m.renderer.FieldOrigin(Title)
	assert.Equal(t, x, first.X)
	assert.Equal(t, y, first.Y)
	assert.Equal(t, first.Y+first.Height+views.FieldGap, second.Y)
}

func TestErrorEventShowsStatus(t *testing.T) {
	m, _ := newHost(t)

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "save failed"}})
	assert.Equal(t, "save failed", m.Status())
	assert.Contains(t, m.View(), "save failed")

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.Status())
}

func TestHelpWithoutProgramTogglesFullHelp(t *testing.T) {
	m, _ := newHost(t)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "previous field")
}

func TestViewLayout(t *testing.T) {
	m, _ := newHost(t)

	view := m.View()
	assert.Contains(t, view, Title)
	assert.Contains(t, view, "Pick a color")
	assert.Contains(t, view, "Pick fruits")
	assert.NotContains(t, view, views.ReadyMarker)

	m.e2e = true
	assert.Contains(t, m.View(), views.ReadyMarker)
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(nil, config.DefaultConfig(), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestRenderHelpContent(t *testing.T) {
	r := NewHelpRenderer()
	content := r.RenderHelpContentPlain(defaultKeyMap(), defaultKeyMap(), "/tmp/config.toml")
	assert.Contains(t, content, "next field")
	assert.Contains(t, content, "/tmp/config.toml")
}

func TestShowHelpInPagerNeedsProgram(t *testing.T) {
	err := NewHelpOps(nil).ShowHelpInPager("help")
	assert.Error(t, err)
}
