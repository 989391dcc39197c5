package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/input/modes"
	"selectbox/internal/ui/input/types"
)

// Handler routes key messages to the handler of the widget's current mode
// and owns the search box.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        KeyMap
}

// New creates a handler with the default key map
func New() *Handler {
	return NewWithKeyMap(DefaultKeyMap())
}

// NewWithKeyMap creates a handler with custom bindings
func NewWithKeyMap(km KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        km,
	}

	keys := &modes.Keys{
		Up:       km.Up,
		Down:     km.Down,
		Activate: km.Activate,
		Escape:   km.Escape,
	}
	h.modes[types.ModeClosed] = modes.NewClosedMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeList] = modes.NewListMode(keys)

	return h
}

// ModeFor derives the input mode from widget state
func ModeFor(ctx types.Context) types.Mode {
	switch {
	case !ctx.IsOpen():
		return types.ModeClosed
	case ctx.ListTargeted():
		return types.ModeList
	default:
		return types.ModeSearch
	}
}

// HandleKey processes a key and returns the actions the widget should run.
// Keys a mode does not consume are typed into the search box, which
// produces an UpdateTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	h.Sync(ctx)

	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}

	// Unconsumed keys are text for the search box
	if h.currentMode != types.ModeSearch {
		h.switchMode(types.ModeSearch, ctx)
	}
	old := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if text := h.textInput.Value(); text != old {
		actions = append(actions, types.UpdateTextAction{Text: text})
	}
	return actions, cmd
}

// Sync moves the handler into the mode matching widget state, running the
// exit and enter hooks when it changes
func (h *Handler) Sync(ctx types.Context) {
	if mode := ModeFor(ctx); mode != h.currentMode {
		h.switchMode(mode, ctx)
	}
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) {
	if current := h.modes[h.currentMode]; current != nil {
		current.Exit(ctx)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		next.Enter(ctx)
	}
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the search box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText replaces the search box content without producing actions
func (h *Handler) SetText(text string) {
	if h.textInput.Value() != text {
		h.textInput.SetValue(text)
	}
}

// KeyMap returns the bindings, for help rendering
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// Update handles non-keyboard messages for the search box, e.g. cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Reset returns to closed mode with an empty search box
func (h *Handler) Reset() {
	h.currentMode = types.ModeClosed
	h.textInput.Reset()
	h.textInput.Blur()
}
