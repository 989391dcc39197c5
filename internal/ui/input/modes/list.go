package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/input/types"
)

// ListMode handles keys while a row has the keyboard
type ListMode struct {
	keys *Keys
}

func NewListMode(keys *Keys) *ListMode {
	return &ListMode{keys: keys}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Escape):
		return []types.Action{types.EscapeAction{}}, true
	case key.Matches(msg, m.keys.Activate):
		if ctx.FocusIndex() < 0 {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true
	}

	// Printable keys go back to the search box and are typed there
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
		return []types.Action{types.FocusInputAction{}}, false
	}
	return nil, true
}
