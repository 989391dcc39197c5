package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/input/types"
)

// ClosedMode handles keys while the list is hidden. Only the arrows do
// anything: they open the list and move the focus.
type ClosedMode struct {
	keys *Keys
}

func NewClosedMode(keys *Keys) *ClosedMode {
	return &ClosedMode{keys: keys}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.OpenAction{}, types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.OpenAction{}, types.NavigateAction{Direction: "up"}}, true
	}
	// Typing while closed is ignored
	return nil, true
}
