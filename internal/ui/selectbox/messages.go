package selectbox

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is sent after the owner was notified of a new value
type ChangedMsg struct {
	ID      string
	Value   any
	Display string
}

// FocusedMsg is sent when a click gives an unfocused widget the keyboard
type FocusedMsg struct {
	ID string
}

func changedCmd(msg ChangedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func focusedCmd(id string) tea.Cmd {
	return func() tea.Msg { return FocusedMsg{ID: id} }
}
