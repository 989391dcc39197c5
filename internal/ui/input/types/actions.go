package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// OpenAction opens a closed list without discarding the search text
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

// EscapeAction closes the list from the keyboard
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// ActivateAction activates the control of the focused row
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// FocusInputAction hands the keyboard back to the search box
type FocusInputAction struct{}

func (a FocusInputAction) Type() string { return "focus_input" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }
