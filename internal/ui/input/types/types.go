package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode of a select widget
type Mode int

const (
	// ModeClosed: the list is hidden and the input shows the display value
	ModeClosed Mode = iota
	// ModeSearch: the list is open and keys go to the search box
	ModeSearch
	// ModeList: the list is open and keys go to the focused row
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeList:
		return "list"
	default:
		return "closed"
	}
}

// Action represents a command the widget should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	IsOpen() bool
	ListTargeted() bool
	FocusIndex() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
