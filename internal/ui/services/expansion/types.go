package expansion

// State holds the open/closed state and the search text. Search is only
// meaningful while Open.
type State struct {
	Open   bool
	Search string
}

// EscapePolicy decides whether Escape clears the search text
type EscapePolicy int

const (
	// EscapeKeepsSearch closes the list and leaves the search text in place
	EscapeKeepsSearch EscapePolicy = iota
	// EscapeClearsSearch closes the list and clears the search text, like
	// an outside interaction does
	EscapeClearsSearch
)

// ParseEscapePolicy converts a config string; unknown strings keep the search
func ParseEscapePolicy(s string) EscapePolicy {
	if s == "clear_search" {
		return EscapeClearsSearch
	}
	return EscapeKeepsSearch
}

// CloseReason says which interaction closed the list
type CloseReason string

const (
	ReasonToggle  CloseReason = "toggle"
	ReasonOutside CloseReason = "outside"
	ReasonEscape  CloseReason = "escape"
	ReasonSelect  CloseReason = "select"
)

// Event types
type OpenedEvent struct {
	Search string
}

type ClosedEvent struct {
	Reason CloseReason
}

type SearchChangedEvent struct {
	Old string
	New string
}
