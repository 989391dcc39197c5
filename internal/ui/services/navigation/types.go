package navigation

// NoFocus is the focus index when no row is highlighted
const NoFocus = -1

// Target says which part of the open widget receives keys
type Target string

const (
	TargetInput Target = "input"
	TargetList  Target = "list"
)

// State holds all navigation-related state. Index is scoped to one open
// session and is NoFocus whenever the list closes.
type State struct {
	Index  int
	Target Target
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Event types for navigation changes
type FocusMovedEvent struct {
	OldIndex int
	NewIndex int
}

type TargetChangedEvent struct {
	Target Target
}
