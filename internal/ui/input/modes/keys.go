package modes

import "github.com/charmbracelet/bubbles/key"

// Keys is the subset of bindings the modes match against
type Keys struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Escape   key.Binding
}
