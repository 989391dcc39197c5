package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"selectbox/internal/ui/input"
)

// keyMap holds the application-level bindings. Everything else goes to
// the focused field.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (field closed)"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys combines the field bindings with the application bindings for
// the help line
type helpKeys struct {
	field input.KeyMap
	app   keyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.field.ShortHelp(), h.app.ShortHelp()...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.field.FullHelp(), h.app.FullHelp()...)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.ForceQuit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
