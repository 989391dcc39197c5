package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	// Host application
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	// Select widget
	Label       lipgloss.Style
	Frame       lipgloss.Style
	FrameActive lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Toggle      lipgloss.Style
	List        lipgloss.Style
	Row         lipgloss.Style
	RowFocused  lipgloss.Style
	RowSelected lipgloss.Style
	SelectAll   lipgloss.Style
	Highlight   lipgloss.Style
	Scroll      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green

		Label: lipgloss.NewStyle().Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FrameActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Input:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Toggle:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		List:        lipgloss.NewStyle().PaddingLeft(1),
		Row:         lipgloss.NewStyle(),
		RowFocused:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		RowSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SelectAll:   lipgloss.NewStyle().Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
