package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReadyMarker is printed for the end-to-end test driver once the first
// full frame is rendered
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Title       string
	Fields      []string // rendered widgets, top to bottom
	Status      string
	StatusError bool
	HelpView    string
	Ready       bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the styles the renderer draws with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// FieldOrigin returns where the first field is drawn, so hosts can place
// widgets for mouse hit testing
func (r *Renderer) FieldOrigin(title string) (x, y int) {
	return r.styles.Main.GetPaddingLeft(), r.styles.Main.GetPaddingTop() + lipgloss.Height(r.styles.Title.Render(title))
}

// FieldGap is the number of blank lines between fields
const FieldGap = 1

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	if len(state.Fields) == 0 {
		content.WriteString(r.styles.Dim.Render("No fields configured."))
	} else {
		content.WriteString(strings.Join(state.Fields, strings.Repeat("\n", FieldGap+1)))
	}

	status := state.Status
	if state.Ready {
		status = strings.TrimSpace(status + " " + ReadyMarker)
	}
	if status != "" {
		style := r.styles.Status
		if state.StatusError {
			style = style.Inherit(r.styles.StatusError)
		}
		content.WriteString("\n")
		content.WriteString(style.Render(status))
	}

	// Push the help line to the bottom
	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding
		availableLines := state.Height - r.styles.Main.GetVerticalPadding()
		if availableLines <= 0 {
			availableLines = 22
		}

		paddingNeeded := availableLines - currentLines - lipgloss.Height(state.HelpView)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}
