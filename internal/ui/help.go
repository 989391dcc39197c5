package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// helpSection is a titled group of key bindings
type helpSection struct {
	title    string
	bindings []key.Binding
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain(field, app help.KeyMap, configPath string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("selectbox Help"))
	b.WriteString("\n")

	sections := []helpSection{
		{title: "Field", bindings: flatten(field.FullHelp())},
		{title: "Application", bindings: flatten(app.FullHelp())},
	}
	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	b.WriteString(sectionStyle.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("click"), descStyle.Render("open a field, toggle with ▾, pick a row")))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("outside"), descStyle.Render("close the open field and clear its search")))

	b.WriteString(sectionStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("  Type while a field is open to filter its options."))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("  Multiple fields offer a select-all row for the filtered options."))
	b.WriteString("\n")

	if configPath != "" {
		b.WriteString(sectionStyle.Render("Configuration"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s\n", descStyle.Render(configPath)))
	}

	return b.String()
}

func flatten(groups [][]key.Binding) []key.Binding {
	var out []key.Binding
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
