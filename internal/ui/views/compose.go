package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Class is a style that applies only when its condition holds
type Class struct {
	Style lipgloss.Style
	On    bool
}

// When pairs a style with its condition
func When(style lipgloss.Style, on bool) Class {
	return Class{Style: style, On: on}
}

// Compose layers the enabled classes over base. Later classes win for
// properties they set; unset properties fall through to earlier ones.
func Compose(base lipgloss.Style, classes ...Class) lipgloss.Style {
	out := base
	for _, c := range classes {
		if !c.On {
			continue
		}
		out = c.Style.Inherit(out)
	}
	return out
}

// HighlightMatch highlights the first case-insensitive occurrence of query in text
func HighlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	// Offsets in the lowered strings only map back onto text when lowering
	// kept the byte lengths.
	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	end := index + len(lowerQuery)
	before := text[:index]
	match := text[index:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
