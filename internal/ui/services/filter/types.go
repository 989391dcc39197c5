package filter

// Mode selects how the search text is matched against option labels
type Mode string

const (
	// ModeSubstring keeps options whose label contains the search text, ignoring case
	ModeSubstring Mode = "substring"
	// ModeFuzzy keeps options whose label contains the search characters in order
	ModeFuzzy Mode = "fuzzy"
)

// ParseMode converts a config string to a Mode, defaulting to substring
func ParseMode(s string) Mode {
	if Mode(s) == ModeFuzzy {
		return ModeFuzzy
	}
	return ModeSubstring
}
