package selection

import "selectbox/internal/domain"

// State holds selection state. Single selects use HasSingle, SingleValue
// and SingleKey; multiple selects use Values.
type State struct {
	Type        domain.Type
	HasSingle   bool   // an option is selected, even one whose value is ""
	SingleValue any    // raw value last set, nil for none
	SingleKey   string // normalized SingleValue
	Values      []any  // ordered, no two share a key
}

// SelectAllPolicy decides what selecting all does to values hidden by the filter
type SelectAllPolicy int

const (
	// SelectAllReplace makes the selection exactly the visible options.
	// Selected values hidden by the current search are dropped.
	SelectAllReplace SelectAllPolicy = iota
	// SelectAllMerge keeps hidden selections and adds or removes only
	// visible options.
	SelectAllMerge
)

// AllSelectedCheck decides how "everything visible is selected" is computed
type AllSelectedCheck int

const (
	// AllSelectedByCount compares the selection size with the visible count
	AllSelectedByCount AllSelectedCheck = iota
	// AllSelectedByMembers requires every visible option to be selected
	AllSelectedByMembers
)

// ParseSelectAllPolicy converts a config string; unknown strings mean replace
func ParseSelectAllPolicy(s string) SelectAllPolicy {
	if s == "merge" {
		return SelectAllMerge
	}
	return SelectAllReplace
}

// ParseAllSelectedCheck converts a config string; unknown strings mean count
func ParseAllSelectedCheck(s string) AllSelectedCheck {
	if s == "members" {
		return AllSelectedByMembers
	}
	return AllSelectedByCount
}

// Event types
type ValueChangedEvent struct {
	Type  domain.Type
	Value any
}

type SelectionClearedEvent struct{}

type AllSelectedEvent struct {
	Values []any
}
