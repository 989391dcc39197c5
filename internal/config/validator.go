package config

import (
	"errors"
	"fmt"

	"selectbox/internal/domain"
)

// Accepted values for the [ui] policy settings
const (
	FilterSubstring = "substring"
	FilterFuzzy     = "fuzzy"

	EscapeKeepSearch  = "keep_search"
	EscapeClearSearch = "clear_search"

	SelectAllReplace = "replace"
	SelectAllMerge   = "merge"

	AllSelectedCount   = "count"
	AllSelectedMembers = "members"

	IDStyleSequence = "sequence"
	IDStyleUUID     = "uuid"
)

// Validate reports every problem found in the configuration at once
func (c *Config) Validate() error {
	var errs []error

	if !oneOf(c.UI.Filter, FilterSubstring, FilterFuzzy) {
		errs = append(errs, fmt.Errorf("ui.filter: unknown mode %q", c.UI.Filter))
	}
	if !oneOf(c.UI.Escape, EscapeKeepSearch, EscapeClearSearch) {
		errs = append(errs, fmt.Errorf("ui.escape: unknown policy %q", c.UI.Escape))
	}
	if !oneOf(c.UI.SelectAll, SelectAllReplace, SelectAllMerge) {
		errs = append(errs, fmt.Errorf("ui.select_all: unknown policy %q", c.UI.SelectAll))
	}
	if !oneOf(c.UI.AllSelected, AllSelectedCount, AllSelectedMembers) {
		errs = append(errs, fmt.Errorf("ui.all_selected: unknown check %q", c.UI.AllSelected))
	}
	if !oneOf(c.UI.IDStyle, IDStyleSequence, IDStyleUUID) {
		errs = append(errs, fmt.Errorf("ui.id_style: unknown style %q", c.UI.IDStyle))
	}
	if c.UI.MaxRows < 0 {
		errs = append(errs, fmt.Errorf("ui.max_rows: must not be negative, got %d", c.UI.MaxRows))
	}

	names := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("fields[%d]: name is required", i))
		} else if names[f.Name] {
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate name %q", i, f.Name))
		}
		names[f.Name] = true

		if _, ok := domain.ParseType(f.Type); !ok {
			errs = append(errs, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type))
		}

		keys := make(map[string]bool, len(f.Options))
		for _, opt := range f.Options {
			key := domain.Key(opt.Value)
			if keys[key] {
				errs = append(errs, fmt.Errorf("field %q: duplicate option value %q", f.Name, key))
			}
			keys[key] = true
		}
	}

	return errors.Join(errs...)
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
