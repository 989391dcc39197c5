package selection

import (
	"selectbox/internal/domain"
	"selectbox/internal/ui/services/events"
)

// Service holds and mutates the current selection of one select widget
type Service struct {
	state       *State
	bus         events.EventBus
	onChange    func(any)
	selectAll   SelectAllPolicy
	allSelected AllSelectedCheck
}

// NewService creates a new selection service
func NewService(typ domain.Type, bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Type:   typ,
			Values: []any{},
		},
		bus: events.OrNull(bus),
	}
}

// SetOnChange sets the function notified after every mutation. It receives
// the raw value for single selects and a fresh slice for multiple selects.
func (s *Service) SetOnChange(fn func(any)) {
	s.onChange = fn
}

// SetSelectAllPolicy sets how SelectAll treats values hidden by the filter
func (s *Service) SetSelectAllPolicy(p SelectAllPolicy) {
	s.selectAll = p
}

// SetAllSelectedCheck sets how AllSelected is computed
func (s *Service) SetAllSelectedCheck(c AllSelectedCheck) {
	s.allSelected = c
}

// Type returns the selection type
func (s *Service) Type() domain.Type {
	return s.state.Type
}

// Seed replaces the selection with an externally supplied value without
// notifying the owner. A sequence given to a single select uses its first
// element; a scalar given to a multiple select becomes a one-element list.
func (s *Service) Seed(v any) {
	if s.state.Type == domain.TypeMultiple {
		s.state.Values = dedupe(domain.ValueList(v))
		return
	}
	s.setSingleState(domain.ScalarValue(v))
}

// SetSingle replaces the selection with v and notifies the owner with v
func (s *Service) SetSingle(v any) {
	s.setSingleState(v)
	s.changed()
}

// ToggleMultiple adds v when checked (unless already present) or removes
// every occurrence of v when unchecked. The owner is always notified.
func (s *Service) ToggleMultiple(v any, checked bool) {
	key := domain.Key(v)
	if checked {
		if s.indexOf(key) == -1 {
			s.state.Values = append(s.state.Values, v)
		}
	} else {
		kept := make([]any, 0, len(s.state.Values))
		for _, existing := range s.state.Values {
			if domain.Key(existing) != key {
				kept = append(kept, existing)
			}
		}
		s.state.Values = kept
	}
	s.changed()
}

// SelectAll selects or deselects the visible options according to the
// select-all policy, then notifies the owner.
func (s *Service) SelectAll(selected bool, visible []domain.Option) {
	switch {
	case s.selectAll == SelectAllMerge && selected:
		for _, opt := range visible {
			if s.indexOf(opt.Key()) == -1 {
				s.state.Values = append(s.state.Values, opt.Value)
			}
		}
	case s.selectAll == SelectAllMerge:
		hidden := make(map[string]bool, len(visible))
		for _, opt := range visible {
			hidden[opt.Key()] = true
		}
		kept := make([]any, 0, len(s.state.Values))
		for _, v := range s.state.Values {
			if !hidden[domain.Key(v)] {
				kept = append(kept, v)
			}
		}
		s.state.Values = kept
	case selected:
		values := make([]any, 0, len(visible))
		for _, opt := range visible {
			values = append(values, opt.Value)
		}
		s.state.Values = dedupe(values)
	default:
		s.state.Values = []any{}
	}

	if selected {
		s.bus.Publish(AllSelectedEvent{Values: s.Values()})
	}
	s.changed()
}

// AllSelected reports whether the visible options count as all selected
func (s *Service) AllSelected(visible []domain.Option) bool {
	if s.allSelected == AllSelectedByMembers {
		for _, opt := range visible {
			if !s.IsSelected(opt.Key()) {
				return false
			}
		}
		return true
	}
	return len(s.state.Values) == len(visible)
}

// IsSelected checks whether a normalized key is part of the selection
func (s *Service) IsSelected(key string) bool {
	if s.state.Type == domain.TypeMultiple {
		return s.indexOf(key) != -1
	}
	return s.state.HasSingle && s.state.SingleKey == key
}

// Value returns the logical value: the raw scalar (nil for none) for single
// selects, a copy of the ordered values for multiple selects.
func (s *Service) Value() any {
	if s.state.Type == domain.TypeMultiple {
		return s.Values()
	}
	return s.state.SingleValue
}

// SingleKey returns the normalized single value. It is "" both for none and
// for an option whose value is ""; HasValue tells them apart.
func (s *Service) SingleKey() string {
	return s.state.SingleKey
}

// HasValue reports whether a single select holds a value
func (s *Service) HasValue() bool {
	return s.state.HasSingle
}

// Values returns a copy of the multiple selection
func (s *Service) Values() []any {
	out := make([]any, len(s.state.Values))
	copy(out, s.state.Values)
	return out
}

// Len returns the number of selected values
func (s *Service) Len() int {
	if s.state.Type == domain.TypeMultiple {
		return len(s.state.Values)
	}
	if !s.state.HasSingle {
		return 0
	}
	return 1
}

// setSingleState stores v as given; only nil means no selection
func (s *Service) setSingleState(v any) {
	s.state.HasSingle = v != nil
	s.state.SingleValue = v
	s.state.SingleKey = domain.Key(v)
}

func (s *Service) indexOf(key string) int {
	for i, v := range s.state.Values {
		if domain.Key(v) == key {
			return i
		}
	}
	return -1
}

// changed publishes and notifies with the state as it is now
func (s *Service) changed() {
	value := s.Value()
	s.bus.Publish(ValueChangedEvent{Type: s.state.Type, Value: value})
	if s.Len() == 0 {
		s.bus.Publish(SelectionClearedEvent{})
	}
	if s.onChange != nil {
		s.onChange(value)
	}
}

func dedupe(values []any) []any {
	seen := make(map[string]bool, len(values))
	out := make([]any, 0, len(values))
	for _, v := range values {
		key := domain.Key(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
