package navigation

import (
	"selectbox/internal/ui/services/events"
)

// Service tracks the keyboard focus index over the rendered rows of an open
// select: the filtered options, preceded by the select-all row when shown.
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func() int // Function to get max index from the widget
}

// NewService creates a new navigation service with no focus
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Index:  NoFocus,
			Target: TargetInput,
		},
		bus: events.OrNull(bus),
	}
}

// SetQueryFunction sets the function to query the highest valid index.
// It is asked on every move, so the bound always follows the current filter.
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// Index returns the current focus index, or NoFocus
func (s *Service) Index() int {
	return s.state.Index
}

// Target returns which part of the widget receives keys
func (s *Service) Target() Target {
	return s.state.Target
}

// HasFocus reports whether a row is highlighted
func (s *Service) HasFocus() bool {
	return s.state.Index != NoFocus
}

// Navigate moves the focus in a direction and reports whether it moved
func (s *Service) Navigate(direction Direction) bool {
	switch direction {
	case DirectionUp:
		return s.Up()
	case DirectionDown:
		return s.Down()
	}
	return false
}

// Down moves the focus to the next row. At the last row it is a no-op.
func (s *Service) Down() bool {
	if s.state.Index >= s.maxIndex() {
		return false
	}
	s.moveTo(s.state.Index + 1)
	return true
}

// Up moves the focus to the previous row. At the first row, or with no
// focus, it is a no-op.
func (s *Service) Up() bool {
	if s.state.Index <= 0 {
		return false
	}
	s.moveTo(s.state.Index - 1)
	return true
}

// Reset clears the focus and hands keys back to the search box
func (s *Service) Reset() {
	s.setIndex(NoFocus)
	s.SetTarget(TargetInput)
}

// Clamp pulls the focus back inside the current bounds after the row
// count changed. An empty list drops the focus.
func (s *Service) Clamp() {
	max := s.maxIndex()
	if s.state.Index > max {
		s.setIndex(max)
	}
	if s.state.Index == NoFocus && s.state.Target == TargetList {
		s.SetTarget(TargetInput)
	}
}

// SetTarget moves keyboard input between the search box and the row list
func (s *Service) SetTarget(t Target) {
	if s.state.Target == t {
		return
	}
	s.state.Target = t
	s.bus.Publish(TargetChangedEvent{Target: t})
}

func (s *Service) moveTo(index int) {
	s.setIndex(index)
	s.SetTarget(TargetList)
}

func (s *Service) setIndex(index int) {
	if index < NoFocus {
		index = NoFocus
	}
	old := s.state.Index
	if old == index {
		return
	}
	s.state.Index = index
	s.bus.Publish(FocusMovedEvent{
		OldIndex: old,
		NewIndex: index,
	})
}

func (s *Service) maxIndex() int {
	if s.queryFn == nil {
		return NoFocus
	}
	return s.queryFn()
}
