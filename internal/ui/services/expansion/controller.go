package expansion

import (
	"selectbox/internal/ui/services/events"
)

// Controller tracks whether the option list is open and what is typed in
// the search box.
type Controller struct {
	state  *State
	bus    events.EventBus
	escape EscapePolicy
}

// NewController creates a closed controller
func NewController(bus events.EventBus) *Controller {
	return &Controller{
		state: &State{},
		bus:   events.OrNull(bus),
	}
}

// SetEscapePolicy sets what Escape does to the search text
func (c *Controller) SetEscapePolicy(p EscapePolicy) {
	c.escape = p
}

// IsOpen reports whether the list is visible
func (c *Controller) IsOpen() bool {
	return c.state.Open
}

// Search returns the current search text
func (c *Controller) Search() string {
	return c.state.Search
}

// OpenFromInput handles a click on, or focus of, the input. Opening this
// way always starts with an empty search; an already open list is left as is.
func (c *Controller) OpenFromInput() bool {
	if c.state.Open {
		return false
	}
	c.setSearch("")
	c.open()
	return true
}

// OpenFromKeyboard opens the list for arrow navigation, keeping any search text
func (c *Controller) OpenFromKeyboard() bool {
	if c.state.Open {
		return false
	}
	c.open()
	return true
}

// Toggle handles the toggle button: a closed list opens with its existing
// search text, an open list closes and clears it.
func (c *Controller) Toggle() {
	if c.state.Open {
		c.close(ReasonToggle, true)
		return
	}
	c.open()
}

// Dismiss handles an interaction outside the widget
func (c *Controller) Dismiss() {
	c.close(ReasonOutside, true)
}

// Escape closes the list; the search text is kept unless the policy clears it
func (c *Controller) Escape() {
	c.close(ReasonEscape, c.escape == EscapeClearsSearch)
}

// CloseAfterSelect closes the list after a single selection, keeping the search text
func (c *Controller) CloseAfterSelect() {
	c.close(ReasonSelect, false)
}

// SetSearch updates the search text. Typing while closed is ignored and
// reported as false.
func (c *Controller) SetSearch(text string) bool {
	if !c.state.Open {
		return false
	}
	c.setSearch(text)
	return true
}

func (c *Controller) open() {
	c.state.Open = true
	c.bus.Publish(OpenedEvent{Search: c.state.Search})
}

func (c *Controller) close(reason CloseReason, clearSearch bool) {
	wasOpen := c.state.Open
	c.state.Open = false
	if wasOpen {
		c.bus.Publish(ClosedEvent{Reason: reason})
	}
	if clearSearch {
		c.setSearch("")
	}
}

func (c *Controller) setSearch(text string) {
	if text == c.state.Search {
		return
	}
	old := c.state.Search
	c.state.Search = text
	c.bus.Publish(SearchChangedEvent{Old: old, New: text})
}
