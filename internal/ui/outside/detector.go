// Package outside reports interactions that happen outside a widget's
// on-screen rectangle.
package outside

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen rectangle in terminal cells. Max is exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Detector calls its callback once per press outside the rectangle and once
// per lost focus.
type Detector struct {
	bounds   Rect
	callback func()
}

// NewDetector creates a detector for the given callback
func NewDetector(callback func()) *Detector {
	return &Detector{callback: callback}
}

// SetBounds updates the rectangle presses are tested against
func (d *Detector) SetBounds(r Rect) {
	d.bounds = r
}

// Bounds returns the current rectangle
func (d *Detector) Bounds() Rect {
	return d.bounds
}

// HandleMouse inspects a mouse message and reports whether it was an
// outside press. Motion, wheel and release events never count.
func (d *Detector) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		return false
	}
	if d.bounds.Contains(msg.X, msg.Y) {
		return false
	}
	d.fire()
	return true
}

// FocusLost reports that keyboard focus moved to another component
func (d *Detector) FocusLost() {
	d.fire()
}

func (d *Detector) fire() {
	if d.callback != nil {
		d.callback()
	}
}
