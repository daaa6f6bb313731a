// Package selection turns rubberband drags into a selected set of object IDs.
package selection

import (
	"errors"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
)

// ErrNoSelection is returned by End when no drag is in progress.
var ErrNoSelection = errors.New("selection: no selection in progress")

// Tracker owns the lifecycle of one in-progress drag. It does no coordinate
// conversion: corners come back in whatever space Begin and Update used.
type Tracker struct {
	active  bool
	start   picking.Point
	current picking.Point
}

// Begin arms the tracker at (x, y), overwriting any drag left active.
func (t *Tracker) Begin(x, y float64) {
	t.active = true
	t.start = picking.Point{X: x, Y: y}
	t.current = t.start
}

// Update moves the free corner. It does nothing when no drag is active.
func (t *Tracker) Update(x, y float64) {
	if !t.active {
		return
	}
	t.current = picking.Point{X: x, Y: y}
}

// End finishes the drag and returns its two corners.
func (t *Tracker) End() (start, end picking.Point, err error) {
	if !t.active {
		return picking.Point{}, picking.Point{}, ErrNoSelection
	}
	t.active = false
	return t.start, t.current, nil
}

// Cancel drops the drag without a result.
func (t *Tracker) Cancel() {
	t.active = false
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Region returns the normalized rectangle of the active drag, for the overlay.
func (t *Tracker) Region() (picking.Rect, bool) {
	if !t.active {
		return picking.Rect{}, false
	}
	return picking.RectFromCorners(t.start, t.current), true
}
