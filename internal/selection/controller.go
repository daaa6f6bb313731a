package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// Handler is notified after every completed pick with the picker's result
// and the reconciled selection.
type Handler func(res picking.Result, selected Set)

// Controller owns the selected set and reconciles each pick into it.
//
// A press without the additive modifier clears the set immediately, so a
// click on empty space deselects even though no pick pass runs.
type Controller struct {
	picker   picking.Picker
	tracker  Tracker
	selected Set
	viewport picking.Viewport
	live     picking.IDTable
	handler  Handler
}

// NewController returns a controller picking through p. live may be nil.
func NewController(p picking.Picker, live picking.IDTable) *Controller {
	return &Controller{
		picker:   p,
		selected: NewSet(),
		live:     live,
	}
}

// SetPicker swaps the picking strategy. An active drag is kept.
func (c *Controller) SetPicker(p picking.Picker) {
	c.picker = p
}

// Picker returns the current picking strategy.
func (c *Controller) Picker() picking.Picker {
	return c.picker
}

// SetViewport records the viewport picks are resolved against.
func (c *Controller) SetViewport(vp picking.Viewport) {
	c.viewport = vp
}

// SetHandler installs the completion callback. nil removes it.
func (c *Controller) SetHandler(h Handler) {
	c.handler = h
}

// OnPress starts a drag at window pixel (x, y).
func (c *Controller) OnPress(x, y float64, additive bool) {
	if !additive {
		c.selected.Clear()
	}
	c.tracker.Begin(x, y)
}

// OnDrag moves the free corner of the active drag.
func (c *Controller) OnDrag(x, y float64) {
	c.tracker.Update(x, y)
}

// OnRelease resolves the drag with the given matrices and merges the picked
// IDs into the selection. It returns ErrNoSelection when no drag was active.
func (c *Controller) OnRelease(view, projection math.Mat4) (Set, error) {
	start, end, err := c.tracker.End()
	if err != nil {
		return c.selected.Clone(), err
	}
	if c.picker == nil {
		return c.selected.Clone(), fmt.Errorf("selection: no picker configured")
	}

	res, err := c.picker.Pick(picking.Request{
		Start:      start,
		End:        end,
		Viewport:   c.viewport,
		View:       view,
		Projection: projection,
		Live:       c.live,
	})
	if err != nil {
		logger.Error("pick failed",
			zap.String("strategy", string(c.picker.Strategy())),
			zap.Error(err),
		)
		return c.selected.Clone(), fmt.Errorf("pick: %w", err)
	}

	c.selected.Add(res.IDs...)
	logger.Debug("selection updated",
		zap.Bool("performed", res.Performed),
		zap.Int("picked", len(res.IDs)),
		zap.Int("selected", c.selected.Len()),
	)

	if c.handler != nil {
		c.handler(res, c.selected.Clone())
	}
	return c.selected.Clone(), nil
}

// Cancel aborts the active drag. The selection is left as the press left it.
func (c *Controller) Cancel() {
	c.tracker.Cancel()
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.tracker.Active()
}

// Region returns the active drag rectangle in window pixels.
func (c *Controller) Region() (picking.Rect, bool) {
	return c.tracker.Region()
}

// Select replaces the selection with ids.
func (c *Controller) Select(ids ...uint32) {
	c.selected.Clear()
	c.selected.Add(ids...)
}

// Clear empties the selection.
func (c *Controller) Clear() {
	c.selected.Clear()
}

// Contains reports whether id is selected. Renderers use it per object.
func (c *Controller) Contains(id uint32) bool {
	return c.selected.Contains(id)
}

// Selected returns a copy of the selection.
func (c *Controller) Selected() Set {
	return c.selected.Clone()
}
