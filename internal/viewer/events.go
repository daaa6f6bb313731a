package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/engine/camera"
	"github.com/Faultbox/rubberpick/internal/engine/input"
	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/internal/selection"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// surface is the part of the renderer the event loop needs.
type surface interface {
	Resize(width, height int)
	Viewport() picking.Viewport
	Aspect() float32
}

// PickerFactory builds a picker for a strategy.
type PickerFactory func(picking.Strategy) (picking.Picker, error)

// state routes input events to the selection and camera controllers. It holds
// no GL objects.
type state struct {
	sel       *selection.Controller
	cam       *camera.Controller
	surface   surface
	newPicker PickerFactory

	quit       bool
	titleDirty bool
}

func newState(sel *selection.Controller, cam *camera.Controller, s surface, f PickerFactory) *state {
	st := &state{sel: sel, cam: cam, surface: s, newPicker: f, titleDirty: true}
	sel.SetViewport(s.Viewport())
	return st
}

// matrices returns the camera view and projection for the current surface.
func (s *state) matrices() (view, proj math.Mat4) {
	c := s.cam.Camera()
	return c.ViewMatrix(), c.ProjectionMatrix(s.surface.Aspect())
}

func (s *state) handle(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		s.quit = true

	case input.EventWindowResize:
		if e.Width <= 0 || e.Height <= 0 {
			return
		}
		s.surface.Resize(e.Width, e.Height)
		s.sel.SetViewport(s.surface.Viewport())

	case input.EventKeyDown:
		s.handleKey(e)

	case input.EventMouseDown:
		switch {
		case e.Button == input.ButtonLeft:
			if s.cam.Mode() != camera.DragNone {
				return
			}
			s.sel.OnPress(e.X, e.Y, e.Mods.Has(input.ModCtrl))
			s.titleDirty = true
		case e.Button == input.ButtonMiddle,
			e.Button == input.ButtonRight && e.Mods.Has(input.ModShift):
			if !s.sel.Dragging() {
				s.cam.Begin(camera.DragPan, float32(e.X), float32(e.Y))
			}
		case e.Button == input.ButtonRight:
			if !s.sel.Dragging() {
				s.cam.Begin(camera.DragOrbit, float32(e.X), float32(e.Y))
			}
		}

	case input.EventMouseMove:
		if s.sel.Dragging() {
			s.sel.OnDrag(e.X, e.Y)
		}
		if s.cam.Mode() != camera.DragNone {
			s.cam.Move(float32(e.X), float32(e.Y))
		}

	case input.EventMouseUp:
		switch e.Button {
		case input.ButtonLeft:
			if !s.sel.Dragging() {
				return
			}
			s.sel.OnDrag(e.X, e.Y)
			view, proj := s.matrices()
			// OnRelease logs pick failures itself.
			_, _ = s.sel.OnRelease(view, proj)
			s.titleDirty = true
		case input.ButtonMiddle, input.ButtonRight:
			s.cam.End()
		}

	case input.EventWheel:
		s.cam.Wheel(float32(e.Wheel))
	}
}

func (s *state) handleKey(e input.Event) {
	switch e.Key {
	case input.KeyEscape:
		if s.sel.Dragging() {
			s.sel.Cancel()
			return
		}
		s.quit = true
	case input.KeyC:
		s.sel.Clear()
		s.titleDirty = true
	case input.KeyR:
		s.cam.Camera().Reset()
	case input.KeyTab:
		s.toggleStrategy()
	}
}

// toggleStrategy swaps between color readback and hit records. The current
// picker stays when the other strategy is unavailable.
func (s *state) toggleStrategy() {
	if s.sel.Dragging() {
		return
	}
	next := picking.StrategyHitRecord
	if cur := s.sel.Picker(); cur != nil && cur.Strategy() == picking.StrategyHitRecord {
		next = picking.StrategyColor
	}

	p, err := s.newPicker(next)
	if err != nil {
		logger.Warn("cannot switch picking strategy",
			zap.String("strategy", string(next)),
			zap.Error(err),
		)
		return
	}
	s.sel.SetPicker(p)
	s.titleDirty = true
	logger.Info("picking strategy changed", zap.String("strategy", string(next)))
}

// strategy returns the active strategy name, empty without a picker.
func (s *state) strategy() picking.Strategy {
	if p := s.sel.Picker(); p != nil {
		return p.Strategy()
	}
	return ""
}
