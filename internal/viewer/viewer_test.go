package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubberpick/internal/config"
	"github.com/Faultbox/rubberpick/internal/engine/camera"
	"github.com/Faultbox/rubberpick/internal/engine/input"
	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/engine/scene"
	"github.com/Faultbox/rubberpick/internal/selection"
)

type fakeSurface struct {
	vp      picking.Viewport
	resizes int
}

func (f *fakeSurface) Resize(width, height int) {
	f.vp = picking.Viewport{Width: int32(width), Height: int32(height)}
	f.resizes++
}

func (f *fakeSurface) Viewport() picking.Viewport { return f.vp }

func (f *fakeSurface) Aspect() float32 {
	return float32(f.vp.Width) / float32(f.vp.Height)
}

// fixture wires the default scene to a software backend at 800x600.
// Legacy cubes 1..3 sit in the lower half of the screen, shader cubes
// 100..102 in the upper half.
func fixture(t *testing.T, strategy picking.Strategy) (*state, *fakeSurface) {
	t.Helper()
	cfg := config.Default()

	sc, err := scene.New(SceneConfig(cfg.Scene))
	require.NoError(t, err)

	backend := &picking.SoftwareBackend{Objects: sc.SoftwareObjects()}
	factory := NewPickerFactory(backend, PickingOptions(cfg.Picking))
	p, err := factory(strategy)
	require.NoError(t, err)

	surf := &fakeSurface{vp: picking.Viewport{Width: 800, Height: 600}}
	sel := selection.NewController(p, sc)
	cam := camera.NewController(NewCamera(cfg.Camera))
	return newState(sel, cam, surf, factory), surf
}

func drag(s *state, x0, y0, x1, y1 float64, mods input.Mods) {
	s.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, X: x0, Y: y0, Mods: mods})
	s.handle(input.Event{Type: input.EventMouseMove, X: (x0 + x1) / 2, Y: (y0 + y1) / 2})
	s.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft, X: x1, Y: y1, Mods: mods})
}

func key(s *state, k input.Key) {
	s.handle(input.Event{Type: input.EventKeyDown, Key: k})
}

func TestRubberbandSelectsRows(t *testing.T) {
	for _, strategy := range []picking.Strategy{picking.StrategyColor, picking.StrategyHitRecord} {
		t.Run(string(strategy), func(t *testing.T) {
			s, _ := fixture(t, strategy)

			drag(s, 20, 20, 780, 280, 0)
			assert.Equal(t, []uint32{100, 101, 102}, s.sel.Selected().IDs())

			// a new drag without ctrl replaces the selection
			drag(s, 20, 320, 780, 580, 0)
			assert.Equal(t, []uint32{1, 2, 3}, s.sel.Selected().IDs())

			// ctrl adds to it
			drag(s, 20, 20, 780, 280, input.ModCtrl)
			assert.Equal(t, []uint32{1, 2, 3, 100, 101, 102}, s.sel.Selected().IDs())
		})
	}
}

func TestDragDirectionDoesNotMatter(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	drag(s, 780, 280, 20, 20, 0)
	assert.Equal(t, []uint32{100, 101, 102}, s.sel.Selected().IDs())
}

func TestClearKey(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	drag(s, 20, 20, 780, 580, 0)
	require.Equal(t, 6, s.sel.Selected().Len())

	s.titleDirty = false
	key(s, input.KeyC)
	assert.Zero(t, s.sel.Selected().Len())
	assert.True(t, s.titleDirty)
}

func TestEscapeCancelsDragThenQuits(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)

	s.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, X: 20, Y: 20})
	require.True(t, s.sel.Dragging())

	key(s, input.KeyEscape)
	assert.False(t, s.sel.Dragging())
	assert.False(t, s.quit)

	// the release after a cancel picks nothing
	s.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft, X: 780, Y: 580})
	assert.Zero(t, s.sel.Selected().Len())

	key(s, input.KeyEscape)
	assert.True(t, s.quit)
}

func TestQuitEvent(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	s.handle(input.Event{Type: input.EventQuit})
	assert.True(t, s.quit)
}

func TestTabTogglesStrategy(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)

	key(s, input.KeyTab)
	assert.Equal(t, picking.StrategyHitRecord, s.strategy())

	drag(s, 20, 320, 780, 580, 0)
	assert.Equal(t, []uint32{1, 2, 3}, s.sel.Selected().IDs())

	key(s, input.KeyTab)
	assert.Equal(t, picking.StrategyColor, s.strategy())
}

func TestTabKeepsPickerOnFailure(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	s.newPicker = func(picking.Strategy) (picking.Picker, error) {
		return nil, picking.ErrUnsupported
	}
	s.titleDirty = false

	key(s, input.KeyTab)
	assert.Equal(t, picking.StrategyColor, s.strategy())
	assert.False(t, s.titleDirty)
}

func TestResizeUpdatesViewport(t *testing.T) {
	s, surf := fixture(t, picking.StrategyColor)

	s.handle(input.Event{Type: input.EventWindowResize, Width: 400, Height: 300})
	assert.Equal(t, 1, surf.resizes)
	assert.Equal(t, picking.Viewport{Width: 400, Height: 300}, surf.vp)

	// the same scene at half size: upper row now within y < 140
	drag(s, 10, 10, 390, 140, 0)
	assert.Equal(t, []uint32{100, 101, 102}, s.sel.Selected().IDs())

	s.handle(input.Event{Type: input.EventWindowResize, Width: 0, Height: 300})
	assert.Equal(t, 1, surf.resizes, "minimized windows are ignored")
}

func TestCameraDrags(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	cam := s.cam.Camera()
	home := cam.Position()

	// right drag orbits
	s.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonRight, X: 100, Y: 100})
	assert.Equal(t, camera.DragOrbit, s.cam.Mode())
	s.handle(input.Event{Type: input.EventMouseMove, X: 150, Y: 100})
	s.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonRight, X: 150, Y: 100})
	assert.Equal(t, camera.DragNone, s.cam.Mode())
	assert.NotEqual(t, home, cam.Position())
	assert.Zero(t, s.sel.Selected().Len())

	key(s, input.KeyR)
	assert.InDelta(t, home.X, cam.Position().X, 1e-4)
	assert.InDelta(t, home.Z, cam.Position().Z, 1e-4)

	// middle drag and shift+right drag pan
	for _, ev := range []input.Event{
		{Type: input.EventMouseDown, Button: input.ButtonMiddle, X: 100, Y: 100},
		{Type: input.EventMouseDown, Button: input.ButtonRight, Mods: input.ModShift, X: 100, Y: 100},
	} {
		cam.Reset()
		s.handle(ev)
		assert.Equal(t, camera.DragPan, s.cam.Mode())
		s.handle(input.Event{Type: input.EventMouseMove, X: 200, Y: 100})
		s.handle(input.Event{Type: input.EventMouseUp, Button: ev.Button})
		assert.NotZero(t, cam.Target.X)
	}
}

func TestLeftPressIgnoredWhileOrbiting(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	s.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonRight, X: 100, Y: 100})
	s.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, X: 100, Y: 100})
	assert.False(t, s.sel.Dragging())
}

func TestWheelZooms(t *testing.T) {
	s, _ := fixture(t, picking.StrategyColor)
	before := s.cam.Camera().Distance
	s.handle(input.Event{Type: input.EventWheel, Wheel: 1})
	assert.Less(t, s.cam.Camera().Distance, before)
}

func TestPickingOptions(t *testing.T) {
	c := config.Default().Picking
	opts := PickingOptions(c)
	assert.Equal(t, 5.0, opts.MinDragPixels)
	assert.Equal(t, 512, opts.SelectBufferSize)
	assert.True(t, opts.ValidateIDs)
	assert.Nil(t, opts.Dump)

	c.DumpDir = t.TempDir()
	assert.NotNil(t, PickingOptions(c).Dump)
}

func TestNewCameraUsesConfig(t *testing.T) {
	c := config.Default().Camera
	c.Distance = 12
	c.FovY = 60
	cam := NewCamera(c)
	assert.Equal(t, float32(12), cam.Distance)
	assert.Equal(t, float32(60), cam.FovY)

	cam.Zoom(3)
	cam.Reset()
	assert.Equal(t, float32(12), cam.Distance)
}

func TestNewPickerFactoryUnsupported(t *testing.T) {
	f := NewPickerFactory(&picking.SoftwareBackend{}, picking.DefaultOptions())
	_, err := f("raycast")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, picking.ErrUnsupported))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		strategy picking.Strategy
		ids      []uint32
		want     string
	}{
		{"empty", picking.StrategyColor, nil, "Rubberpick [color] - nothing selected"},
		{"no picker", "", nil, "Rubberpick - nothing selected"},
		{"some", picking.StrategyHitRecord, []uint32{1, 100}, "Rubberpick [hitrecord] - 2 selected: 1 100"},
		{"capped", picking.StrategyColor, []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, "Rubberpick [color] - 10 selected: 1 2 3 4 5 6 7 8 +2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(AppTitle, tt.strategy, tt.ids))
		})
	}
}
