// Package viewer runs the rubberband selection viewer: window, scene,
// picking and camera wired into one frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/config"
	"github.com/Faultbox/rubberpick/internal/engine/camera"
	"github.com/Faultbox/rubberpick/internal/engine/debug"
	"github.com/Faultbox/rubberpick/internal/engine/input"
	"github.com/Faultbox/rubberpick/internal/engine/lighting"
	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/engine/renderer"
	"github.com/Faultbox/rubberpick/internal/engine/scene"
	"github.com/Faultbox/rubberpick/internal/engine/window"
	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/internal/selection"
)

// AppTitle is the window title prefix.
const AppTitle = "Rubberpick"

// Viewer is the main viewer instance.
type Viewer struct {
	cfg      *config.Config
	host     window.Host
	renderer *renderer.Renderer
	scene    *scene.Scene
	input    *input.Input
	state    *state
}

// New opens the window and builds the scene, renderer and pickers.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("backend", cfg.Graphics.Backend),
		zap.String("strategy", cfg.Picking.Strategy),
	)

	sc, err := scene.New(SceneConfig(cfg.Scene))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	v := &Viewer{cfg: cfg, scene: sc, input: input.New()}

	// Window first: the renderer needs a current GL context.
	v.host, err = window.Open(window.Backend(cfg.Graphics.Backend), window.Config{
		Title:      AppTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.host.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Graphics.Background,
		Overlay: renderer.OverlayStyle{
			Fill:        cfg.Overlay.Fill,
			Border:      cfg.Overlay.Border,
			BorderWidth: cfg.Overlay.BorderWidth,
		},
	}, sc, lighting.Default())
	if err != nil {
		v.host.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	factory := NewPickerFactory(v.renderer, PickingOptions(cfg.Picking))
	p, err := factory(picking.Strategy(cfg.Picking.Strategy))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create picker: %w", err)
	}

	sel := selection.NewController(p, sc)
	cam := camera.NewController(NewCamera(cfg.Camera))
	v.state = newState(sel, cam, v.renderer, factory)
	sel.SetHandler(v.onSelection)

	logger.Info("viewer initialized",
		zap.Int("objects", sc.Len()),
		zap.String("strategy", string(p.Strategy())),
	)
	return v, nil
}

// Run starts the frame loop and returns when the window closes.
func (v *Viewer) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for !v.state.quit {
		if v.host.Poll(v.input) {
			break
		}
		for _, event := range v.input.Events() {
			v.state.handle(event)
		}
		if v.state.quit {
			break
		}

		if v.state.titleDirty {
			v.host.SetTitle(Title(AppTitle, v.state.strategy(), v.state.sel.Selected().IDs()))
			v.state.titleDirty = false
		}

		v.render()
		v.host.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) render() {
	view, proj := v.state.matrices()
	v.renderer.Draw(view, proj, v.state.sel)
	if rect, ok := v.state.sel.Region(); ok {
		v.renderer.DrawOverlay(rect)
	}
}

func (v *Viewer) onSelection(res picking.Result, selected selection.Set) {
	logger.Info("rubberband pick",
		zap.String("strategy", string(v.state.strategy())),
		zap.Bool("performed", res.Performed),
		zap.Uint32s("picked", res.IDs),
		zap.Uint32s("selected", selected.IDs()),
	)
	for _, id := range res.IDs {
		if o, ok := v.scene.Object(id); ok {
			logger.Debug("picked object", zap.Uint32("id", id), zap.Stringer("kind", o.Kind))
		}
	}
	v.state.titleDirty = true
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.host != nil {
		v.host.Close()
	}
}

// NewPickerFactory returns a factory building pickers on backend.
func NewPickerFactory(backend picking.Backend, opts picking.Options) PickerFactory {
	return func(s picking.Strategy) (picking.Picker, error) {
		return picking.New(s, backend, opts)
	}
}

// PickingOptions maps the picking config section to picker options.
func PickingOptions(c config.PickingConfig) picking.Options {
	opts := picking.DefaultOptions()
	opts.MinDragPixels = c.MinDragPixels
	opts.SelectBufferSize = c.SelectBufferSize
	opts.ValidateIDs = c.ValidateIDs
	if c.DumpDir != "" {
		opts.Dump = debug.NewPickDumper(c.DumpDir, "pick").Dump
	}
	return opts
}

// SceneConfig maps the scene config section to the scene layout.
func SceneConfig(c config.SceneConfig) scene.Config {
	return scene.Config{
		LegacyCount: c.LegacyCubes,
		ShaderCount: c.ShaderCubes,
		Size:        c.CubeSize,
		Spacing:     c.Spacing,
		RowOffset:   c.RowOffset,
		TiltX:       c.TiltX,
		TiltY:       c.TiltY,
	}
}

// NewCamera builds the arcball camera from the camera config section and
// records its starting pose as home.
func NewCamera(c config.CameraConfig) *camera.ArcballCamera {
	cam := camera.NewArcballCamera(c.Distance)
	cam.FovY = c.FovY
	cam.Near = c.Near
	cam.Far = c.Far
	cam.OrbitSensitivity = c.OrbitSpeed
	cam.PanSensitivity = c.PanSpeed
	cam.ZoomSensitivity = c.ZoomSpeed
	cam.SetHome()
	return cam
}
