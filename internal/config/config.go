// Package config handles viewer configuration loading.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Picking  PickingConfig  `yaml:"picking"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Backend    string     `yaml:"backend"` // sdl or glfw
	Samples    int        `yaml:"samples"`
	Background [3]float32 `yaml:"background"`
}

// CameraConfig holds the arcball camera settings.
type CameraConfig struct {
	FovY       float32 `yaml:"fov_y"` // degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Distance   float32 `yaml:"distance"`
	OrbitSpeed float32 `yaml:"orbit_speed"`
	PanSpeed   float32 `yaml:"pan_speed"`
	ZoomSpeed  float32 `yaml:"zoom_speed"`
}

// PickingConfig holds the rubberband picking settings.
type PickingConfig struct {
	Strategy         string  `yaml:"strategy"` // auto, color or hitrecord
	MinDragPixels    float64 `yaml:"min_drag_pixels"`
	SelectBufferSize int     `yaml:"select_buffer_size"`
	ValidateIDs      bool    `yaml:"validate_ids"`
	DumpDir          string  `yaml:"dump_dir"`
}

// OverlayConfig holds the rubberband rectangle style.
type OverlayConfig struct {
	Fill        [4]float32 `yaml:"fill"`
	Border      [4]float32 `yaml:"border"`
	BorderWidth float32    `yaml:"border_width"`
}

// SceneConfig lays out the cube rows.
type SceneConfig struct {
	LegacyCubes int     `yaml:"legacy_cubes"`
	ShaderCubes int     `yaml:"shader_cubes"`
	CubeSize    float32 `yaml:"cube_size"`
	Spacing     float32 `yaml:"spacing"`
	RowOffset   float32 `yaml:"row_offset"`
	TiltX       float32 `yaml:"tilt_x"`
	TiltY       float32 `yaml:"tilt_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			VSync:      true,
			Backend:    "sdl",
			Background: [3]float32{0.1, 0.1, 0.15},
		},
		Camera: CameraConfig{
			FovY:       45,
			Near:       0.1,
			Far:        100,
			Distance:   8,
			OrbitSpeed: 0.01,
			PanSpeed:   0.002,
			ZoomSpeed:  0.1,
		},
		Picking: PickingConfig{
			Strategy:         "auto",
			MinDragPixels:    5,
			SelectBufferSize: 512,
			ValidateIDs:      true,
		},
		Overlay: OverlayConfig{
			Fill:        [4]float32{0.2, 0.6, 1.0, 0.3},
			Border:      [4]float32{0.0, 0.4, 0.8, 0.8},
			BorderWidth: 2,
		},
		Scene: SceneConfig{
			LegacyCubes: 3,
			ShaderCubes: 3,
			CubeSize:    1,
			Spacing:     3,
			RowOffset:   2,
			TiltX:       30,
			TiltY:       15,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Graphics.Backend {
	case "sdl", "glfw":
	default:
		errs = append(errs, fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got %v and %v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_y %v out of range", c.Camera.FovY))
	}
	switch c.Picking.Strategy {
	case "auto", "color", "hitrecord":
	default:
		errs = append(errs, fmt.Errorf("picking: unknown strategy %q", c.Picking.Strategy))
	}
	if c.Picking.SelectBufferSize < 4 {
		errs = append(errs, fmt.Errorf("picking: select_buffer_size %d cannot hold one record", c.Picking.SelectBufferSize))
	}
	if c.Scene.LegacyCubes < 0 || c.Scene.ShaderCubes < 0 || c.Scene.CubeSize <= 0 {
		errs = append(errs, errors.New("scene: cube counts must be non-negative and cube_size positive"))
	}
	return errors.Join(errs...)
}
