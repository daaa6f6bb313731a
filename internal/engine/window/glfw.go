package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/engine/input"
	"github.com/Faultbox/rubberpick/internal/logger"
)

// GLFW wraps a GLFW window and its OpenGL context.
type GLFW struct {
	config   Config
	win      *glfw.Window
	attached *input.Input
}

// NewGLFW creates a GLFW window with a compatibility-profile context.
func NewGLFW(cfg Config) (*GLFW, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Info("window created",
		zap.String("backend", string(BackendGLFW)),
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return &GLFW{config: cfg, win: win}, nil
}

// Poll implements Host. Callbacks are attached to the first queue polled.
func (w *GLFW) Poll(in *input.Input) bool {
	if w.attached != in {
		input.AttachGLFW(w.win, in)
		w.attached = in
	}
	in.Reset()
	glfw.PollEvents()
	return in.Quit() || w.win.ShouldClose()
}

// Close destroys the window and terminates GLFW.
func (w *GLFW) Close() {
	logger.Info("closing window")
	w.win.Destroy()
	glfw.Terminate()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *GLFW) SwapBuffers() {
	w.win.SwapBuffers()
}

// GetSize returns the framebuffer size in pixels.
func (w *GLFW) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *GLFW) SetTitle(title string) {
	w.win.SetTitle(title)
}
