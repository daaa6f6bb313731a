// Package window creates the OpenGL window and context. SDL2 and GLFW hosts
// share one interface; both request a 3.3 compatibility profile so the
// fixed-function path and the selection buffer are available.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/rubberpick/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// GL context version requested by both hosts.
const (
	GLMajor = 3
	GLMinor = 3
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Samples    int // MSAA samples for the default framebuffer, 0 for none
}

// Host is a window with a current GL context.
type Host interface {
	// Poll refills in with pending events and reports whether quit was requested.
	Poll(in *input.Input) bool
	SwapBuffers()
	GetSize() (int, int)
	SetTitle(title string)
	Close()
}

// Backend names a window system.
type Backend string

const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// Open creates a window with the given backend.
func Open(backend Backend, cfg Config) (Host, error) {
	switch backend {
	case BackendSDL, "":
		w, err := NewSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := NewGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", backend)
	}
}
