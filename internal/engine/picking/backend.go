package picking

import (
	"errors"

	"github.com/Faultbox/rubberpick/pkg/math"
)

// ErrUnsupported is returned when a backend cannot run the requested pass.
var ErrUnsupported = errors.New("picking: not supported by backend")

// Capabilities describes which picking passes a backend can run.
type Capabilities struct {
	// SelectionBuffer means the backend can collect hit records from a
	// name-tagged pass (fixed-function GL_SELECT or an equivalent).
	SelectionBuffer bool
	// Readback means the backend can render an offscreen ID pass and read
	// pixels back from it.
	Readback bool
}

// Backend is the rendering collaborator a Picker drives.
type Backend interface {
	Capabilities() Capabilities

	// RenderIDPass draws every pickable object once in its flat ID color into
	// an offscreen target cleared to Background, with blending and
	// multisampling disabled. It returns only after the GPU has finished.
	RenderIDPass(view, projection math.Mat4, vp Viewport) error
	// ReadRegion returns tightly packed RGBA8 pixels of the block (x, y, w, h)
	// in viewport coordinates, bottom-left origin, rows bottom to top.
	ReadRegion(x, y, w, h int32) ([]byte, error)
	// EndIDPass restores normal rendering.
	EndIDPass()

	// SelectPass renders every pickable object, tagged with its ID, through the
	// given restricted projection and returns the hit count and raw record
	// stream. bufferSize is the capacity of the stream in uint32 words.
	SelectPass(view, restricted math.Mat4, vp Viewport, bufferSize int) (hits int, buf []uint32, err error)
}
