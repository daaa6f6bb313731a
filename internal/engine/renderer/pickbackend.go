package renderer

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-compatibility/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/pkg/math"
)

var _ picking.Backend = (*Renderer)(nil)

// Capabilities implements picking.Backend. The selection buffer needs a
// compatibility context; readback needs the ID program and its framebuffer.
func (r *Renderer) Capabilities() picking.Capabilities {
	return picking.Capabilities{
		SelectionBuffer: r.compat,
		Readback:        r.idProgram != nil && r.idTarget != nil,
	}
}

// RenderIDPass implements picking.Backend. Every cube, legacy and shader row
// alike, is drawn in its ID color with blending, multisampling and dithering off.
func (r *Renderer) RenderIDPass(view, projection math.Mat4, vp picking.Viewport) error {
	if r.idProgram == nil || r.idTarget == nil {
		return fmt.Errorf("id pass: %w", picking.ErrUnsupported)
	}
	r.idTarget.Resize(vp.Width, vp.Height)
	restore := r.idTarget.BindWithViewport()

	saved := saveCaps(gl.BLEND, gl.MULTISAMPLE, gl.DITHER, gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.MULTISAMPLE)
	gl.Disable(gl.DITHER)
	gl.Enable(gl.DEPTH_TEST)

	bg := picking.EncodeID(picking.Background).Floats()
	r.idTarget.Clear(bg[0], bg[1], bg[2], bg[3])

	p := r.idProgram
	p.Use()
	viewProj := projection.Mul(view)
	r.mesh.bind()
	for _, o := range r.scene.Objects() {
		p.SetMat4("uMVP", viewProj.Mul(o.Model))
		p.SetVec4("uIDColor", picking.EncodeID(o.ID).Floats())
		r.mesh.draw()
	}
	r.mesh.unbind()
	gl.UseProgram(0)

	gl.Finish()

	r.endIDPass = func() {
		saved.restore()
		restore()
	}
	return nil
}

// ReadRegion implements picking.Backend.
func (r *Renderer) ReadRegion(x, y, w, h int32) ([]byte, error) {
	if r.idTarget == nil {
		return nil, picking.ErrUnsupported
	}
	return r.idTarget.ReadRegion(x, y, w, h)
}

// EndIDPass implements picking.Backend.
func (r *Renderer) EndIDPass() {
	if r.endIDPass != nil {
		r.endIDPass()
		r.endIDPass = nil
	}
}

// SelectPass implements picking.Backend with GL_SELECT. Each cube is drawn in
// immediate mode under its own name through the restricted projection.
func (r *Renderer) SelectPass(view, restricted math.Mat4, vp picking.Viewport, bufferSize int) (int, []uint32, error) {
	if !r.compat {
		return 0, nil, fmt.Errorf("select pass: %w", picking.ErrUnsupported)
	}
	if bufferSize <= 0 {
		return 0, nil, fmt.Errorf("select pass: buffer size %d", bufferSize)
	}

	buf := make([]uint32, bufferSize)
	// GL keeps the pointer until RenderMode(RENDER) returns.
	var pinner runtime.Pinner
	pinner.Pin(&buf[0])
	defer pinner.Unpin()

	gl.SelectBuffer(int32(len(buf)), &buf[0])

	gl.PushAttrib(gl.ALL_ATTRIB_BITS)
	gl.UseProgram(0)
	gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadMatrixf(restricted.Ptr())
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()

	gl.RenderMode(gl.SELECT)
	gl.InitNames()
	gl.PushName(picking.NoObject)
	for _, o := range r.scene.Objects() {
		mv := view.Mul(o.Model)
		gl.LoadMatrixf(mv.Ptr())
		gl.LoadName(o.ID)
		immediateCube(false)
	}
	gl.Flush()
	hits := gl.RenderMode(gl.RENDER)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopAttrib()

	logger.Debug("select pass", zap.Int32("hits", hits), zap.Int("capacity", bufferSize))
	return int(hits), buf, nil
}

// capState remembers GL enable flags so a pass can put them back.
type capState struct {
	caps    []uint32
	enabled []bool
}

func saveCaps(caps ...uint32) capState {
	s := capState{caps: caps, enabled: make([]bool, len(caps))}
	for i, c := range caps {
		s.enabled[i] = gl.IsEnabled(c)
	}
	return s
}

func (s capState) restore() {
	for i, c := range s.caps {
		if s.enabled[i] {
			gl.Enable(c)
		} else {
			gl.Disable(c)
		}
	}
}
