package renderer

import (
	"github.com/go-gl/gl/v3.3-compatibility/gl"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// OverlayStyle is how the rubberband rectangle is drawn.
type OverlayStyle struct {
	Fill        [4]float32
	Border      [4]float32
	BorderWidth float32
}

// DefaultOverlayStyle returns a translucent blue box.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		Fill:        [4]float32{0.2, 0.6, 1.0, 0.3},
		Border:      [4]float32{0.0, 0.4, 0.8, 0.8},
		BorderWidth: 2,
	}
}

// OverlayQuad converts a window rectangle into the four corners of the overlay
// in viewport pixels, bottom-left origin, counter-clockwise.
func OverlayQuad(r picking.Rect, vp picking.Viewport) [4][2]float32 {
	v := r.ToViewport(vp)
	return [4][2]float32{
		{float32(v.MinX), float32(v.MinY)},
		{float32(v.MaxX), float32(v.MinY)},
		{float32(v.MaxX), float32(v.MaxY)},
		{float32(v.MinX), float32(v.MaxY)},
	}
}

// DrawOverlay draws the rubberband over the finished frame.
func (r *Renderer) DrawOverlay(rect picking.Rect) {
	if !r.compat {
		return
	}
	quad := OverlayQuad(rect, r.vp)
	style := r.cfg.Overlay

	gl.PushAttrib(gl.ALL_ATTRIB_BITS)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.LIGHTING)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(0)

	ortho := math.Ortho(0, float32(r.vp.Width), 0, float32(r.vp.Height), -1, 1)
	ident := math.Identity()
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadMatrixf(ortho.Ptr())
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadMatrixf(ident.Ptr())

	gl.Color4f(style.Fill[0], style.Fill[1], style.Fill[2], style.Fill[3])
	gl.Begin(gl.QUADS)
	for _, c := range quad {
		gl.Vertex2f(c[0], c[1])
	}
	gl.End()

	gl.LineWidth(style.BorderWidth)
	gl.Color4f(style.Border[0], style.Border[1], style.Border[2], style.Border[3])
	gl.Begin(gl.LINE_LOOP)
	for _, c := range quad {
		gl.Vertex2f(c[0], c[1])
	}
	gl.End()

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopAttrib()
}
