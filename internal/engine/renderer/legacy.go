package renderer

import (
	"github.com/go-gl/gl/v3.3-compatibility/gl"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// drawLegacy draws the legacy row in immediate mode with fixed-function lighting.
func (r *Renderer) drawLegacy(view, projection math.Mat4, sel Highlighter) {
	gl.UseProgram(0)
	gl.PushAttrib(gl.LIGHTING_BIT | gl.ENABLE_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(projection.Ptr())
	gl.MatrixMode(gl.MODELVIEW)

	// Light position is transformed by the modelview in effect when it is set.
	gl.LoadMatrixf(view.Ptr())
	dir := [4]float32{r.light.Direction.X, r.light.Direction.Y, r.light.Direction.Z, 0}
	ambient := [4]float32{r.light.Ambient[0], r.light.Ambient[1], r.light.Ambient[2], 1}
	diffuse := [4]float32{r.light.Diffuse[0], r.light.Diffuse[1], r.light.Diffuse[2], 1}
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &dir[0])
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &ambient[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuse[0])
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
	gl.Enable(gl.NORMALIZE)

	for _, o := range r.scene.OfKind(picking.KindLegacy) {
		mv := view.Mul(o.Model)
		gl.LoadMatrixf(mv.Ptr())
		c := o.ColorOf(sel.Contains(o.ID))
		gl.Color3f(c[0], c[1], c[2])
		immediateCube(true)
	}

	gl.PopAttrib()
}

// immediateCube emits the unit cube between Begin and End.
func immediateCube(normals bool) {
	gl.Begin(gl.QUADS)
	for _, f := range cubeFaces {
		if normals {
			gl.Normal3f(f.normal.X, f.normal.Y, f.normal.Z)
		}
		for _, c := range f.corners {
			gl.Vertex3f(c.X, c.Y, c.Z)
		}
	}
	gl.End()
}
