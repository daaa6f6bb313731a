package picking

import (
	gomath "math"

	"github.com/Faultbox/rubberpick/pkg/math"
)

// AABB represents an axis-aligned bounding box in object space.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NewAABB creates an AABB from min and max corners, handling swapped axes.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	box := AABB{
		Min: [3]float32{minX, minY, minZ},
		Max: [3]float32{maxX, maxY, maxZ},
	}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// CubeAABB returns the box of a cube with the given half extent.
func CubeAABB(half float32) AABB {
	return NewAABB(-half, -half, -half, half, half, half)
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]math.Vec3 {
	var out [8]math.Vec3
	for i := 0; i < 8; i++ {
		out[i] = math.Vec3{
			X: pickAxis(b, 0, i&1 != 0),
			Y: pickAxis(b, 1, i&2 != 0),
			Z: pickAxis(b, 2, i&4 != 0),
		}
	}
	return out
}

func pickAxis(b AABB, axis int, high bool) float32 {
	if high {
		return b.Max[axis]
	}
	return b.Min[axis]
}

// ProjectedBounds is the screen footprint of a box.
type ProjectedBounds struct {
	Rect       Rect    // viewport pixels, bottom-left origin
	MinZ, MaxZ float64 // window depth in [0, 1]
}

// ProjectAABB projects the box through mvp into viewport pixels. ok is false
// when any corner lies behind the eye, the footprint is then undefined.
func ProjectAABB(box AABB, mvp math.Mat4, vp Viewport) (ProjectedBounds, bool) {
	out := ProjectedBounds{
		Rect: Rect{MinX: gomath.Inf(1), MinY: gomath.Inf(1), MaxX: gomath.Inf(-1), MaxY: gomath.Inf(-1)},
		MinZ: gomath.Inf(1),
		MaxZ: gomath.Inf(-1),
	}
	for _, c := range box.Corners() {
		clip := mvp.MulVec4(math.Vec4{c.X, c.Y, c.Z, 1})
		if clip[3] <= 0 {
			return ProjectedBounds{}, false
		}
		nx := float64(clip[0] / clip[3])
		ny := float64(clip[1] / clip[3])
		nz := float64(clip[2] / clip[3])

		px := (nx + 1) / 2 * float64(vp.Width)
		py := (ny + 1) / 2 * float64(vp.Height)
		z := (nz + 1) / 2

		out.Rect.MinX = gomath.Min(out.Rect.MinX, px)
		out.Rect.MaxX = gomath.Max(out.Rect.MaxX, px)
		out.Rect.MinY = gomath.Min(out.Rect.MinY, py)
		out.Rect.MaxY = gomath.Max(out.Rect.MaxY, py)
		out.MinZ = gomath.Min(out.MinZ, z)
		out.MaxZ = gomath.Max(out.MaxZ, z)
	}
	return out, true
}
