package math

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix, laid out the way glUniformMatrix4fv and
// glLoadMatrixf read it: element (row, col) lives at index col*4+row.
type Mat4 [16]float32

// Vec4 is a homogeneous coordinate.
type Vec4 [4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{0: 1, 5: 1, 10: 1, 15: 1}
}

func (m Mat4) at(row, col int) float32 { return m[col*4+row] }

// Perspective is gluPerspective with fovY in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	cot := 1 / math32.Tan(fovY*0.5)
	depth := near - far
	return Mat4{
		0:  cot / aspect,
		5:  cot,
		10: (near + far) / depth,
		11: -1,
		14: 2 * near * far / depth,
	}
}

// Ortho is glOrtho.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	w, h, d := right-left, top-bottom, far-near
	return Mat4{
		0:  2 / w,
		5:  2 / h,
		10: -2 / d,
		12: -(left + right) / w,
		13: -(bottom + top) / h,
		14: -(near + far) / d,
		15: 1,
	}
}

// LookAt builds a right-handed view matrix with the camera looking down -Z.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalize()
	side := fwd.Cross(up).Normalize()
	camUp := side.Cross(fwd)

	m := Identity()
	for i, axis := range [3]Vec3{side, camUp, fwd.Scale(-1)} {
		m[i], m[4+i], m[8+i] = axis.X, axis.Y, axis.Z
		m[12+i] = -axis.Dot(eye)
	}
	return m
}

// PickMatrix is gluPickMatrix: it maps the w x h pixel window centred on
// (cx, cy) onto the whole clip volume. Window coordinates have a bottom-left
// origin and viewport is {x, y, width, height}. Use it as
// PickMatrix(...).Mul(projection).
func PickMatrix(cx, cy, w, h float32, viewport [4]int32) Mat4 {
	if w <= 0 || h <= 0 {
		return Identity()
	}
	vw, vh := float32(viewport[2]), float32(viewport[3])
	dx := (vw - 2*(cx-float32(viewport[0]))) / w
	dy := (vh - 2*(cy-float32(viewport[1]))) / h
	return Translate(dx, dy, 0).Mul(Scale(vw/w, vh/h, 1))
}

// Translate returns a translation.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a non-uniform scale.
func Scale(x, y, z float32) Mat4 {
	return Mat4{0: x, 5: y, 10: z, 15: 1}
}

// RotateX rotates by angle radians about +X.
func RotateX(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[5], m[6] = cos, sin
	m[9], m[10] = -sin, cos
	return m
}

// RotateY rotates by angle radians about +Y.
func RotateY(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[0], m[2] = cos, -sin
	m[8], m[10] = sin, cos
	return m
}

// Mul returns m * o, so o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += m.at(row, k) * o.at(k, col)
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for row := range 4 {
		for k := range 4 {
			out[row] += m.at(row, k) * v[k]
		}
	}
	return out
}

// TransformVec3 transforms the point v and divides by w when w is neither 0
// nor 1.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	h := m.MulVec4(Vec4{v.X, v.Y, v.Z, 1})
	p := Vec3{h[0], h[1], h[2]}
	if w := h[3]; w != 0 && w != 1 {
		p = p.Scale(1 / w)
	}
	return p
}

// Ptr points at the first element for GL calls.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
