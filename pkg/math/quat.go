package math

import "github.com/chewxy/math32"

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar W.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity is the rotation that does nothing.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle rotates by angle radians about the unit vector axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	sin, cos := math32.Sincos(angle * 0.5)
	return quat(axis.Scale(sin), cos)
}

func quat(v Vec3, w float32) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (q Quat) vec() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Normalize scales q to unit length. Near-zero quaternions become identity.
func (q Quat) Normalize() Quat {
	n := math32.Sqrt(q.vec().Dot(q.vec()) + q.W*q.W)
	if n < 1e-4 {
		return QuatIdentity()
	}
	return quat(q.vec().Scale(1/n), q.W/n)
}

// Mul returns the Hamilton product q * o, which applies o first.
func (q Quat) Mul(o Quat) Quat {
	a, b := q.vec(), o.vec()
	v := b.Scale(q.W).Add(a.Scale(o.W)).Add(a.Cross(b))
	return quat(v, q.W*o.W-a.Dot(b))
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.vec()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}
