// Package camera provides the arcball camera used to navigate the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/rubberpick/pkg/math"
)

var worldUp = math.Vec3{Y: 1}

// ArcballCamera orbits a target point. Orientation is a quaternion so the
// camera can roll over the poles without gimbal lock.
type ArcballCamera struct {
	Target      math.Vec3
	Distance    float32
	Orientation math.Quat

	FovY      float32 // degrees
	Near, Far float32

	OrbitSensitivity float32 // radians per pixel
	PanSensitivity   float32 // world units per pixel per unit of distance
	ZoomSensitivity  float32 // fraction of distance per wheel step

	home Pose
}

// Pose is the part of the camera state Reset restores.
type Pose struct {
	Target      math.Vec3
	Distance    float32
	Orientation math.Quat
}

// NewArcballCamera returns a camera at (0, 0, distance) looking at the origin.
func NewArcballCamera(distance float32) *ArcballCamera {
	c := &ArcballCamera{
		Distance:         distance,
		Orientation:      math.QuatIdentity(),
		FovY:             45,
		Near:             0.1,
		Far:              100,
		OrbitSensitivity: 0.01,
		PanSensitivity:   0.002,
		ZoomSensitivity:  0.1,
	}
	c.home = c.Pose()
	return c
}

// Pose returns the current pose.
func (c *ArcballCamera) Pose() Pose {
	return Pose{Target: c.Target, Distance: c.Distance, Orientation: c.Orientation}
}

// SetHome makes the current pose the one Reset returns to.
func (c *ArcballCamera) SetHome() {
	c.home = c.Pose()
}

// Reset returns to the home pose.
func (c *ArcballCamera) Reset() {
	c.Target = c.home.Target
	c.Distance = c.home.Distance
	c.Orientation = c.home.Orientation
}

// Position returns the eye position in world space.
func (c *ArcballCamera) Position() math.Vec3 {
	return c.Target.Add(c.Orientation.Rotate(math.Vec3{Z: c.Distance}))
}

// Up returns the camera's up vector.
func (c *ArcballCamera) Up() math.Vec3 {
	return c.Orientation.Rotate(math.Vec3{Y: 1})
}

// Right returns the camera's right vector.
func (c *ArcballCamera) Right() math.Vec3 {
	return c.Orientation.Rotate(math.Vec3{X: 1})
}

// ViewMatrix returns the view matrix for this camera.
func (c *ArcballCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, c.Up())
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *ArcballCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY*math32.Pi/180, aspect, c.Near, c.Far)
}

// Orbit rotates around the target by a mouse delta in pixels: yaw about the
// world up axis, then pitch about the camera's right vector.
func (c *ArcballCamera) Orbit(dx, dy float32) {
	yaw := math.QuatFromAxisAngle(worldUp, -dx*c.OrbitSensitivity)
	q := yaw.Mul(c.Orientation)

	right := q.Rotate(math.Vec3{X: 1}).Normalize()
	pitch := math.QuatFromAxisAngle(right, -dy*c.OrbitSensitivity)
	c.Orientation = pitch.Mul(q).Normalize()
}

// Pan slides the target in the view plane. Speed scales with distance so the
// scene tracks the cursor at any zoom.
func (c *ArcballCamera) Pan(dx, dy float32) {
	scale := c.Distance * c.PanSensitivity
	c.Target = c.Target.
		Sub(c.Right().Scale(dx * scale)).
		Add(c.Up().Scale(dy * scale))
}

// Zoom moves toward the target by wheel steps, staying inside the clip range.
func (c *ArcballCamera) Zoom(steps float32) {
	c.Distance -= steps * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, 2*c.Near, 0.9*c.Far)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
