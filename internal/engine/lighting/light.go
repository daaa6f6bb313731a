// Package lighting holds the single directional light the viewer shades with.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/rubberpick/pkg/math"
)

// Directional is a light infinitely far away.
type Directional struct {
	Direction math.Vec3 // toward the light, normalized
	Ambient   [3]float32
	Diffuse   [3]float32
}

// FromAngles builds a light direction from degrees: longitude rotates around
// the Y axis, latitude is elevation above the horizon.
func FromAngles(longitude, latitude float32) math.Vec3 {
	lon := longitude * math32.Pi / 180
	lat := latitude * math32.Pi / 180
	return math.Vec3{
		X: math32.Cos(lat) * math32.Sin(lon),
		Y: math32.Sin(lat),
		Z: math32.Cos(lat) * math32.Cos(lon),
	}
}

// Default returns a key light above and to the right of the camera.
func Default() Directional {
	return Directional{
		Direction: FromAngles(30, 45),
		Ambient:   [3]float32{0.25, 0.25, 0.25},
		Diffuse:   [3]float32{0.8, 0.8, 0.8},
	}
}

// Shade returns the Lambert factor for a normal, ambient included and
// clamped to 1. The shader and the fixed-function path agree on it.
func (l Directional) Shade(normal math.Vec3) float32 {
	d := math32.Max(normal.Normalize().Dot(l.Direction.Normalize()), 0)
	return math32.Min(l.Ambient[0]+l.Diffuse[0]*d, 1)
}
