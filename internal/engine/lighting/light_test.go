package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rubberpick/pkg/math"
)

func TestFromAngles(t *testing.T) {
	up := FromAngles(0, 90)
	assert.InDelta(t, 1, up.Y, 1e-5)

	front := FromAngles(0, 0)
	assert.InDelta(t, 1, front.Z, 1e-5)

	side := FromAngles(90, 0)
	assert.InDelta(t, 1, side.X, 1e-5)

	assert.InDelta(t, 1, FromAngles(30, 45).Length(), 1e-5)
}

func TestShade(t *testing.T) {
	l := Directional{
		Direction: math.Vec3{Y: 1},
		Ambient:   [3]float32{0.2, 0.2, 0.2},
		Diffuse:   [3]float32{0.7, 0.7, 0.7},
	}

	assert.InDelta(t, 0.9, l.Shade(math.Vec3{Y: 1}), 1e-5)
	assert.InDelta(t, 0.2, l.Shade(math.Vec3{Y: -1}), 1e-5, "back faces get ambient only")

	l.Ambient = [3]float32{0.5, 0.5, 0.5}
	assert.InDelta(t, 1, l.Shade(math.Vec3{Y: 2}), 1e-5)
}
