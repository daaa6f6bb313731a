package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubberpick/pkg/math"
)

func TestCubeTriangles(t *testing.T) {
	v := CubeTriangles()
	require.Len(t, v, 36*floatsPerVertex)

	for i := 0; i < len(v); i += 3 * floatsPerVertex {
		a := math.Vec3{X: v[i], Y: v[i+1], Z: v[i+2]}
		b := math.Vec3{X: v[i+6], Y: v[i+7], Z: v[i+8]}
		c := math.Vec3{X: v[i+12], Y: v[i+13], Z: v[i+14]}
		n := math.Vec3{X: v[i+3], Y: v[i+4], Z: v[i+5]}

		// counter-clockwise winding faces along the stored normal
		winding := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.InDelta(t, 1, winding.Dot(n), 1e-5, "triangle %d", i/(3*floatsPerVertex))

		for _, p := range []math.Vec3{a, b, c} {
			assert.InDelta(t, 0.5, p.Dot(n), 1e-6, "vertex off its face")
		}
	}
}
