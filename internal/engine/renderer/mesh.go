package renderer

import "github.com/Faultbox/rubberpick/pkg/math"

// face is one side of the unit cube, corners counter-clockwise seen from outside.
type face struct {
	normal  math.Vec3
	corners [4]math.Vec3
}

const half = 0.5

func vec(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

var cubeFaces = [6]face{
	{math.Vec3{X: 1}, [4]math.Vec3{vec(half, -half, half), vec(half, -half, -half), vec(half, half, -half), vec(half, half, half)}},
	{math.Vec3{X: -1}, [4]math.Vec3{vec(-half, -half, -half), vec(-half, -half, half), vec(-half, half, half), vec(-half, half, -half)}},
	{math.Vec3{Y: 1}, [4]math.Vec3{vec(-half, half, half), vec(half, half, half), vec(half, half, -half), vec(-half, half, -half)}},
	{math.Vec3{Y: -1}, [4]math.Vec3{vec(-half, -half, -half), vec(half, -half, -half), vec(half, -half, half), vec(-half, -half, half)}},
	{math.Vec3{Z: 1}, [4]math.Vec3{vec(-half, -half, half), vec(half, -half, half), vec(half, half, half), vec(-half, half, half)}},
	{math.Vec3{Z: -1}, [4]math.Vec3{vec(half, -half, -half), vec(-half, -half, -half), vec(-half, half, -half), vec(half, half, -half)}},
}

// floatsPerVertex is position plus normal.
const floatsPerVertex = 6

// CubeTriangles returns the unit cube as 36 interleaved position/normal vertices.
func CubeTriangles() []float32 {
	out := make([]float32, 0, 36*floatsPerVertex)
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[i]
			out = append(out, c.X, c.Y, c.Z, f.normal.X, f.normal.Y, f.normal.Z)
		}
	}
	return out
}
