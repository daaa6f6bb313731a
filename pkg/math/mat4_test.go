package math

import (
	"math"
	"testing"
)

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateTransform(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees about Y ends up on -Z
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	if got.Length() > 0.0001 {
		t.Errorf("eye in view space: got %v, want origin", got)
	}
	// origin lies in front of the camera, on -Z
	front := m.TransformVec3(Vec3{})
	if abs(front.Z+5) > 0.0001 {
		t.Errorf("origin in view space: got %v, want z=-5", front)
	}
}

func TestPickMatrix(t *testing.T) {
	viewport := [4]int32{0, 0, 800, 600}

	tests := []struct {
		name   string
		cx, cy float32
		w, h   float32
		// window point that must land in the middle of the clip volume
		px, py float32
	}{
		{"centred window", 400, 300, 100, 100, 400, 300},
		{"lower left window", 50, 50, 20, 10, 50, 50},
		{"upper right window", 700, 500, 40, 60, 700, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick := PickMatrix(tt.cx, tt.cy, tt.w, tt.h, viewport)

			// NDC of the window point under the regular projection
			ndcX := 2*tt.px/800 - 1
			ndcY := 2*tt.py/600 - 1
			got := pick.MulVec4(Vec4{ndcX, ndcY, 0, 1})
			if abs(got[0]) > 0.0001 || abs(got[1]) > 0.0001 {
				t.Errorf("centre maps to (%f, %f), want (0, 0)", got[0], got[1])
			}

			// the right/top edges of the window map to +1
			edgeX := 2*(tt.cx+tt.w/2)/800 - 1
			edgeY := 2*(tt.cy+tt.h/2)/600 - 1
			got = pick.MulVec4(Vec4{edgeX, edgeY, 0, 1})
			if abs(got[0]-1) > 0.0001 || abs(got[1]-1) > 0.0001 {
				t.Errorf("edge maps to (%f, %f), want (1, 1)", got[0], got[1])
			}
		})
	}
}

func TestPickMatrixDegenerate(t *testing.T) {
	if PickMatrix(10, 10, 0, 5, [4]int32{0, 0, 100, 100}) != Identity() {
		t.Error("zero-width pick window should return identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestOrthoMapsPixelsToNDC(t *testing.T) {
	m := Ortho(0, 800, 0, 600, -1, 1)

	tests := []struct {
		in, want Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{-1, -1, 0}},
		{Vec3{800, 600, 0}, Vec3{1, 1, 0}},
		{Vec3{400, 300, 0}, Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		got := m.TransformVec3(tt.in)
		if got.Distance(tt.want) > 0.0001 {
			t.Errorf("Ortho(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
