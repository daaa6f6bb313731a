package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCornersAnyDirection(t *testing.T) {
	want := Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70}

	drags := map[string][2]Point{
		"down-right": {{10, 20}, {110, 70}},
		"up-left":    {{110, 70}, {10, 20}},
		"down-left":  {{110, 20}, {10, 70}},
		"up-right":   {{10, 70}, {110, 20}},
	}
	for name, d := range drags {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, RectFromCorners(d[0], d[1]))
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{MinX: 10, MinY: 20, MaxX: 30, MaxY: 60}

	assert.Equal(t, 20.0, r.Width())
	assert.Equal(t, 40.0, r.Height())
	assert.Equal(t, Point{20, 40}, r.Center())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(Point{10, 60}))
	assert.False(t, r.Contains(Point{9, 30}))
	assert.True(t, Rect{MinX: 5, MaxX: 5, MaxY: 10}.Empty())
}

func TestRectIntersect(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

	assert.Equal(t, Rect{MinX: 50, MinY: 50, MaxX: 100, MaxY: 100},
		a.Intersect(Rect{MinX: 50, MinY: 50, MaxX: 200, MaxY: 200}))
	assert.True(t, a.Intersect(Rect{MinX: 150, MinY: 150, MaxX: 200, MaxY: 200}).Empty())
}

func TestRectPixels(t *testing.T) {
	x, y, w, h := Rect{MinX: 10.4, MinY: 20.6, MaxX: 30.2, MaxY: 40}.Pixels()
	assert.Equal(t, []int32{10, 20, 21, 20}, []int32{x, y, w, h})
}

func TestRectToViewport(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	r := Rect{MinX: 100, MinY: 50, MaxX: 200, MaxY: 150}

	assert.Equal(t, Rect{MinX: 100, MinY: 450, MaxX: 200, MaxY: 550}, r.ToViewport(vp))
}
