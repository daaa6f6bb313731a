package picking

import gomath "math"

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromCorners builds a normalized rectangle from two drag corners.
// The drag direction does not matter.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		MinX: gomath.Min(a.X, b.X),
		MinY: gomath.Min(a.Y, b.Y),
		MaxX: gomath.Max(a.X, b.X),
		MaxY: gomath.Max(a.Y, b.Y),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Intersect returns the overlap of two rectangles (possibly empty).
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		MinX: gomath.Max(r.MinX, o.MinX),
		MinY: gomath.Max(r.MinY, o.MinY),
		MaxX: gomath.Min(r.MaxX, o.MaxX),
		MaxY: gomath.Min(r.MaxY, o.MaxY),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Contains reports whether p lies inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Pixels returns the integer pixel block covered by the rectangle.
func (r Rect) Pixels() (x, y, w, h int32) {
	x0 := int32(gomath.Floor(r.MinX))
	y0 := int32(gomath.Floor(r.MinY))
	x1 := int32(gomath.Ceil(r.MaxX))
	y1 := int32(gomath.Ceil(r.MaxY))
	return x0, y0, x1 - x0, y1 - y0
}

// ToViewport converts a window rectangle into viewport-relative coordinates
// with a bottom-left origin. The Y flip swaps which edge is min and max.
func (r Rect) ToViewport(vp Viewport) Rect {
	a := ScreenToViewport(Point{r.MinX, r.MinY}, vp)
	b := ScreenToViewport(Point{r.MaxX, r.MaxY}, vp)
	return RectFromCorners(a, b)
}
