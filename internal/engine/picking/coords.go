// Package picking resolves which objects lie under a screen-space rectangle.
//
// Two strategies share one interface: hit-record picking renders name-tagged
// objects through a narrowed projection and reads back the selection buffer,
// color picking renders objects in flat ID colors offscreen and decodes the
// pixels under the rectangle. Both consume a Backend and report object IDs
// from the same Namespace.
package picking

// Point is a position in window pixels (top-left origin) unless stated otherwise.
type Point struct {
	X, Y float64
}

// Viewport mirrors the GL viewport: origin at the bottom-left corner of the
// window, size in pixels.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Array returns the viewport in the {x, y, w, h} form GL and PickMatrix use.
func (v Viewport) Array() [4]int32 {
	return [4]int32{v.X, v.Y, v.Width, v.Height}
}

// Bounds returns the viewport as a rectangle in viewport-relative coordinates.
func (v Viewport) Bounds() Rect {
	return Rect{MaxX: float64(v.Width), MaxY: float64(v.Height)}
}

// ScreenToNDC converts window pixels to normalized device coordinates (-1..1, Y up).
func ScreenToNDC(p Point, width, height float64) (x, y float64) {
	x = 2*p.X/width - 1
	y = 1 - 2*p.Y/height // flip Y
	return x, y
}

// NDCToScreen converts normalized device coordinates back to window pixels.
func NDCToScreen(x, y, width, height float64) Point {
	return Point{
		X: (x + 1) * width / 2,
		Y: (1 - y) * height / 2,
	}
}

// ScreenToViewport converts window pixels (top-left origin) to
// viewport-relative pixels with a bottom-left origin.
func ScreenToViewport(p Point, vp Viewport) Point {
	return Point{
		X: p.X - float64(vp.X),
		Y: float64(vp.Height) - p.Y,
	}
}

// ViewportToScreen is the inverse of ScreenToViewport.
func ViewportToScreen(p Point, vp Viewport) Point {
	return Point{
		X: p.X + float64(vp.X),
		Y: float64(vp.Height) - p.Y,
	}
}
