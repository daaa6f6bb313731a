package picking

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/rubberpick/pkg/math"
)

// SoftwareObject is one pickable object for the SoftwareBackend.
type SoftwareObject struct {
	ID     uint32
	Bounds AABB
	Model  math.Mat4
}

// SoftwareBackend rasterizes the screen footprint of each object's bounding
// box on the CPU. It supports both passes and needs no GL context, so it backs
// headless runs and the picking tests.
type SoftwareBackend struct {
	Objects []SoftwareObject

	vp     Viewport
	pixels []byte    // RGBA8, rows bottom to top
	depth  []float64 // nearest depth per pixel
	active bool

	// IDPasses and SelectPasses count the passes run, for callers that need
	// to know whether picking touched the backend at all.
	IDPasses     int
	SelectPasses int
}

// Capabilities implements Backend.
func (b *SoftwareBackend) Capabilities() Capabilities {
	return Capabilities{SelectionBuffer: true, Readback: true}
}

// RenderIDPass implements Backend.
func (b *SoftwareBackend) RenderIDPass(view, projection math.Mat4, vp Viewport) error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("software id pass: invalid viewport %dx%d", vp.Width, vp.Height)
	}
	b.IDPasses++
	b.vp = vp
	n := int(vp.Width) * int(vp.Height)
	b.pixels = make([]byte, n*4)
	b.depth = make([]float64, n)
	bg := EncodeID(Background)
	for i := 0; i < n; i++ {
		b.pixels[i*4+0] = bg.R
		b.pixels[i*4+1] = bg.G
		b.pixels[i*4+2] = bg.B
		b.pixels[i*4+3] = 0xFF
		b.depth[i] = gomath.Inf(1)
	}

	viewProj := projection.Mul(view)
	for _, obj := range b.Objects {
		fp, ok := ProjectAABB(obj.Bounds, viewProj.Mul(obj.Model), vp)
		if !ok || fp.MaxZ < 0 || fp.MinZ > 1 {
			continue
		}
		r := fp.Rect.Intersect(vp.Bounds())
		if r.Empty() {
			continue
		}
		x0, y0, w, h := r.Pixels()
		c := EncodeID(obj.ID)
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				i := int(y)*int(vp.Width) + int(x)
				if fp.MinZ >= b.depth[i] {
					continue
				}
				b.depth[i] = fp.MinZ
				b.pixels[i*4+0] = c.R
				b.pixels[i*4+1] = c.G
				b.pixels[i*4+2] = c.B
			}
		}
	}
	b.active = true
	return nil
}

// ReadRegion implements Backend.
func (b *SoftwareBackend) ReadRegion(x, y, w, h int32) ([]byte, error) {
	if !b.active {
		return nil, fmt.Errorf("software readback outside an id pass")
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > b.vp.Width || y+h > b.vp.Height {
		return nil, fmt.Errorf("software readback (%d,%d %dx%d) outside %dx%d", x, y, w, h, b.vp.Width, b.vp.Height)
	}
	out := make([]byte, 0, int(w)*int(h)*4)
	for row := y; row < y+h; row++ {
		start := (int(row)*int(b.vp.Width) + int(x)) * 4
		out = append(out, b.pixels[start:start+int(w)*4]...)
	}
	return out, nil
}

// EndIDPass implements Backend.
func (b *SoftwareBackend) EndIDPass() {
	b.active = false
}

// SelectPass implements Backend. Every object whose footprint under the
// restricted projection overlaps the clip volume yields one single-name record.
func (b *SoftwareBackend) SelectPass(view, restricted math.Mat4, vp Viewport, bufferSize int) (int, []uint32, error) {
	b.SelectPasses++
	buf := make([]uint32, 0, bufferSize)
	hits := 0

	viewProj := restricted.Mul(view)
	unit := Viewport{Width: 2, Height: 2} // maps NDC -1..1 onto 0..2
	for _, obj := range b.Objects {
		fp, ok := ProjectAABB(obj.Bounds, viewProj.Mul(obj.Model), unit)
		if !ok || fp.MaxZ < 0 || fp.MinZ > 1 {
			continue
		}
		if fp.Rect.Intersect(unit.Bounds()).Empty() {
			continue
		}
		if len(buf)+4 > bufferSize {
			return -1, buf, nil
		}
		buf = append(buf, 1, depthWord(fp.MinZ), depthWord(fp.MaxZ), obj.ID)
		hits++
	}
	return hits, buf, nil
}

// Contains implements IDTable over the backend's objects.
func (b *SoftwareBackend) Contains(id uint32) bool {
	for _, obj := range b.Objects {
		if obj.ID == id {
			return true
		}
	}
	return false
}

func depthWord(z float64) uint32 {
	z = gomath.Min(gomath.Max(z, 0), 1)
	return uint32(z * float64(^uint32(0)))
}
