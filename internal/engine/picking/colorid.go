package picking

import (
	"slices"
)

// Color is an object ID packed into 8-bit RGB.
type Color struct {
	R, G, B uint8
}

// EncodeID packs the low 24 bits of id: R = bits 0-7, G = bits 8-15, B = bits 16-23.
func EncodeID(id uint32) Color {
	return Color{
		R: uint8(id & 0xFF),
		G: uint8((id >> 8) & 0xFF),
		B: uint8((id >> 16) & 0xFF),
	}
}

// DecodeColor is the inverse of EncodeID.
func DecodeColor(c Color) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// Floats returns the color as normalized RGBA, as shader uniforms want it.
func (c Color) Floats() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

// DecodePixels decodes tightly packed RGBA8 pixels into the sorted, unique set
// of IDs found. Background pixels are skipped. A trailing partial pixel is ignored.
func DecodePixels(pixels []byte) []uint32 {
	seen := make(map[uint32]struct{})
	for i := 0; i+3 < len(pixels); i += 4 {
		id := DecodeColor(Color{pixels[i], pixels[i+1], pixels[i+2]})
		if id == Background {
			continue
		}
		seen[id] = struct{}{}
	}
	return sortedIDs(seen)
}

func sortedIDs(set map[uint32]struct{}) []uint32 {
	ids := make([]uint32, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
