// Package scene holds the pickable cubes and their ID assignment.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// Palette colors legacy cubes in turn.
var Palette = [10][3]float32{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
	{1.0, 1.0, 0.0},
	{1.0, 0.0, 1.0},
	{0.0, 1.0, 1.0},
	{1.0, 0.5, 0.0},
	{0.5, 0.0, 1.0},
	{0.0, 0.5, 0.5},
	{0.5, 0.5, 0.5},
}

// ShaderColor is the base color of shader-path cubes.
var ShaderColor = [3]float32{0.2, 0.7, 0.3}

// SelectedColor replaces an object's color while it is selected.
var SelectedColor = [3]float32{0.8, 0.8, 0.8}

// Config lays out the cube rows.
type Config struct {
	LegacyCount int
	ShaderCount int
	Size        float32 // cube edge length
	Spacing     float32 // distance between cube centers in a row
	RowOffset   float32 // legacy row at -RowOffset, shader row at +RowOffset
	TiltX       float32 // degrees
	TiltY       float32 // degrees
}

// DefaultConfig returns two rows of three cubes.
func DefaultConfig() Config {
	return Config{
		LegacyCount: 3,
		ShaderCount: 3,
		Size:        1,
		Spacing:     3,
		RowOffset:   2,
		TiltX:       30,
		TiltY:       15,
	}
}

// Object is one pickable cube.
type Object struct {
	ID       uint32
	Kind     picking.Kind
	Position math.Vec3
	Color    [3]float32
	Model    math.Mat4
}

// Bounds is the object-space box of every cube.
var Bounds = picking.CubeAABB(0.5)

// Scene is the set of cubes. Object IDs come from one namespace, so the
// legacy and shader rows never share an ID.
type Scene struct {
	objects []Object
	index   map[uint32]int
	ns      *picking.Namespace
}

// New builds the scene described by cfg.
func New(cfg Config) (*Scene, error) {
	if cfg.LegacyCount < 0 || cfg.ShaderCount < 0 {
		return nil, fmt.Errorf("scene: negative cube count")
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("scene: cube size must be positive, got %v", cfg.Size)
	}

	s := &Scene{index: make(map[uint32]int), ns: picking.NewNamespace()}
	for i := 0; i < cfg.LegacyCount; i++ {
		pos := math.Vec3{X: rowX(i, cfg.LegacyCount, cfg.Spacing), Y: -cfg.RowOffset}
		if _, err := s.Add(picking.KindLegacy, pos, Palette[i%len(Palette)], cfg); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.ShaderCount; i++ {
		pos := math.Vec3{X: rowX(i, cfg.ShaderCount, cfg.Spacing), Y: cfg.RowOffset}
		if _, err := s.Add(picking.KindShader, pos, ShaderColor, cfg); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func rowX(i, n int, spacing float32) float32 {
	return (float32(i) - float32(n-1)/2) * spacing
}

// Add appends a cube of the given kind and returns its ID.
func (s *Scene) Add(kind picking.Kind, pos math.Vec3, color [3]float32, cfg Config) (uint32, error) {
	id, err := s.ns.Next(kind)
	if err != nil {
		return 0, fmt.Errorf("scene: adding %s cube: %w", kind, err)
	}
	model := math.Translate(pos.X, pos.Y, pos.Z).
		Mul(math.RotateY(cfg.TiltY * math32.Pi / 180)).
		Mul(math.RotateX(cfg.TiltX * math32.Pi / 180)).
		Mul(math.Scale(cfg.Size, cfg.Size, cfg.Size))

	s.index[id] = len(s.objects)
	s.objects = append(s.objects, Object{ID: id, Kind: kind, Position: pos, Color: color, Model: model})
	return id, nil
}

// Objects returns every cube in draw order.
func (s *Scene) Objects() []Object {
	return s.objects
}

// OfKind returns the cubes of one kind.
func (s *Scene) OfKind(kind picking.Kind) []Object {
	var out []Object
	for _, o := range s.objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Object returns the cube with the given ID.
func (s *Scene) Object(id uint32) (Object, bool) {
	i, ok := s.index[id]
	if !ok {
		return Object{}, false
	}
	return s.objects[i], true
}

// Contains implements picking.IDTable.
func (s *Scene) Contains(id uint32) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of cubes.
func (s *Scene) Len() int {
	return len(s.objects)
}

// ColorOf returns the color a cube draws with given the selection.
func (o Object) ColorOf(selected bool) [3]float32 {
	if selected {
		return SelectedColor
	}
	return o.Color
}

// SoftwareObjects describes the scene for a picking.SoftwareBackend.
func (s *Scene) SoftwareObjects() []picking.SoftwareObject {
	out := make([]picking.SoftwareObject, len(s.objects))
	for i, o := range s.objects {
		out[i] = picking.SoftwareObject{ID: o.ID, Bounds: Bounds, Model: o.Model}
	}
	return out
}
