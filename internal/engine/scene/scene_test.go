package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/pkg/math"
)

func TestDefaultLayout(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())

	legacy := s.OfKind(picking.KindLegacy)
	shader := s.OfKind(picking.KindShader)
	require.Len(t, legacy, 3)
	require.Len(t, shader, 3)

	assert.Equal(t, []uint32{1, 2, 3}, ids(legacy))
	assert.Equal(t, []uint32{100, 101, 102}, ids(shader))

	assert.Equal(t, math.Vec3{X: -3, Y: -2}, legacy[0].Position)
	assert.Equal(t, math.Vec3{X: 3, Y: 2}, shader[2].Position)
	assert.Equal(t, Palette[1], legacy[1].Color)
}

func TestContainsAndLookup(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(102))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(picking.Background))

	o, ok := s.Object(101)
	require.True(t, ok)
	assert.Equal(t, picking.KindShader, o.Kind)
	assert.Equal(t, SelectedColor, o.ColorOf(true))
	assert.Equal(t, ShaderColor, o.ColorOf(false))
}

func TestModelPlacesCube(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	for _, o := range s.Objects() {
		c := o.Model.TransformVec3(math.Vec3{})
		assert.InDelta(t, o.Position.X, c.X, 1e-5)
		assert.InDelta(t, o.Position.Y, c.Y, 1e-5)
		assert.InDelta(t, o.Position.Z, c.Z, 1e-5)
	}
}

func TestLegacyRangeOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LegacyCount = 100
	_, err := New(cfg)
	assert.ErrorIs(t, err, picking.ErrNamespaceFull)
}

func TestInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestScenePicksThroughSoftwareBackend(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	backend := &picking.SoftwareBackend{Objects: s.SoftwareObjects()}
	p, err := picking.New(picking.StrategyAuto, backend, picking.DefaultOptions())
	require.NoError(t, err)

	vp := picking.Viewport{Width: 800, Height: 600}
	res, err := p.Pick(picking.Request{
		Start:      picking.Point{X: 0, Y: 0},
		End:        picking.Point{X: 800, Y: 300},
		Viewport:   vp,
		View:       math.LookAt(math.Vec3{Z: 8}, math.Vec3{}, math.Vec3{Y: 1}),
		Projection: math.Perspective(0.785398, 800.0/600.0, 0.1, 100),
		Live:       s,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{100, 101, 102}, res.IDs, "top half of the window holds the shader row")
}

func ids(objs []Object) []uint32 {
	out := make([]uint32, len(objs))
	for i, o := range objs {
		out[i] = o.ID
	}
	return out
}
