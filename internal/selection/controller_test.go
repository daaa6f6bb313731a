package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// stubPicker returns fixed IDs and records the requests it saw.
type stubPicker struct {
	ids      []uint32
	err      error
	requests []picking.Request
}

func (p *stubPicker) Strategy() picking.Strategy { return "stub" }

func (p *stubPicker) Pick(req picking.Request) (picking.Result, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return picking.Result{}, p.err
	}
	return picking.Result{IDs: p.ids, Rect: picking.RectFromCorners(req.Start, req.End), Performed: true}, nil
}

func release(t *testing.T, c *Controller) Set {
	t.Helper()
	s, err := c.OnRelease(math.Identity(), math.Identity())
	require.NoError(t, err)
	return s
}

func TestAdditiveSelection(t *testing.T) {
	p := &stubPicker{ids: []uint32{3}}
	c := NewController(p, nil)
	c.Select(1, 2)

	c.OnPress(0, 0, true)
	c.OnDrag(50, 50)
	got := release(t, c)

	assert.Equal(t, []uint32{1, 2, 3}, got.IDs())
}

func TestReplacingSelection(t *testing.T) {
	p := &stubPicker{ids: []uint32{3}}
	c := NewController(p, nil)
	c.Select(1, 2)

	c.OnPress(0, 0, false)
	c.OnDrag(50, 50)
	got := release(t, c)

	assert.Equal(t, []uint32{3}, got.IDs())
}

func TestClickClearsBeforePick(t *testing.T) {
	p := &stubPicker{}
	c := NewController(p, nil)
	c.Select(1, 2)

	c.OnPress(10, 10, false)
	assert.False(t, c.Contains(1), "press must clear before the pick resolves")

	got := release(t, c)
	assert.Zero(t, got.Len())
}

func TestReleaseWithoutPress(t *testing.T) {
	p := &stubPicker{ids: []uint32{3}}
	c := NewController(p, nil)
	c.Select(1)

	got, err := c.OnRelease(math.Identity(), math.Identity())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, []uint32{1}, got.IDs())
	assert.Empty(t, p.requests)
}

func TestReleasePassesDragAndContext(t *testing.T) {
	p := &stubPicker{}
	live := NewSet(100)
	c := NewController(p, live)
	vp := picking.Viewport{Width: 640, Height: 480}
	c.SetViewport(vp)

	view := math.Translate(0, 0, -8)
	c.OnPress(200, 100, false)
	c.OnDrag(50, 300)
	_, err := c.OnRelease(view, math.Identity())
	require.NoError(t, err)

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	assert.Equal(t, picking.Point{X: 200, Y: 100}, req.Start)
	assert.Equal(t, picking.Point{X: 50, Y: 300}, req.End)
	assert.Equal(t, vp, req.Viewport)
	assert.Equal(t, view, req.View)
	assert.NotNil(t, req.Live)
}

func TestHandlerNotified(t *testing.T) {
	p := &stubPicker{ids: []uint32{100, 101}}
	c := NewController(p, nil)

	var calls int
	var got Set
	c.SetHandler(func(res picking.Result, selected Set) {
		calls++
		got = selected
		assert.Equal(t, []uint32{100, 101}, res.IDs)
	})

	c.OnPress(0, 0, false)
	c.OnDrag(20, 20)
	release(t, c)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []uint32{100, 101}, got.IDs())

	got.Clear()
	assert.True(t, c.Contains(100), "handler receives a copy")
}

func TestPickErrorKeepsSelection(t *testing.T) {
	boom := errors.New("backend lost")
	p := &stubPicker{err: boom}
	c := NewController(p, nil)
	c.Select(7)

	c.OnPress(0, 0, true)
	c.OnDrag(10, 10)
	got, err := c.OnRelease(math.Identity(), math.Identity())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []uint32{7}, got.IDs())
	assert.False(t, c.Dragging())
}

func TestCancelDrag(t *testing.T) {
	p := &stubPicker{ids: []uint32{3}}
	c := NewController(p, nil)

	c.OnPress(0, 0, false)
	assert.True(t, c.Dragging())
	c.Cancel()
	assert.False(t, c.Dragging())

	_, err := c.OnRelease(math.Identity(), math.Identity())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Empty(t, p.requests)
}

func TestControllerWithSoftwareBackend(t *testing.T) {
	backend := &picking.SoftwareBackend{Objects: []picking.SoftwareObject{
		{ID: 100, Bounds: picking.CubeAABB(1), Model: math.Identity()},
	}}
	p, err := picking.New(picking.StrategyColor, backend, picking.DefaultOptions())
	require.NoError(t, err)

	c := NewController(p, backend)
	c.SetViewport(picking.Viewport{Width: 100, Height: 100})

	// the cube covers the middle half of the viewport
	proj := math.Scale(0.5, 0.5, 0.5)
	c.OnPress(40, 40, false)
	c.OnDrag(60, 60)
	got, err := c.OnRelease(math.Identity(), proj)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100}, got.IDs())
}
