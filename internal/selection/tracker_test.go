package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
)

func TestTrackerLifecycle(t *testing.T) {
	var tr Tracker
	assert.False(t, tr.Active())

	tr.Begin(10, 20)
	assert.True(t, tr.Active())
	tr.Update(30, 5)

	r, ok := tr.Region()
	require.True(t, ok)
	assert.Equal(t, picking.Rect{MinX: 10, MinY: 5, MaxX: 30, MaxY: 20}, r)

	start, end, err := tr.End()
	require.NoError(t, err)
	assert.Equal(t, picking.Point{X: 10, Y: 20}, start)
	assert.Equal(t, picking.Point{X: 30, Y: 5}, end)
	assert.False(t, tr.Active())
}

func TestTrackerEndWithoutBegin(t *testing.T) {
	var tr Tracker
	_, _, err := tr.End()
	assert.ErrorIs(t, err, ErrNoSelection)

	tr.Begin(1, 1)
	_, _, err = tr.End()
	require.NoError(t, err)
	_, _, err = tr.End()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestTrackerUpdateWhileInactive(t *testing.T) {
	var tr Tracker
	tr.Update(50, 50)
	assert.False(t, tr.Active())

	tr.Begin(1, 2)
	start, end, err := tr.End()
	require.NoError(t, err)
	assert.Equal(t, start, end)
}

func TestTrackerBeginRearms(t *testing.T) {
	var tr Tracker
	tr.Begin(1, 1)
	tr.Update(5, 5)
	tr.Begin(100, 100)

	start, end, err := tr.End()
	require.NoError(t, err)
	assert.Equal(t, picking.Point{X: 100, Y: 100}, start)
	assert.Equal(t, start, end)
}

func TestTrackerCancel(t *testing.T) {
	var tr Tracker
	tr.Begin(1, 1)
	tr.Cancel()

	_, ok := tr.Region()
	assert.False(t, ok)
	_, _, err := tr.End()
	assert.ErrorIs(t, err, ErrNoSelection)
}
