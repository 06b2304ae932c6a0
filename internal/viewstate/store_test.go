package viewstate

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New().Snapshot()
	assert.Equal(t, 0.01, s.RotationDeltaX)
	assert.Equal(t, 0.01, s.RotationDeltaY)
	assert.Equal(t, 1.0, s.UniformScale)
	assert.Equal(t, NoMatrix, s.MatrixText)
	assert.Equal(t, 1.0, s.Scale().X)
	assert.Equal(t, 0.0, s.Position().Z)
}

func TestReplacePartial(t *testing.T) {
	st := New()
	st.Replace(Patch{PositionX: Float(2.5)})

	s := st.Snapshot()
	assert.Equal(t, 2.5, s.PositionX)
	assert.Equal(t, 0.01, s.RotationDeltaX, "untouched fields keep their value")
	assert.Equal(t, 1.0, s.ScaleY)
}

func TestReplaceZeroOverwrites(t *testing.T) {
	st := New()
	st.Replace(Patch{UniformScale: Float(0), ScaleZ: Float(0)})

	s := st.Snapshot()
	assert.Equal(t, 0.0, s.UniformScale)
	assert.Equal(t, 0.0, s.ScaleZ)
}

func TestReplaceFull(t *testing.T) {
	st := New()
	want := Defaults()
	want.RotationDeltaX = 3
	want.PositionY = -1
	want.RotationZ = 0.5
	want.ScaleX = 4
	want.MatrixText = "ignored"
	st.Replace(Full(want))

	got := st.Snapshot()
	assert.Equal(t, NoMatrix, got.MatrixText, "matrix text is not user-editable")
	got.MatrixText = want.MatrixText
	assert.Equal(t, want, got)
}

func TestReplaceStoresNaN(t *testing.T) {
	st := New()
	st.Replace(Patch{RotationY: Float(math.NaN())})
	assert.True(t, math.IsNaN(st.Snapshot().RotationY))
	assert.True(t, strings.Contains(st.Snapshot().Matrix().Text(), "NaN"))
}

func TestObservers(t *testing.T) {
	st := New()
	var seen []ViewState
	unsubscribe := st.Subscribe(func(v ViewState) { seen = append(seen, v) })

	st.Replace(Patch{PositionZ: Float(-0.1)})
	require.Len(t, seen, 1)
	assert.Equal(t, -0.1, seen[0].PositionZ)

	unsubscribe()
	unsubscribe()
	st.Replace(Patch{PositionZ: Float(-0.2)})
	assert.Len(t, seen, 1)
}

func TestSetMatrixTextDoesNotNotify(t *testing.T) {
	st := New()
	calls := 0
	st.Subscribe(func(ViewState) { calls++ })
	st.SetMatrixText("1\n0")
	assert.Equal(t, 0, calls)
	assert.Equal(t, "1\n0", st.Snapshot().MatrixText)
}

func TestUpdateBuildsOnLatest(t *testing.T) {
	st := New()
	for i := 0; i < 10; i++ {
		st.Update(func(v ViewState) ViewState {
			v.PositionZ -= 0.1
			return v
		})
	}
	assert.InDelta(t, -1.0, st.Snapshot().PositionZ, 1e-9)
}
