package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-viewer/internal/object"
	"transform-viewer/internal/transform"
	"transform-viewer/internal/viewstate"
)

func TestTickAccumulatesRotation(t *testing.T) {
	store := viewstate.New()
	store.Replace(viewstate.Patch{RotationDeltaX: viewstate.Float(0.25), RotationDeltaY: viewstate.Float(0.5)})
	set := object.NewSet()
	cube := object.New("cube", nil)
	set.Add(cube)

	u := New(store, set, nil)
	const n = 40
	for i := 0; i < n; i++ {
		u.Tick()
	}

	// Deltas are exact binary fractions, so repeated addition equals multiplication.
	assert.Equal(t, n*0.25, cube.Rotation.X)
	assert.Equal(t, n*0.5, cube.Rotation.Y)
	assert.Equal(t, 0.0, cube.Rotation.Z)
	assert.Equal(t, uint64(n), u.Ticks())
}

func TestTickRotationHasNoWraparound(t *testing.T) {
	store := viewstate.New()
	store.Replace(viewstate.Patch{RotationDeltaX: viewstate.Float(viewstate.RotationDeltaMax)})
	set := object.NewSet()
	cube := object.New("cube", nil)
	set.Add(cube)

	u := New(store, set, nil)
	for i := 0; i < 1000; i++ {
		u.Tick()
	}
	assert.InDelta(t, 1000*viewstate.RotationDeltaMax, cube.Rotation.X, 1e-9)
}

func TestTickUniformScaleIsIdempotent(t *testing.T) {
	store := viewstate.New()
	store.Replace(viewstate.Patch{UniformScale: viewstate.Float(1.7)})
	set := object.NewSet()
	a, b := object.New("a", nil), object.New("b", nil)
	a.Scale = transform.NewVec3(9, 0.2, 3)
	set.Add(a)
	set.Add(b)

	u := New(store, set, nil)
	for i := 0; i < 5; i++ {
		u.Tick()
		assert.Equal(t, transform.Uniform(1.7), a.Scale)
		assert.Equal(t, transform.Uniform(1.7), b.Scale)
	}
}

func TestTickWritesMatrixText(t *testing.T) {
	store := viewstate.New()
	store.Replace(viewstate.Patch{PositionX: viewstate.Float(1)})

	var rendered int
	u := New(store, object.NewSet(), func() { rendered++ })
	u.Tick()

	assert.Equal(t, 1, rendered)
	assert.Equal(t, "1\n0\n0\n0\n0\n1\n0\n0\n0\n0\n1\n0\n1\n0\n0\n1", store.Snapshot().MatrixText)
}

func TestTickSeesEditsImmediately(t *testing.T) {
	store := viewstate.New()
	set := object.NewSet()
	cube := object.New("cube", nil)
	set.Add(cube)
	u := New(store, set, nil)

	u.Tick()
	require.Equal(t, 0.01, cube.Rotation.X)

	store.Replace(viewstate.Patch{RotationDeltaX: viewstate.Float(1), PositionY: viewstate.Float(2)})
	u.Tick()
	assert.InDelta(t, 1.01, cube.Rotation.X, 1e-12)
	assert.Equal(t, store.Snapshot().Matrix().Text(), store.Snapshot().MatrixText)
}

func TestTickEmptySet(t *testing.T) {
	store := viewstate.New()
	u := New(store, object.NewSet(), nil)
	assert.NotPanics(t, u.Tick)
	assert.NotEqual(t, viewstate.NoMatrix, store.Snapshot().MatrixText)
}
