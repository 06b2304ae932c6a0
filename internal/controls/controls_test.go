package controls

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-viewer/internal/viewstate"
)

func TestParseFloat(t *testing.T) {
	cases := map[string]float64{
		"1":         1,
		"  -2.5":    -2.5,
		"1.5abc":    1.5,
		".5":        0.5,
		"-.25":      -0.25,
		"3.":        3,
		"1e3":       1000,
		"2e":        2,
		"2e+":       2,
		"7E-1x":     0.7,
		"+4":        4,
		"Infinity":  math.Inf(1),
		"-Infinity": math.Inf(-1),
		"1e400":     math.Inf(1),
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFloat(in), "input %q", in)
	}
	for _, in := range []string{"", "-", ".", "abc", "e5", "--1", "+-2"} {
		assert.True(t, math.IsNaN(ParseFloat(in)), "input %q", in)
	}
}

func TestDebugPanelLayout(t *testing.T) {
	folders := DebugPanel()
	require.Len(t, folders, 2)

	rot := folders[0]
	assert.Equal(t, "Cube Rotation", rot.Title)
	assert.True(t, rot.Open)
	require.Len(t, rot.Sliders, 2)
	assert.Equal(t, "Rotation X", rot.Sliders[0].Name)
	assert.Equal(t, 2*math.Pi, rot.Sliders[0].Max)
	require.Len(t, rot.Readouts, 1)
	assert.Equal(t, "Transformation Matrix", rot.Readouts[0].Name)

	scale := folders[1]
	assert.Equal(t, "Cube Scale", scale.Title)
	require.Len(t, scale.Sliders, 1)
	assert.Equal(t, 0.1, scale.Sliders[0].Min)
	assert.Equal(t, 2.0, scale.Sliders[0].Max)

	rot.Toggle()
	assert.False(t, rot.Open)
}

func TestSliderSnap(t *testing.T) {
	scale := DebugPanel()[1].Sliders[0]
	assert.InDelta(t, 0.1, scale.Snap(-3), 1e-12)
	assert.InDelta(t, 2.0, scale.Snap(9), 1e-12)
	assert.InDelta(t, 1.3, scale.Snap(1.26), 1e-12)
	assert.InDelta(t, 1.2, scale.Snap(1.24), 1e-12)

	rotX := DebugPanel()[0].Sliders[0]
	assert.InDelta(t, 6.28, rotX.Snap(100), 1e-12, "top of range snaps inside the bound")
	assert.InDelta(t, 0.0, rotX.ValueAt(-1), 1e-12)
	assert.InDelta(t, 6.28, rotX.ValueAt(1), 1e-12)
	assert.InDelta(t, float32(0.5), rotX.Fraction(math.Pi), 1e-6)
	assert.Equal(t, float32(0), rotX.Fraction(math.NaN()))
}

func TestSliderSetWritesStore(t *testing.T) {
	store := viewstate.New()
	folders := DebugPanel()
	folders[0].Sliders[1].Set(store, 0.456)
	folders[1].Sliders[0].Set(store, 5)

	s := store.Snapshot()
	assert.InDelta(t, 0.46, s.RotationDeltaY, 1e-12)
	assert.Equal(t, 0.01, s.RotationDeltaX)
	assert.Equal(t, 2.0, s.UniformScale)
	assert.Equal(t, 2.0, folders[1].Sliders[0].Value(s))

	store.SetMatrixText("m")
	assert.Equal(t, "m", folders[0].Readouts[0].Text(store.Snapshot()))
}

func TestFieldEditing(t *testing.T) {
	store := viewstate.New()
	fields := TransformFields()
	require.Len(t, fields, 9)
	px := fields[0]
	sz := fields[8]
	assert.Equal(t, "Position X", px.Label)
	assert.Equal(t, "Scale Z", sz.Label)

	px.Input(store, '5')
	assert.Equal(t, 0.0, store.Snapshot().PositionX, "unfocused field ignores typing")

	px.Focus(store.Snapshot())
	assert.Equal(t, "0", px.Text(store.Snapshot()))
	px.Backspace(store)
	assert.True(t, math.IsNaN(store.Snapshot().PositionX), "empty input is NaN")

	px.Input(store, '-')
	assert.True(t, math.IsNaN(store.Snapshot().PositionX))
	px.Input(store, '2')
	px.Input(store, 'x')
	px.Input(store, '.')
	px.Input(store, '5')
	assert.Equal(t, "-2.5", px.Text(store.Snapshot()))
	assert.Equal(t, -2.5, store.Snapshot().PositionX)

	px.Blur()
	assert.Equal(t, "-2.5", px.Text(store.Snapshot()))
	assert.False(t, px.Focused())

	sz.Step(store, 1)
	assert.Equal(t, 2.0, store.Snapshot().ScaleZ)
}

func TestFieldNaNReachesMatrix(t *testing.T) {
	store := viewstate.New()
	ry := TransformFields()[4]
	ry.Focus(store.Snapshot())
	ry.Backspace(store)
	assert.Contains(t, store.Snapshot().Matrix().Text(), "NaN")
}
