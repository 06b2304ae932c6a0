package viewstate

import (
	"math"

	"transform-viewer/internal/transform"
)

// Slider bounds for the per-tick controls. The store does not enforce them; the widgets do.
const (
	RotationDeltaMin  = 0
	RotationDeltaMax  = 2 * math.Pi
	RotationDeltaStep = 0.01
	UniformScaleMin   = 0.1
	UniformScaleMax   = 2
	UniformScaleStep  = 0.1
)

// NoMatrix is shown in the matrix readout until the first tick has run.
const NoMatrix = "No Matrix"

// ViewState is every UI-adjustable parameter of the viewer. The preview transform is kept
// as flat per-axis fields, one per numeric input; Position, Rotation and Scale return them
// as vectors.
type ViewState struct {
	RotationDeltaX float64
	RotationDeltaY float64
	UniformScale   float64

	PositionX, PositionY, PositionZ float64
	RotationX, RotationY, RotationZ float64
	ScaleX, ScaleY, ScaleZ          float64

	// MatrixText is derived by the frame updater from the preview transform. Read-only.
	MatrixText string
}

// Defaults returns the state a freshly mounted view starts with.
func Defaults() ViewState {
	return ViewState{
		RotationDeltaX: 0.01,
		RotationDeltaY: 0.01,
		UniformScale:   1,
		ScaleX:         1,
		ScaleY:         1,
		ScaleZ:         1,
		MatrixText:     NoMatrix,
	}
}

// Position returns the preview translation.
func (v ViewState) Position() transform.Vec3 {
	return transform.NewVec3(v.PositionX, v.PositionY, v.PositionZ)
}

// Rotation returns the preview Euler angles (radians, XYZ order).
func (v ViewState) Rotation() transform.Vec3 {
	return transform.NewVec3(v.RotationX, v.RotationY, v.RotationZ)
}

// Scale returns the preview scale.
func (v ViewState) Scale() transform.Vec3 {
	return transform.NewVec3(v.ScaleX, v.ScaleY, v.ScaleZ)
}

// Matrix composes the preview transform.
func (v ViewState) Matrix() transform.Mat4 {
	return transform.ComposeEuler(v.Position(), v.Rotation(), v.Scale())
}
