package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridFloor      = -3 // grid plane sits below the objects so the front camera sees it as a floor
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// drawGrid draws a floor grid on the XZ plane at gridFloor with major/minor lines and
// red/blue axis lines. Reuses start/end vectors in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	start.Y, end.Y = gridFloor, gridFloor
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Z = float32(x), -gridExtent
		end.X, end.Z = float32(x), gridExtent
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Z = -gridExtent, float32(z)
		end.X, end.Z = gridExtent, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Z = -gridExtent, 0
	end.X, end.Z = gridExtent, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Z = 0, -gridExtent
	end.X, end.Z = 0, gridExtent
	rl.DrawLine3D(start, end, axisZ)
}
