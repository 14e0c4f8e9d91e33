package viewscene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 30
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// Scene holds the gallery camera and draws the ground grid. The camera slowly
// orbits the gallery center; scroll zooms.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
}

// New returns a scene with a perspective camera looking at the gallery
// center from above and to the side.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(8, 6, 8)
	s.Camera.Target = rl.NewVector3(0, 1, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// Update runs camera logic once per frame (orbital mode: auto-rotate plus
// mouse-wheel zoom).
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
}

// Begin enters 3D mode and draws the grid; pair with End after robot drawing.
func (s *Scene) Begin() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
}

// End leaves 3D mode.
func (s *Scene) End() {
	rl.EndMode3D()
}

// drawGrid draws minor/major lines on the XZ plane at Y=0.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
