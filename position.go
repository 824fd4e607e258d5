package camrig

import "github.com/go-gl/mathgl/mgl64"

// Position sets the camera position to a directly controlled value. Host code
// writes Position each frame to push raw camera state into the rig. The
// parent rotation passes through.
type Position[H Handedness] struct {
	Position mgl64.Vec3
}

// NewPosition returns a Position driver starting at p.
func NewPosition[H Handedness](p mgl64.Vec3) *Position[H] {
	return &Position[H]{Position: p}
}

// Translate moves the held position by delta.
func (d *Position[H]) Translate(delta mgl64.Vec3) {
	d.Position = d.Position.Add(delta)
}

func (d *Position[H]) Drive(p UpdateParams[H]) Transform[H] {
	return Transform[H]{
		Position: d.Position,
		Rotation: p.Parent.Rotation,
	}
}
