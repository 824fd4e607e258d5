package camrig

import "github.com/go-gl/mathgl/mgl64"

// Rotation sets the camera orientation to a directly controlled value; the
// orientation analogue of Position. The parent position passes through.
type Rotation[H Handedness] struct {
	Rotation mgl64.Quat
}

// NewRotation returns a Rotation driver holding q.
func NewRotation[H Handedness](q mgl64.Quat) *Rotation[H] {
	return &Rotation[H]{Rotation: q}
}

func (d *Rotation[H]) Drive(p UpdateParams[H]) Transform[H] {
	// Normalize returns identity for a zero quaternion.
	return Transform[H]{
		Position: p.Parent.Position,
		Rotation: d.Rotation.Normalize(),
	}
}
