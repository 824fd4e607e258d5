package camrig

import "github.com/go-gl/mathgl/mgl64"

// Arm offsets the camera by a fixed vector expressed in the parent's local
// space, so the offset follows the parent orientation (an over-the-shoulder
// or boom offset).
type Arm[H Handedness] struct {
	Offset mgl64.Vec3
}

// NewArm returns an Arm with the given local-space offset.
func NewArm[H Handedness](offset mgl64.Vec3) *Arm[H] {
	return &Arm[H]{Offset: offset}
}

func (d *Arm[H]) Drive(p UpdateParams[H]) Transform[H] {
	return Transform[H]{
		Position: p.Parent.Position.Add(p.Parent.Rotation.Rotate(d.Offset)),
		Rotation: p.Parent.Rotation,
	}
}
