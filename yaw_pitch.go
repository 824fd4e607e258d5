package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// YawPitch builds the camera orientation from accumulated yaw (about +Y) and
// pitch (about the camera's +X) angles, in degrees. Position passes through.
type YawPitch[H Handedness] struct {
	YawDegrees   float64
	PitchDegrees float64
}

// NewYawPitch returns a YawPitch looking along the default forward axis.
func NewYawPitch[H Handedness]() *YawPitch[H] {
	return &YawPitch[H]{}
}

// RotationQuat initializes yaw and pitch from an orientation.
func (d *YawPitch[H]) RotationQuat(q mgl64.Quat) *YawPitch[H] {
	d.SetRotationQuat(q)
	return d
}

// RotateYawPitch adds to the current angles. Yaw wraps within (-720, 720)
// and pitch is clamped to [-90, 90].
func (d *YawPitch[H]) RotateYawPitch(yawDegrees, pitchDegrees float64) {
	d.YawDegrees = math.Mod(d.YawDegrees+yawDegrees, 720)
	d.PitchDegrees = math.Max(-90, math.Min(90, d.PitchDegrees+pitchDegrees))
}

// SetRotationQuat derives yaw and pitch from the forward axis of q. Roll is
// discarded.
func (d *YawPitch[H]) SetRotationQuat(q mgl64.Quat) {
	var h H
	// Express forward in the frame where it starts along -Z, where yaw and
	// pitch have their right-handed meaning.
	f := q.Normalize().Rotate(mgl64.Vec3{0, 0, h.ForwardZSign()})
	s := -h.ForwardZSign()
	fx, fz := f.X()*s, f.Z()*s

	d.YawDegrees = mgl64.RadToDeg(math.Atan2(-fx, -fz))
	d.PitchDegrees = mgl64.RadToDeg(math.Asin(math.Max(-1, math.Min(1, f.Y()))))
}

func (d *YawPitch[H]) Drive(p UpdateParams[H]) Transform[H] {
	var h H
	yaw := mgl64.DegToRad(d.YawDegrees)
	pitch := mgl64.DegToRad(d.PitchDegrees)
	// A positive pitch raises the forward axis in both conventions.
	pitch *= -h.ForwardZSign()

	rot := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})).
		Normalize()
	return Transform[H]{Position: p.Parent.Position, Rotation: rot}
}
