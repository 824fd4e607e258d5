package camrig

import "github.com/go-gl/mathgl/mgl64"

// RightHanded marks a right-handed coordinate system: +X right, +Y up, and the
// camera looks down -Z.
type RightHanded struct{}

// LeftHanded marks a left-handed coordinate system: +X right, +Y up, and the
// camera looks down +Z.
type LeftHanded struct{}

// Handedness is the type-level tag shared by a rig, its drivers and the
// transforms flowing between them. It is a closed set; a Transform[RightHanded]
// cannot be passed where a Transform[LeftHanded] is expected.
type Handedness interface {
	RightHanded | LeftHanded

	// ForwardZSign is the sign of the local Z axis the camera looks along.
	ForwardZSign() float64
	// RightFromUpAndForward returns the right vector for an up/forward pair.
	RightFromUpAndForward(up, forward mgl64.Vec3) mgl64.Vec3
	// UpFromRightAndForward returns the up vector for a right/forward pair.
	UpFromRightAndForward(right, forward mgl64.Vec3) mgl64.Vec3
}

func (RightHanded) ForwardZSign() float64 { return -1 }

func (RightHanded) RightFromUpAndForward(up, forward mgl64.Vec3) mgl64.Vec3 {
	return forward.Cross(up)
}

func (RightHanded) UpFromRightAndForward(right, forward mgl64.Vec3) mgl64.Vec3 {
	return right.Cross(forward)
}

func (LeftHanded) ForwardZSign() float64 { return 1 }

func (LeftHanded) RightFromUpAndForward(up, forward mgl64.Vec3) mgl64.Vec3 {
	return up.Cross(forward)
}

func (LeftHanded) UpFromRightAndForward(right, forward mgl64.Vec3) mgl64.Vec3 {
	return forward.Cross(right)
}
