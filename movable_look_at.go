package camrig

import "github.com/go-gl/mathgl/mgl64"

// MovableLookAt is a composite driver: a camera that follows a moving
// position with predictive smoothing, keeps a horizontal distance of 4 to 10
// units from a target and looks at a point one unit above it.
//
// Its inner rig is private; use SetPositionTarget to steer it. The outer
// rig's DriverMut finds the MovableLookAt itself, not its inner drivers.
type MovableLookAt[H Handedness] struct {
	rig *Rig[H]
}

// targetLift raises the look-at point above the followed target.
var targetLift = mgl64.Vec3{0, 1, 0}

// NewMovableLookAt builds the composite from an initial camera position and
// target.
func NewMovableLookAt[H Handedness](camera, target mgl64.Vec3) *MovableLookAt[H] {
	return &MovableLookAt[H]{
		rig: NewBuilder[H]().
			With(NewPosition[H](camera)).
			// Predict movement so the following smoothing stays responsive.
			With(NewSmoothPosition[H](1.25).Predictive(true)).
			With(NewSmoothPosition[H](2.5)).
			With(NewMaintainDistance[H](target, 4, 10)).
			With(NewLookAt[H](target.Add(targetLift)).TrackingSmoothness(1.25)).
			Build(),
	}
}

// SetPositionTarget moves the camera anchor and the followed target.
func (m *MovableLookAt[H]) SetPositionTarget(camera, target mgl64.Vec3) {
	DriverMut[*Position[H]](m.rig).Position = camera
	DriverMut[*LookAt[H]](m.rig).Target = target.Add(targetLift)
	DriverMut[*MaintainDistance[H]](m.rig).Focal = target
}

// Transform returns the inner rig's last result.
func (m *MovableLookAt[H]) Transform() Transform[H] {
	return m.rig.FinalTransform
}

func (m *MovableLookAt[H]) Drive(p UpdateParams[H]) Transform[H] {
	return m.rig.Drive(p)
}
