package camrig

import "github.com/go-gl/mathgl/mgl64"

// worldUp is the reference up direction for orientation drivers.
var worldUp = mgl64.Vec3{0, 1, 0}

// LookAt turns the camera to face Target from the parent position. The
// orientation change is smoothed with its own time constant; position passes
// through. Retarget by writing Target between updates.
type LookAt[H Handedness] struct {
	Target     mgl64.Vec3
	Smoothness float64

	primed bool
	outRot mgl64.Quat
}

// NewLookAt returns a LookAt facing target with no smoothing.
func NewLookAt[H Handedness](target mgl64.Vec3) *LookAt[H] {
	return &LookAt[H]{Target: target}
}

// TrackingSmoothness sets the rotation time constant in seconds.
func (d *LookAt[H]) TrackingSmoothness(s float64) *LookAt[H] {
	d.Smoothness = s
	return d
}

func (d *LookAt[H]) Drive(p UpdateParams[H]) Transform[H] {
	pos := p.Parent.Position
	desired, ok := LookRotation[H](d.Target.Sub(pos), worldUp)

	switch {
	case !d.primed:
		d.primed = true
		if ok {
			d.outRot = desired
		} else {
			d.outRot = p.Parent.Rotation.Normalize()
		}
	case ok && p.DeltaTime > 0:
		d.outRot = smoothQuat(d.outRot, desired, p.DeltaTime, d.Smoothness)
	}
	// Degenerate directions (target on the camera, or straight above or
	// below it) keep the previous orientation.

	return Transform[H]{Position: pos, Rotation: d.outRot}
}
