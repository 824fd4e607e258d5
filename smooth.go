package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PredictiveLookahead scales how far a predictive Smooth extrapolates its
// input, in multiples of the smoothing time constant. At 1 the extrapolation
// cancels the steady-state lag of smoothing a constant-velocity input.
const PredictiveLookahead = 1.0

// Smooth exponentially smooths the parent position (linear interpolation)
// and rotation (spherical interpolation). Each smoothness is a time constant
// in seconds: larger values respond slower, zero passes the parent through.
//
// In predictive mode the parent's motion is extrapolated from its observed
// velocity before smoothing. This cancels most of the lag but overshoots when
// the parent reverses direction abruptly.
type Smooth[H Handedness] struct {
	PositionSmoothness float64
	RotationSmoothness float64

	predictive bool

	primed     bool
	prevRawPos mgl64.Vec3
	prevRawRot mgl64.Quat
	outPos     mgl64.Vec3
	outRot     mgl64.Quat
}

// NewSmoothPosition smooths position only.
func NewSmoothPosition[H Handedness](smoothness float64) *Smooth[H] {
	return &Smooth[H]{PositionSmoothness: smoothness}
}

// NewSmoothRotation smooths rotation only.
func NewSmoothRotation[H Handedness](smoothness float64) *Smooth[H] {
	return &Smooth[H]{RotationSmoothness: smoothness}
}

// NewSmoothPositionRotation smooths both with separate time constants.
func NewSmoothPositionRotation[H Handedness](position, rotation float64) *Smooth[H] {
	return &Smooth[H]{PositionSmoothness: position, RotationSmoothness: rotation}
}

// Predictive enables or disables predictive extrapolation.
func (d *Smooth[H]) Predictive(on bool) *Smooth[H] {
	d.predictive = on
	return d
}

// IsPredictive reports whether predictive extrapolation is enabled.
func (d *Smooth[H]) IsPredictive() bool {
	return d.predictive
}

// Reset drops the smoothing history. The next update snaps to its input,
// which is what a teleporting camera wants.
func (d *Smooth[H]) Reset() {
	d.primed = false
}

func (d *Smooth[H]) Drive(p UpdateParams[H]) Transform[H] {
	rawPos, rawRot := p.Parent.Position, p.Parent.Rotation
	dt := p.DeltaTime

	if !d.primed {
		d.primed = true
		d.prevRawPos, d.prevRawRot = rawPos, rawRot
		d.outPos, d.outRot = rawPos, rawRot
		return d.output()
	}
	if dt == 0 {
		// Track the input so motion made while paused is not read as velocity.
		d.prevRawPos, d.prevRawRot = rawPos, rawRot
		return d.output()
	}

	targetPos, targetRot := rawPos, rawRot
	if d.predictive {
		targetPos = predictPosition(d.prevRawPos, rawPos, dt, d.PositionSmoothness*PredictiveLookahead)
		targetRot = predictRotation(d.prevRawRot, rawRot, dt, d.RotationSmoothness*PredictiveLookahead)
	}
	d.prevRawPos, d.prevRawRot = rawPos, rawRot

	d.outPos = smoothVec3(d.outPos, targetPos, dt, d.PositionSmoothness)
	d.outRot = smoothQuat(d.outRot, targetRot, dt, d.RotationSmoothness)
	return d.output()
}

func (d *Smooth[H]) output() Transform[H] {
	return Transform[H]{Position: d.outPos, Rotation: d.outRot}
}

// smoothVec3 moves prev toward target by the exponential smoothing factor.
func smoothVec3(prev, target mgl64.Vec3, dt, smoothness float64) mgl64.Vec3 {
	if smoothness <= 0 {
		return target
	}
	return lerpVec3(prev, target, smoothingFactor(dt, smoothness))
}

// smoothQuat is smoothVec3 for orientations.
func smoothQuat(prev, target mgl64.Quat, dt, smoothness float64) mgl64.Quat {
	if smoothness <= 0 {
		return target
	}
	return slerp(prev, target, smoothingFactor(dt, smoothness))
}

// predictPosition extrapolates cur along the velocity observed since prev for
// lookahead seconds.
func predictPosition(prev, cur mgl64.Vec3, dt, lookahead float64) mgl64.Vec3 {
	if lookahead <= 0 {
		return cur
	}
	velocity := cur.Sub(prev).Mul(1 / dt)
	predicted := cur.Add(velocity.Mul(lookahead))
	if !finiteVec(predicted) {
		return cur
	}
	return predicted
}

// predictRotation extrapolates cur along the angular velocity observed since
// prev for lookahead seconds. The extrapolated angle is capped at half a turn.
func predictRotation(prev, cur mgl64.Quat, dt, lookahead float64) mgl64.Quat {
	if lookahead <= 0 {
		return cur
	}
	delta := cur.Mul(prev.Inverse()).Normalize()
	if delta.W < 0 {
		delta = delta.Scale(-1)
	}
	angle := 2 * math.Acos(math.Min(delta.W, 1))
	axis, ok := normalized(delta.V)
	if !ok || angle < 1e-9 {
		return cur
	}
	ahead := math.Min(angle/dt*lookahead, math.Pi)
	return mgl64.QuatRotate(ahead, axis).Mul(cur).Normalize()
}
