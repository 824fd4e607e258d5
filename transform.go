package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the position and orientation passed between rig stages.
// Rotation is kept a unit quaternion by every driver in this package.
type Transform[H Handedness] struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the transform at the origin with no rotation.
func Identity[H Handedness]() Transform[H] {
	return Transform[H]{Rotation: mgl64.QuatIdent()}
}

// Forward returns the direction the camera looks along in world space.
func (t Transform[H]) Forward() mgl64.Vec3 {
	var h H
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, h.ForwardZSign()})
}

// Right returns the camera's +X axis in world space.
func (t Transform[H]) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Up returns the camera's +Y axis in world space.
func (t Transform[H]) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}

// Matrix returns the local-to-world matrix: Translate(Position) * Rotate.
func (t Transform[H]) Matrix() mgl64.Mat4 {
	p := t.Position
	return mgl64.Translate3D(p.X(), p.Y(), p.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the world-to-camera matrix, the inverse of Matrix.
//
//	view = Rotate(conj(Rotation)) * Translate(-Position)
func (t Transform[H]) ViewMatrix() mgl64.Mat4 {
	p := t.Position
	return t.Rotation.Conjugate().Mat4().Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// LookRotation returns the orientation whose forward axis points along
// forward, with up as the reference up direction. ok is false when forward
// is zero-length or parallel to up; the returned rotation is then identity.
func LookRotation[H Handedness](forward, up mgl64.Vec3) (q mgl64.Quat, ok bool) {
	var h H
	fwd, ok := normalized(forward)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	right, ok := normalized(h.RightFromUpAndForward(up, fwd))
	if !ok {
		return mgl64.QuatIdent(), false
	}
	realUp := h.UpFromRightAndForward(right, fwd)

	// Columns map local X, Y, Z onto right, up and the signed forward axis.
	basis := mgl64.Mat3FromCols(right, realUp, fwd.Mul(h.ForwardZSign()))
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// --- math helpers ---

// minSmoothness keeps smoothing time constants away from zero.
const minSmoothness = 1e-5

// smoothingFactor is the per-frame interpolation weight for an exponential
// approach with the given time constant: 1 - exp(-dt / smoothness).
func smoothingFactor(dt, smoothness float64) float64 {
	return 1 - math.Exp(-dt/math.Max(smoothness, minSmoothness))
}

// sanitizeDelta maps negative, NaN and infinite frame times to zero.
func sanitizeDelta(dt float64) float64 {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}

// lerpVec3 linearly interpolates from a to b.
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// slerp interpolates along the shorter arc between a and b.
func slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// normalized returns v scaled to unit length. ok is false for vectors too
// short (or too broken) to normalize.
func normalized(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// reject removes from v its component along n. A zero n leaves v unchanged.
func reject(v, n mgl64.Vec3) mgl64.Vec3 {
	nn := n.Dot(n)
	if nn == 0 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / nn))
}

// finiteVec reports whether every component of v is finite.
func finiteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
