package ebitenhost

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/camrig"
)

// KeyState reports whether a key is held. ebiten.IsKeyPressed satisfies it.
type KeyState func(ebiten.Key) bool

// MoveKeys names the keys of a six-direction movement scheme.
type MoveKeys struct {
	Forward, Back, Left, Right, Up, Down ebiten.Key
}

// WASD moves on the ground plane with Space and left Shift for height.
var WASD = MoveKeys{
	Forward: ebiten.KeyW,
	Back:    ebiten.KeyS,
	Left:    ebiten.KeyA,
	Right:   ebiten.KeyD,
	Up:      ebiten.KeySpace,
	Down:    ebiten.KeyShiftLeft,
}

// Axis returns the held direction as x right, y up and z forward, each -1, 0
// or 1. A nil pressed reads the live keyboard.
func (k MoveKeys) Axis(pressed KeyState) mgl64.Vec3 {
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	axis := func(pos, neg ebiten.Key) float64 {
		var v float64
		if pressed(pos) {
			v++
		}
		if pressed(neg) {
			v--
		}
		return v
	}
	return mgl64.Vec3{
		axis(k.Right, k.Left),
		axis(k.Up, k.Down),
		axis(k.Forward, k.Back),
	}
}

// GroundMove turns an Axis reading into world motion relative to the camera:
// forward and right are flattened onto the horizontal plane, up is world +Y.
// When the camera looks straight up or down only vertical motion remains.
func GroundMove[H camrig.Handedness](xf camrig.Transform[H], axis mgl64.Vec3, distance float64) mgl64.Vec3 {
	flat := func(v mgl64.Vec3) mgl64.Vec3 {
		v[1] = 0
		if l := v.Len(); l > 1e-9 {
			return v.Mul(1 / l)
		}
		return mgl64.Vec3{}
	}
	right := flat(xf.Right())
	forward := flat(xf.Forward())
	move := right.Mul(axis[0]).Add(mgl64.Vec3{0, axis[1], 0}).Add(forward.Mul(axis[2]))
	return move.Mul(distance)
}

// MouseLook turns cursor motion into yaw and pitch deltas in degrees.
type MouseLook struct {
	// Sensitivity is degrees per pixel.
	Sensitivity float64

	lastX, lastY int
	primed       bool
}

// Delta consumes a cursor position and returns the rotation since the last
// call. The first call only records the position. Moving right turns right
// and moving up pitches up.
func (m *MouseLook) Delta(x, y int) (yawDegrees, pitchDegrees float64) {
	if !m.primed {
		m.lastX, m.lastY, m.primed = x, y, true
		return 0, 0
	}
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	return -float64(dx) * m.Sensitivity, -float64(dy) * m.Sensitivity
}

// Reset forgets the last cursor position.
func (m *MouseLook) Reset() {
	m.primed = false
}
