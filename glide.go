package camrig

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds the active per-axis tweens of a Glide.
type glideAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Glide is a Position driver whose value can be animated to a destination
// over a fixed duration with an easing curve. It ignores the parent position
// and passes the parent rotation through, like Position.
type Glide[H Handedness] struct {
	// Position is the current camera position. Writing it while a glide is
	// running is overridden by the animation on the next update.
	Position mgl64.Vec3

	anim *glideAnim
}

// NewGlide returns an idle Glide at p.
func NewGlide[H Handedness](p mgl64.Vec3) *Glide[H] {
	return &Glide[H]{Position: p}
}

// GlideTo animates Position from its current value to dest over duration
// seconds. A non-positive duration jumps immediately. A nil easeFn uses
// linear easing.
func (d *Glide[H]) GlideTo(dest mgl64.Vec3, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		d.Position = dest
		d.anim = nil
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	a := &glideAnim{}
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(d.Position[i]), float32(dest[i]), duration, easeFn)
	}
	d.anim = a
}

// Stop cancels a running glide, leaving Position where it is.
func (d *Glide[H]) Stop() {
	d.anim = nil
}

// Active reports whether a glide is in progress.
func (d *Glide[H]) Active() bool {
	return d.anim != nil
}

func (d *Glide[H]) Drive(p UpdateParams[H]) Transform[H] {
	if d.anim != nil && p.DeltaTime > 0 {
		d.advance(float32(p.DeltaTime))
	}
	return Transform[H]{Position: d.Position, Rotation: p.Parent.Rotation}
}

func (d *Glide[H]) advance(dt float32) {
	a := d.anim
	for i, tw := range a.tweens {
		if a.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		d.Position[i] = float64(val)
		a.done[i] = done
	}
	if a.done[0] && a.done[1] && a.done[2] {
		d.anim = nil
	}
}
