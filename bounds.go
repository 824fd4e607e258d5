package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds clamps the camera position into Box, keeping Margin away from each
// face on the matching axis. When the box is narrower than twice the margin
// on an axis, the camera is centered on that axis instead. Rotation passes
// through.
type Bounds[H Handedness] struct {
	Box    Box
	Margin mgl64.Vec3
}

// NewBounds returns a Bounds driver for box with no margin.
func NewBounds[H Handedness](box Box) *Bounds[H] {
	return &Bounds[H]{Box: box}
}

func (d *Bounds[H]) Drive(p UpdateParams[H]) Transform[H] {
	pos := p.Parent.Position
	for i := range 3 {
		lo := d.Box.Min[i] + d.Margin[i]
		hi := d.Box.Max[i] - d.Margin[i]
		if lo > hi {
			pos[i] = (d.Box.Min[i] + d.Box.Max[i]) / 2
		} else {
			pos[i] = math.Max(lo, math.Min(pos[i], hi))
		}
	}
	return Transform[H]{Position: pos, Rotation: p.Parent.Rotation}
}
