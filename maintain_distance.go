package camrig

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// MaintainDistance keeps the camera between MinDistance and MaxDistance of
// Focal, measured in the plane perpendicular to PlaneNormal. With PlaneNormal
// set to +Y the constraint is horizontal and height is left alone. A zero
// PlaneNormal measures full 3D distance.
//
// Within range the parent passes through unchanged. Rotation is never
// modified.
type MaintainDistance[H Handedness] struct {
	Focal       mgl64.Vec3
	PlaneNormal mgl64.Vec3
	MinDistance float64
	MaxDistance float64
}

// NewMaintainDistance returns a horizontal distance constraint around focal.
func NewMaintainDistance[H Handedness](focal mgl64.Vec3, minDistance, maxDistance float64) *MaintainDistance[H] {
	return &MaintainDistance[H]{
		Focal:       focal,
		PlaneNormal: mgl64.Vec3{0, 1, 0},
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
}

func (d *MaintainDistance[H]) Drive(p UpdateParams[H]) Transform[H] {
	toFocal := reject(d.Focal.Sub(p.Parent.Position), d.PlaneNormal)
	distance := toFocal.Len()

	var correction float64
	switch {
	case distance > d.MaxDistance:
		correction = distance - d.MaxDistance
	case distance < d.MinDistance:
		correction = distance - d.MinDistance
	default:
		return p.Parent
	}

	// The camera sits on the focal axis: there is no direction to push along.
	dir, ok := normalized(toFocal)
	if !ok {
		Logger().Debug("camrig: maintain distance skipped, camera on focal axis",
			slog.Float64("distance", distance))
		return p.Parent
	}
	return Transform[H]{
		Position: p.Parent.Position.Add(dir.Mul(correction)),
		Rotation: p.Parent.Rotation,
	}
}
