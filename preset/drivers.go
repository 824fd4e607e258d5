package preset

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/camrig"
)

// easings maps preset ease names to gween curves.
var easings = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"out_back":       ease.OutBack,
	"out_bounce":     ease.OutBounce,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
}

// Easing returns the curve registered under name. Names are case-insensitive.
func Easing(name string) (ease.TweenFunc, bool) {
	f, ok := easings[strings.ToLower(name)]
	return f, ok
}

func vec(v *[3]float64) mgl64.Vec3 {
	if v == nil {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3(*v)
}

func required(name string, v *[3]float64) error {
	if v == nil {
		return fmt.Errorf("%w: %s is required", ErrInvalidField, name)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidField, name, v)
	}
	return nil
}

func newPosition[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("position", s.Position); err != nil {
		return nil, err
	}
	return camrig.NewPosition[H](vec(s.Position)), nil
}

func newRotation[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if s.Rotation == nil {
		return nil, fmt.Errorf("%w: rotation is required", ErrInvalidField)
	}
	r := s.Rotation
	q := mgl64.Quat{W: r[0], V: mgl64.Vec3{r[1], r[2], r[3]}}
	if q.Len() < 1e-12 {
		return nil, fmt.Errorf("%w: rotation must be non-zero", ErrInvalidField)
	}
	return camrig.NewRotation[H](q.Normalize()), nil
}

func newArm[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("offset", s.Offset); err != nil {
		return nil, err
	}
	return camrig.NewArm[H](vec(s.Offset)), nil
}

func newSmooth[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := nonNegative("position_smoothness", s.PositionSmoothness); err != nil {
		return nil, err
	}
	if err := nonNegative("rotation_smoothness", s.RotationSmoothness); err != nil {
		return nil, err
	}
	d := camrig.NewSmoothPositionRotation[H](s.PositionSmoothness, s.RotationSmoothness)
	return d.Predictive(s.Predictive), nil
}

func newLookAt[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("target", s.Target); err != nil {
		return nil, err
	}
	if err := nonNegative("smoothness", s.Smoothness); err != nil {
		return nil, err
	}
	return camrig.NewLookAt[H](vec(s.Target)).TrackingSmoothness(s.Smoothness), nil
}

func newMaintainDistance[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("focal", s.Focal); err != nil {
		return nil, err
	}
	if err := nonNegative("min_distance", s.MinDistance); err != nil {
		return nil, err
	}
	if s.MaxDistance < s.MinDistance {
		return nil, fmt.Errorf("%w: max_distance %v is below min_distance %v",
			ErrInvalidField, s.MaxDistance, s.MinDistance)
	}
	d := camrig.NewMaintainDistance[H](vec(s.Focal), s.MinDistance, s.MaxDistance)
	if s.PlaneNormal != nil {
		d.PlaneNormal = vec(s.PlaneNormal)
	}
	return d, nil
}

func newYawPitch[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	d := camrig.NewYawPitch[H]()
	d.RotateYawPitch(s.YawDegrees, s.PitchDegrees)
	return d, nil
}

func newLockPosition[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	d := camrig.NewLockPosition[H]()
	if s.LockX != nil {
		d.LockX(*s.LockX)
	}
	if s.LockY != nil {
		d.LockY(*s.LockY)
	}
	if s.LockZ != nil {
		d.LockZ(*s.LockZ)
	}
	return d, nil
}

func newBounds[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("min", s.Min); err != nil {
		return nil, err
	}
	if err := required("max", s.Max); err != nil {
		return nil, err
	}
	lo, hi := vec(s.Min), vec(s.Max)
	for i := range 3 {
		if hi[i] < lo[i] {
			return nil, fmt.Errorf("%w: max %v is below min %v", ErrInvalidField, hi, lo)
		}
	}
	d := camrig.NewBounds[H](camrig.Box{Min: lo, Max: hi})
	d.Margin = vec(s.Margin)
	return d, nil
}

func newGlide[H camrig.Handedness](s DriverConfig) (camrig.Driver[H], error) {
	if err := required("position", s.Position); err != nil {
		return nil, err
	}
	d := camrig.NewGlide[H](vec(s.Position))
	if s.GlideTo == nil {
		return d, nil
	}
	if err := nonNegative("duration", s.Duration); err != nil {
		return nil, err
	}
	var fn ease.TweenFunc = ease.Linear
	if s.Ease != "" {
		var ok bool
		if fn, ok = Easing(s.Ease); !ok {
			return nil, fmt.Errorf("%w: unknown ease %q", ErrInvalidField, s.Ease)
		}
	}
	d.GlideTo(vec(s.GlideTo), float32(s.Duration), fn)
	return d, nil
}
