package preset

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/phanxgames/camrig"
)

// Driver kinds known to NewRegistry.
const (
	KindPosition         = "position"
	KindRotation         = "rotation"
	KindArm              = "arm"
	KindSmooth           = "smooth"
	KindLookAt           = "look_at"
	KindMaintainDistance = "maintain_distance"
	KindYawPitch         = "yaw_pitch"
	KindLockPosition     = "lock_position"
	KindBounds           = "bounds"
	KindGlide            = "glide"
)

// DriverFactory creates a driver from its preset entry. It returns an error
// wrapping ErrInvalidField when the entry is unusable.
type DriverFactory[H camrig.Handedness] func(cfg DriverConfig) (camrig.Driver[H], error)

// Registry maps driver kinds to factories. It is safe for concurrent use.
type Registry[H camrig.Handedness] struct {
	mu        sync.RWMutex
	factories map[string]DriverFactory[H]
}

// NewRegistry returns a registry holding every built-in driver kind.
func NewRegistry[H camrig.Handedness]() *Registry[H] {
	r := &Registry[H]{factories: make(map[string]DriverFactory[H])}
	r.Register(KindPosition, newPosition[H])
	r.Register(KindRotation, newRotation[H])
	r.Register(KindArm, newArm[H])
	r.Register(KindSmooth, newSmooth[H])
	r.Register(KindLookAt, newLookAt[H])
	r.Register(KindMaintainDistance, newMaintainDistance[H])
	r.Register(KindYawPitch, newYawPitch[H])
	r.Register(KindLockPosition, newLockPosition[H])
	r.Register(KindBounds, newBounds[H])
	r.Register(KindGlide, newGlide[H])
	return r
}

// Register adds or replaces the factory for kind. Host code registers its
// own drivers here to make them available to presets.
func (r *Registry[H]) Register(kind string, f DriverFactory[H]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.factories == nil {
		r.factories = make(map[string]DriverFactory[H])
	}
	r.factories[kind] = f
}

// Kinds returns the registered kinds in alphabetical order.
func (r *Registry[H]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Drivers builds the preset's drivers in order without assembling a rig.
func (r *Registry[H]) Drivers(p Preset) ([]camrig.Driver[H], error) {
	if len(p.Drivers) == 0 {
		return nil, ErrEmptyPreset
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]camrig.Driver[H], 0, len(p.Drivers))
	for i, cfg := range p.Drivers {
		f, ok := r.factories[cfg.Kind]
		if !ok {
			return nil, fmt.Errorf("driver %d: %w %q", i, ErrUnknownDriver, cfg.Kind)
		}
		d, err := f(cfg)
		if err != nil {
			return nil, fmt.Errorf("driver %d (%s): %w", i, cfg.Kind, err)
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// Build turns the preset into a rig.
func (r *Registry[H]) Build(p Preset) (*camrig.Rig[H], error) {
	drivers, err := r.Drivers(p)
	if err != nil {
		return nil, fmt.Errorf("build preset %q: %w", p.Name, err)
	}
	b := camrig.NewBuilder[H]()
	for _, d := range drivers {
		b.With(d)
	}
	camrig.Logger().Debug("camrig: preset built",
		slog.String("name", p.Name),
		slog.Int("drivers", len(drivers)))
	return b.Build(), nil
}

// Build turns the preset into a rig using the built-in driver kinds.
func Build[H camrig.Handedness](p Preset) (*camrig.Rig[H], error) {
	return NewRegistry[H]().Build(p)
}
