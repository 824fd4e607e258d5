// Package preset describes camera rigs declaratively in TOML and builds them.
//
// A preset is an ordered list of [[driver]] tables:
//
//	name = "third person"
//	handedness = "right"
//
//	[[driver]]
//	kind = "position"
//	position = [4.0, 3.0, 8.0]
//
//	[[driver]]
//	kind = "smooth"
//	position_smoothness = 1.25
//	predictive = true
//
//	[[driver]]
//	kind = "look_at"
//	target = [0.0, 1.0, 0.0]
//	smoothness = 1.25
//
// Drivers are built in file order by a [Registry].
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrEmptyPreset is returned for presets without drivers.
	ErrEmptyPreset = errors.New("preset has no drivers")
	// ErrUnknownDriver is returned for a driver kind missing from the registry.
	ErrUnknownDriver = errors.New("unknown driver kind")
	// ErrInvalidField is returned for missing or out-of-range driver fields.
	ErrInvalidField = errors.New("invalid driver field")
)

// Handedness values accepted in a preset.
const (
	RightHanded = "right"
	LeftHanded  = "left"
)

// Preset is a named, ordered driver list.
type Preset struct {
	Name       string         `toml:"name,omitempty"`
	Handedness string         `toml:"handedness,omitempty"`
	Drivers    []DriverConfig `toml:"driver"`
}

// DriverConfig holds the fields of every driver kind; each kind reads the ones
// it needs. Vectors are [x, y, z]; Rotation is [w, x, y, z].
type DriverConfig struct {
	Kind string `toml:"kind"`

	// position, glide
	Position *[3]float64 `toml:"position,omitempty"`
	// rotation
	Rotation *[4]float64 `toml:"rotation,omitempty"`
	// arm
	Offset *[3]float64 `toml:"offset,omitempty"`

	// smooth
	PositionSmoothness float64 `toml:"position_smoothness,omitempty"`
	RotationSmoothness float64 `toml:"rotation_smoothness,omitempty"`
	Predictive         bool    `toml:"predictive,omitempty"`

	// look_at
	Target     *[3]float64 `toml:"target,omitempty"`
	Smoothness float64     `toml:"smoothness,omitempty"`

	// maintain_distance
	Focal       *[3]float64 `toml:"focal,omitempty"`
	PlaneNormal *[3]float64 `toml:"plane_normal,omitempty"`
	MinDistance float64     `toml:"min_distance,omitempty"`
	MaxDistance float64     `toml:"max_distance,omitempty"`

	// yaw_pitch
	YawDegrees   float64 `toml:"yaw_degrees,omitempty"`
	PitchDegrees float64 `toml:"pitch_degrees,omitempty"`

	// lock_position
	LockX *float64 `toml:"lock_x,omitempty"`
	LockY *float64 `toml:"lock_y,omitempty"`
	LockZ *float64 `toml:"lock_z,omitempty"`

	// bounds
	Min    *[3]float64 `toml:"min,omitempty"`
	Max    *[3]float64 `toml:"max,omitempty"`
	Margin *[3]float64 `toml:"margin,omitempty"`

	// glide
	GlideTo  *[3]float64 `toml:"glide_to,omitempty"`
	Duration float64     `toml:"duration,omitempty"`
	Ease     string      `toml:"ease,omitempty"`
}

// Load reads and parses a preset file.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("load preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Preset{}, fmt.Errorf("load preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset from TOML. Unknown keys are rejected so typos in
// driver fields do not go unnoticed.
func Parse(data []byte) (Preset, error) {
	var p Preset
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if len(p.Drivers) == 0 {
		return Preset{}, fmt.Errorf("parse preset: %w", ErrEmptyPreset)
	}
	if _, err := p.LeftHanded(); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

// Encode renders a preset as TOML.
func Encode(p Preset) ([]byte, error) {
	data, err := toml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preset: %w", err)
	}
	return data, nil
}

// LeftHanded reports whether the preset asks for a left-handed rig. An empty
// handedness means right-handed.
func (p Preset) LeftHanded() (bool, error) {
	switch p.Handedness {
	case "", RightHanded:
		return false, nil
	case LeftHanded:
		return true, nil
	default:
		return false, fmt.Errorf("%w: handedness %q (want %q or %q)",
			ErrInvalidField, p.Handedness, RightHanded, LeftHanded)
	}
}

// Kinds returns the driver kinds in order.
func (p Preset) Kinds() []string {
	kinds := make([]string, len(p.Drivers))
	for i, d := range p.Drivers {
		kinds[i] = d.Kind
	}
	return kinds
}

// Example returns a third-person preset: a followed position with predictive
// smoothing, a horizontal distance constraint and a smoothed look-at.
func Example() Preset {
	camera := [3]float64{4, 3, 8}
	target := [3]float64{2, 1, 2}
	lookAt := [3]float64{2, 2, 2}
	up := [3]float64{0, 1, 0}
	return Preset{
		Name:       "third person",
		Handedness: RightHanded,
		Drivers: []DriverConfig{
			{Kind: KindPosition, Position: &camera},
			{Kind: KindSmooth, PositionSmoothness: 1.25, Predictive: true},
			{Kind: KindSmooth, PositionSmoothness: 2.5},
			{Kind: KindMaintainDistance, Focal: &target, PlaneNormal: &up, MinDistance: 4, MaxDistance: 10},
			{Kind: KindLookAt, Target: &lookAt, Smoothness: 1.25},
		},
	}
}
