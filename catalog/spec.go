package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/terrain"
)

var (
	// ErrInvalidSpec marks a vehicle or stage record that must not start a run
	ErrInvalidSpec    = errors.New("invalid spec")
	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrUnknownStage   = errors.New("unknown stage")
)

// Upgrades are garage tuning levels applied on top of a vehicle's base numbers
type Upgrades struct {
	Engine     int `toml:"engine" json:"engine"`
	Suspension int `toml:"suspension" json:"suspension"`
}

// VehicleSpec is an immutable vehicle record
type VehicleSpec struct {
	ID                  VehicleID `toml:"id" json:"id"`
	Name                string    `toml:"name" json:"name"`
	Power               float64   `toml:"power" json:"power"`
	Mass                float64   `toml:"mass" json:"mass"`
	WheelRadius         float64   `toml:"wheel_radius" json:"wheel_radius"`
	Wheelbase           float64   `toml:"wheelbase" json:"wheelbase"`
	SuspensionLength    float64   `toml:"suspension_length" json:"suspension_length"`
	SuspensionStiffness float64   `toml:"suspension_stiffness" json:"suspension_stiffness"`
	SuspensionDamping   float64   `toml:"suspension_damping" json:"suspension_damping"`
	HeadOffset          float64   `toml:"head_offset" json:"head_offset"`
	Upgrades            Upgrades  `toml:"upgrades" json:"upgrades"`
}

// EffectivePower returns power scaled by the engine upgrade
func (v VehicleSpec) EffectivePower() float64 {
	return v.Power * (1 + parameter.UpgradeStep*float64(v.Upgrades.Engine))
}

// EffectiveStiffness returns suspension stiffness scaled by the suspension upgrade, capped at rigid
func (v VehicleSpec) EffectiveStiffness() float64 {
	return math.Min(1, v.SuspensionStiffness*(1+parameter.UpgradeStep*float64(v.Upgrades.Suspension)))
}

// RideHeight returns the rest height of the chassis above the wheel axle line
func (v VehicleSpec) RideHeight() float64 {
	half := v.Wheelbase / 2
	return math.Sqrt(v.SuspensionLength*v.SuspensionLength - half*half)
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

func unit(x float64) bool { return x >= 0 && x <= 1 }

// Validate rejects records that would unbalance or destabilize the simulation
func (v VehicleSpec) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: vehicle %q: %s", ErrInvalidSpec, v.ID, fmt.Sprintf(format, args...))
	}
	switch {
	case !v.ID.Valid():
		return fmt.Errorf("%w: %q", ErrUnknownVehicle, v.ID)
	case !positive(v.Power):
		return fail("power must be > 0, got %g", v.Power)
	case !positive(v.Mass):
		return fail("mass must be > 0, got %g", v.Mass)
	case !positive(v.WheelRadius):
		return fail("wheel radius must be > 0, got %g", v.WheelRadius)
	case !positive(v.Wheelbase):
		return fail("wheelbase must be > 0, got %g", v.Wheelbase)
	case !positive(v.SuspensionLength):
		return fail("suspension length must be > 0, got %g", v.SuspensionLength)
	case v.Wheelbase/2 >= v.SuspensionLength:
		return fail("suspension length %g cannot reach wheels %g apart", v.SuspensionLength, v.Wheelbase)
	case !unit(v.SuspensionStiffness) || v.SuspensionStiffness == 0:
		return fail("suspension stiffness must be in (0,1], got %g", v.SuspensionStiffness)
	case !unit(v.SuspensionDamping) || v.SuspensionDamping == 1:
		return fail("suspension damping must be in [0,1), got %g", v.SuspensionDamping)
	case !positive(v.HeadOffset):
		return fail("head offset must be > 0, got %g", v.HeadOffset)
	case v.Upgrades.Engine < 0 || v.Upgrades.Engine > parameter.MaxUpgradeLevel:
		return fail("engine upgrade must be in [0,%d], got %d", parameter.MaxUpgradeLevel, v.Upgrades.Engine)
	case v.Upgrades.Suspension < 0 || v.Upgrades.Suspension > parameter.MaxUpgradeLevel:
		return fail("suspension upgrade must be in [0,%d], got %d", parameter.MaxUpgradeLevel, v.Upgrades.Suspension)
	}
	return nil
}

// StageSpec is an immutable stage record
type StageSpec struct {
	ID           StageID `toml:"id" json:"id"`
	Name         string  `toml:"name" json:"name"`
	Gravity      float64 `toml:"gravity" json:"gravity"`     // Per-tick downward displacement
	Friction     float64 `toml:"friction" json:"friction"`   // Verlet damping, (0,1]
	Roughness    float64 `toml:"roughness" json:"roughness"` // Hill amplitude
	Frequency    float64 `toml:"frequency" json:"frequency"` // Hill angular frequency per world unit
	SegmentWidth float64 `toml:"segment_width" json:"segment_width"`
	Difficulty   bool    `toml:"difficulty" json:"difficulty"`
}

// Validate rejects stage records that cannot produce a playable world
func (s StageSpec) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: stage %q: %s", ErrInvalidSpec, s.ID, fmt.Sprintf(format, args...))
	}
	switch {
	case !s.ID.Valid():
		return fmt.Errorf("%w: %q", ErrUnknownStage, s.ID)
	case !(s.Gravity >= 0) || math.IsInf(s.Gravity, 0):
		return fail("gravity must be >= 0, got %g", s.Gravity)
	case !(s.Friction > 0 && s.Friction <= 1):
		return fail("friction must be in (0,1], got %g", s.Friction)
	case !(s.Roughness >= 0) || math.IsInf(s.Roughness, 0):
		return fail("roughness must be >= 0, got %g", s.Roughness)
	case !(s.Frequency >= 0) || math.IsInf(s.Frequency, 0):
		return fail("frequency must be >= 0, got %g", s.Frequency)
	case !positive(s.SegmentWidth):
		return fail("segment width must be > 0, got %g", s.SegmentWidth)
	}
	return nil
}

// Terrain derives the heightfield configuration for a run on this stage
func (s StageSpec) Terrain(seed uint64) terrain.Config {
	cfg := terrain.DefaultConfig()
	cfg.SegmentWidth = s.SegmentWidth
	cfg.Roughness = s.Roughness
	cfg.Frequency = s.Frequency
	cfg.Difficulty = s.Difficulty
	cfg.Seed = seed
	return cfg
}
