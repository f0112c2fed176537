package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/hillclimb/parameter"
)

// ErrInvalidConfig reports a terrain configuration that cannot generate a valid heightfield
var ErrInvalidConfig = errors.New("invalid terrain config")

// Config parameterizes heightfield generation
type Config struct {
	SegmentWidth float64 // Horizontal sample spacing, > 0
	StartX       float64 // X of the first sample
	Baseline     float64 // Flat ground height (+Y down)
	SafeZone     int     // Leading samples forced flat
	Blend        int     // Samples over which amplitude ramps in after the safe zone
	Roughness    float64 // Primary wave amplitude, 0 = flat world
	Frequency    float64 // Primary wave angular frequency per world unit
	Difficulty   bool    // Scale amplitude and frequency with generated distance
	Collectibles bool    // Spawn coins and fuel cans
	Initial      int     // Samples generated up front, >= 2
	Seed         uint64
}

// DefaultConfig returns the countryside profile
func DefaultConfig() Config {
	return Config{
		SegmentWidth: parameter.DefaultSegmentWidth,
		StartX:       0,
		Baseline:     parameter.DefaultBaseline,
		SafeZone:     parameter.SafeZoneSamples,
		Blend:        parameter.BlendSamples,
		Roughness:    80,
		Frequency:    0.005,
		Difficulty:   true,
		Collectibles: true,
		Initial:      parameter.InitialSamples,
		Seed:         1,
	}
}

// Validate checks generation invariants
func (c Config) Validate() error {
	switch {
	case !(c.SegmentWidth > 0) || math.IsInf(c.SegmentWidth, 0):
		return fmt.Errorf("%w: segment width must be a positive finite spacing, got %g", ErrInvalidConfig, c.SegmentWidth)
	case math.IsNaN(c.StartX) || math.IsInf(c.StartX, 0):
		return fmt.Errorf("%w: start x must be finite", ErrInvalidConfig)
	case math.IsNaN(c.Baseline) || math.IsInf(c.Baseline, 0):
		return fmt.Errorf("%w: baseline must be finite", ErrInvalidConfig)
	case c.SafeZone < 2:
		return fmt.Errorf("%w: safe zone must cover at least 2 samples, got %d", ErrInvalidConfig, c.SafeZone)
	case c.Blend < 1:
		return fmt.Errorf("%w: blend must be >= 1, got %d", ErrInvalidConfig, c.Blend)
	case !(c.Roughness >= 0) || math.IsInf(c.Roughness, 0):
		return fmt.Errorf("%w: roughness must be >= 0, got %g", ErrInvalidConfig, c.Roughness)
	case !(c.Frequency >= 0) || math.IsInf(c.Frequency, 0):
		return fmt.Errorf("%w: frequency must be >= 0, got %g", ErrInvalidConfig, c.Frequency)
	case c.Initial < 2:
		return fmt.Errorf("%w: initial sample count must be >= 2, got %d", ErrInvalidConfig, c.Initial)
	}
	return nil
}
