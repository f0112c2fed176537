package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/hillclimb/parameter"
)

// Config controls cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	Engine       bool    // Continuous throttle hum
	SampleRate   int
}

// DefaultConfig returns enabled playback at 70% volume with engine hum
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.7,
		Engine:       true,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadConfig overlays environment variables on DefaultConfig
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("HILLCLIMB_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100
	if volume := os.Getenv("HILLCLIMB_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if engine := os.Getenv("HILLCLIMB_ENGINE_HUM"); engine != "" {
		if val, err := strconv.ParseBool(engine); err == nil {
			cfg.Engine = val
		}
	}

	if sampleRate := os.Getenv("HILLCLIMB_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
