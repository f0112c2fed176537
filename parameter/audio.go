package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency; one buffer spans a few ticks
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue durations
const (
	CoinCueNote1   = 60 * time.Millisecond
	CoinCueNote2   = 160 * time.Millisecond
	FuelCueLength  = 250 * time.Millisecond
	FlipCueLength  = 350 * time.Millisecond
	AirCueLength   = 80 * time.Millisecond
	StepCueLength  = 200 * time.Millisecond
	CrashCueLength = 600 * time.Millisecond
)

// Engine hum
const (
	EngineIdleFreq = 55.0 // Hz
	EngineRevFreq  = 95.0 // Hz at full throttle
	EngineVolume   = 0.08
)
