package parameter

// Terrain generation
const (
	// DefaultSegmentWidth is the horizontal spacing between samples
	DefaultSegmentWidth = 20.0

	// DefaultBaseline is the flat ground height (+Y down)
	DefaultBaseline = 480.0

	// SafeZoneSamples is the count of forced-flat samples at run start
	SafeZoneSamples = 30

	// BlendSamples is the count of samples over which hill amplitude ramps in after the safe zone
	BlendSamples = 20

	// InitialSamples is the count of samples generated at run start
	InitialSamples = 120

	// DifficultyInterval is the generated distance (world units) between difficulty steps
	DifficultyInterval = 2500.0

	// DifficultyStep multiplies amplitude and frequency at each difficulty step
	DifficultyStep = 1.05

	// DifficultyMaxScale caps the accumulated difficulty multiplier
	DifficultyMaxScale = 3.0
)

// Secondary sine waves relative to the primary wave
const (
	SecondWaveFreq = 2.5
	SecondWaveAmp  = 0.5
	ThirdWaveFreq  = 5.3
	ThirdWaveAmp   = 0.15
)
