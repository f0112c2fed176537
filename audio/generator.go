package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hillclimb/parameter"
)

// SweepGenerator glides a sine from one frequency to another over its length
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep of the given duration
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: max(sr.N(d), 1)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		p := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Triangle envelope
		env := 1 - math.Abs(2*p-1)
		sample := 0.3 * env * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// EngineGenerator is a looping low hum whose pitch follows the throttle
type EngineGenerator struct {
	sr       beep.SampleRate
	phase    float64
	throttle float64 // Written by the host between buffers, read by the speaker goroutine under speaker.Lock
}

// NewEngineGenerator creates an idle engine hum
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	return &EngineGenerator{sr: sr}
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := parameter.EngineIdleFreq + (parameter.EngineRevFreq-parameter.EngineIdleFreq)*g.throttle
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Square-ish with a second harmonic for grit
		sample := 0.6*math.Tanh(3*math.Sin(g.phase)) + 0.2*math.Sin(2*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// CrashGenerator generates a decaying noise burst with low rumble
type CrashGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	seed    uint32
}

// NewCrashGenerator creates a crash of the given duration
func NewCrashGenerator(sr beep.SampleRate, d time.Duration) *CrashGenerator {
	return &CrashGenerator{sr: sr, samples: max(sr.N(d), 1), seed: 0x9e3779b9}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
