package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
)

// Cues plays short tones for simulation events and an optional engine hum
// Every method is a no-op until Initialize succeeds, so hosts run silently without a device
type Cues struct {
	mu          sync.Mutex
	cfg         *Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	engine      *EngineGenerator
	engineCtrl  *beep.Ctrl
	initialized bool
}

// NewCues creates a cue player; nil cfg uses DefaultConfig
func NewCues(cfg *Config) *Cues {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sr := beep.SampleRate(cfg.SampleRate)
	return &Cues{
		cfg:   cfg,
		sr:    sr,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(c.sr, c.sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	if c.cfg.Engine {
		c.engine = NewEngineGenerator(c.sr)
		c.engineCtrl = &beep.Ctrl{Streamer: newVolume(c.engine, parameter.EngineVolume), Paused: true}
		c.mixer.Add(c.engineCtrl)
	}

	speaker.Play(newVolume(c.mixer, c.cfg.MasterVolume))
	c.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Play queues one cue per event
func (c *Cues) Play(events []event.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || len(events) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, e := range events {
		if s := cueFor(e.Kind, c.sr); s != nil {
			c.mixer.Add(s)
		}
	}
}

// Throttle sets engine hum pitch; silent once the run has ended
func (c *Cues) Throttle(gas, nitro, running bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.engine == nil {
		return
	}

	level := 0.0
	if gas {
		level = 0.6
	}
	if nitro {
		level = 1
	}

	speaker.Lock()
	c.engine.throttle = level
	c.engineCtrl.Paused = !running
	speaker.Unlock()
}

// cueFor maps an event to a finite streamer, nil for silent kinds
func cueFor(kind event.Kind, sr beep.SampleRate) beep.Streamer {
	switch kind {
	case event.KindCoinCollected:
		return beep.Seq(tone(sr, 1320, sr.N(parameter.CoinCueNote1)), tone(sr, 1760, sr.N(parameter.CoinCueNote2)))
	case event.KindFuelCollected:
		return NewSweepGenerator(sr, 300, 900, parameter.FuelCueLength)
	case event.KindFrontFlip:
		return NewSweepGenerator(sr, 400, 1200, parameter.FlipCueLength)
	case event.KindBackFlip:
		return NewSweepGenerator(sr, 1200, 400, parameter.FlipCueLength)
	case event.KindAirTime:
		return tone(sr, 990, sr.N(parameter.AirCueLength))
	case event.KindDifficultyUp:
		return NewSweepGenerator(sr, 220, 160, parameter.StepCueLength)
	case event.KindRunEnded:
		return NewCrashGenerator(sr, parameter.CrashCueLength)
	}
	return nil
}

func tone(sr beep.SampleRate, freq float64, n int) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// Frequency above Nyquist
		return beep.Silence(n)
	}
	return newVolume(beep.Take(n, sine), 0.3)
}

// newVolume wraps s at a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
