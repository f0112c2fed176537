package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hillclimb/event"
)

// drain streams s to completion and returns the sample count, failing past limit
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > 1 || smp[0] < -1 {
				t.Fatalf("sample out of range: %v", smp[0])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("streamer did not end within %d samples", limit)
		}
	}
}

func TestCueFor_EveryKindIsFinite(t *testing.T) {
	sr := beep.SampleRate(44100)
	kinds := []event.Kind{
		event.KindCoinCollected, event.KindFuelCollected, event.KindFrontFlip, event.KindBackFlip,
		event.KindAirTime, event.KindDifficultyUp, event.KindRunEnded,
	}
	for _, k := range kinds {
		s := cueFor(k, sr)
		if s == nil {
			t.Errorf("%s: no cue", k)
			continue
		}
		n := drain(t, s, sr.N(time.Second))
		if n == 0 {
			t.Errorf("%s: empty cue", k)
		}
	}
	if cueFor(event.Kind(99), sr) != nil {
		t.Error("unknown kind should be silent")
	}
}

func TestSweepGenerator_Length(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewSweepGenerator(sr, 100, 200, 250*time.Millisecond)
	if n := drain(t, g, 10000); n != 2000 {
		t.Errorf("expected 2000 samples, got %d", n)
	}
}

func TestEngineGenerator_Loops(t *testing.T) {
	g := NewEngineGenerator(beep.SampleRate(8000))
	g.throttle = 1
	buf := make([][2]float64, 256)
	for range 100 {
		if n, ok := g.Stream(buf); n != len(buf) || !ok {
			t.Fatal("engine hum must never end")
		}
	}
}

// TestCuesGracefulDegradation verifies cue operations don't panic when not initialized
func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	c.Play([]event.Event{{Kind: event.KindCoinCollected}})
	c.Throttle(true, true, true)
	c.Cleanup()
}

func TestCuesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewCues(cfg)
	if err := c.Initialize(); err != nil {
		t.Fatalf("disabled cues should not touch the device: %v", err)
	}
	if c.initialized {
		t.Error("disabled cues reported initialized")
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("HILLCLIMB_AUDIO_ENABLED", "false")
	t.Setenv("HILLCLIMB_MASTER_VOLUME", "150")
	t.Setenv("HILLCLIMB_ENGINE_HUM", "0")
	t.Setenv("HILLCLIMB_SAMPLE_RATE", "-5")

	cfg := LoadConfig()
	if cfg.Enabled || cfg.Engine {
		t.Errorf("expected audio and hum disabled, got %+v", cfg)
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("expected volume clamped to 1, got %v", cfg.MasterVolume)
	}
	if cfg.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("invalid sample rate accepted: %d", cfg.SampleRate)
	}
}
