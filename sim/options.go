package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/vehicle"
)

// ErrInvalidOptions is returned by CreateRun for unusable run options
var ErrInvalidOptions = errors.New("invalid run options")

// InputSource delivers scripted or recorded input for a tick
// Poll is called once per tick before host input queued through SetInput
type InputSource interface {
	Poll(tick uint64) []event.InputEvent
}

// Options configures a run beyond its vehicle and stage
type Options struct {
	Seed       uint64
	ViewWidth  float64 // Host viewport width in world units, drives camera and generation windows
	StartX     float64
	Iterations int
	HeadMode   vehicle.HeadMode
	Source     InputSource // Optional
}

// DefaultOptions returns options for a seed-1 run with the standard viewport
func DefaultOptions() Options {
	return Options{
		Seed:       1,
		ViewWidth:  parameter.DefaultViewWidth,
		StartX:     parameter.DefaultStartX,
		Iterations: parameter.SolverIterations,
		HeadMode:   vehicle.HeadKinematic,
	}
}

// Validate rejects options that cannot drive a run
func (o Options) Validate() error {
	switch {
	case !(o.ViewWidth > 0) || math.IsInf(o.ViewWidth, 0):
		return fmt.Errorf("%w: view width must be > 0, got %g", ErrInvalidOptions, o.ViewWidth)
	case math.IsNaN(o.StartX) || math.IsInf(o.StartX, 0):
		return fmt.Errorf("%w: start x must be finite, got %g", ErrInvalidOptions, o.StartX)
	case o.Iterations < 1:
		return fmt.Errorf("%w: solver iterations must be >= 1, got %d", ErrInvalidOptions, o.Iterations)
	case o.HeadMode > vehicle.HeadSimulated:
		return fmt.Errorf("%w: unknown head mode %d", ErrInvalidOptions, o.HeadMode)
	}
	return nil
}

// Step is one scripted input at a tick
type Step struct {
	Tick  uint64
	Input event.InputEvent
}

// ScriptedInput replays a fixed input sequence
type ScriptedInput []Step

// Poll returns the inputs scheduled for tick in script order
func (s ScriptedInput) Poll(tick uint64) []event.InputEvent {
	var out []event.InputEvent
	for _, st := range s {
		if st.Tick == tick {
			out = append(out, st.Input)
		}
	}
	return out
}

// Hold scripts control held from tick from until released at tick until
func Hold(c event.Control, from, until uint64) ScriptedInput {
	return ScriptedInput{
		{Tick: from, Input: event.InputEvent{Control: c, Active: true}},
		{Tick: until, Input: event.InputEvent{Control: c, Active: false}},
	}
}
