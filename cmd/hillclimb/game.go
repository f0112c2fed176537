package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hillclimb/audio"
	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/render"
	"github.com/lixenwraith/hillclimb/sim"
	"github.com/lixenwraith/hillclimb/stream"
)

// game is the terminal host around one simulation at a time
type game struct {
	vehicle catalog.VehicleSpec
	stage   catalog.StageSpec
	opts    sim.Options

	run  *sim.Simulation
	keys *latch

	screen     tcell.Screen
	view       *render.Terminal
	cues       *audio.Cues    // Optional
	spectators *stream.Server // Optional
}

// restart begins a fresh run; later runs advance the seed
func (g *game) restart() error {
	if g.run != nil {
		g.opts.Seed++
	}
	run, err := sim.CreateRun(g.vehicle, g.stage, g.opts)
	if err != nil {
		return err
	}
	g.run = run
	g.keys.reset()
	log.Printf("run %s: vehicle=%s stage=%s seed=%d", run.RunID(), g.vehicle.ID, g.stage.ID, g.opts.Seed)
	return nil
}

// handleKey applies one key event; returns false to quit
func (g *game) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
		if err := g.restart(); err != nil {
			log.Printf("restart failed: %v", err)
		}
		return true
	}

	if c, ok := controlFor(ev); ok && !g.run.Ended() {
		if g.keys.press(c, now) {
			g.run.SetInput(c, true)
		}
	}
	return true
}

// step advances one tick and presents the result
func (g *game) step(now time.Time) {
	for _, c := range g.keys.expire(now) {
		g.run.SetInput(c, false)
	}

	r := g.run.Tick()
	for _, e := range r.Events {
		log.Printf("tick %d: %s value=%d x=%.1f", e.Tick, e.Kind, e.Value, e.X)
	}
	if r.Terminal != nil && len(r.Events) > 0 {
		rep := r.Terminal
		log.Printf("run %s ended: %s distance=%.1fm coins=%d air=%.1fs", rep.RunID, rep.Cause, rep.FinalDistance, rep.FinalCoins, rep.AirTimeSeconds)
	}

	if g.cues != nil {
		g.cues.Play(r.Events)
		g.cues.Throttle(g.keys.held(event.ControlGas), g.keys.held(event.ControlNitro), r.Terminal == nil)
	}

	snap := g.run.Snapshot()
	g.view.Draw(snap)

	if g.spectators != nil {
		if _, err := g.spectators.Publish(snap, r.Events); err != nil {
			log.Printf("stream publish: %v", err)
		}
	}
}

func (g *game) loop() {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.step(now)
		}
	}
}
