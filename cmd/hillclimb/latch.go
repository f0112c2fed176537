package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hillclimb/event"
)

// keyQuiet is how long a control stays held after its last key repeat
// Terminals report presses and auto-repeats but never releases
const keyQuiet = 600 * time.Millisecond

// latch turns key repeats into held control levels
type latch struct {
	quiet  time.Duration
	active [event.ControlCount]bool
	last   [event.ControlCount]time.Time
}

func newLatch(quiet time.Duration) *latch {
	return &latch{quiet: quiet}
}

// press refreshes c; returns true when c was not already held
func (l *latch) press(c event.Control, now time.Time) bool {
	l.last[c] = now
	if l.active[c] {
		return false
	}
	l.active[c] = true
	return true
}

// expire releases controls idle longer than the quiet period
func (l *latch) expire(now time.Time) []event.Control {
	var released []event.Control
	for c := event.Control(0); c < event.ControlCount; c++ {
		if l.active[c] && now.Sub(l.last[c]) > l.quiet {
			l.active[c] = false
			released = append(released, c)
		}
	}
	return released
}

// reset releases everything without reporting
func (l *latch) reset() {
	l.active = [event.ControlCount]bool{}
}

func (l *latch) held(c event.Control) bool {
	return l.active[c]
}

// controlFor maps racing keys to controls
func controlFor(ev *tcell.EventKey) (event.Control, bool) {
	switch ev.Key() {
	case tcell.KeyRight:
		return event.ControlGas, true
	case tcell.KeyLeft:
		return event.ControlBrake, true
	case tcell.KeyUp:
		return event.ControlNitro, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'l':
			return event.ControlGas, true
		case 'a', 'h':
			return event.ControlBrake, true
		case 'w', 'k', ' ':
			return event.ControlNitro, true
		}
	}
	return 0, false
}
