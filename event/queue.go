package event

import "sync/atomic"

// Slot bits for one control
const (
	slotActive uint32 = 1 << iota // Latest level
	slotDirty                     // Level changed since last Consume
)

// InputQueue carries control levels from any goroutine to the tick loop
// Each control keeps only its most recent level, so bursts cannot overflow and a release is never lost
// A press and release landing between two ticks coalesce to the release
type InputQueue struct {
	slots [ControlCount]atomic.Uint32
}

func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push records the latest level for a control; unknown controls are ignored
func (q *InputQueue) Push(ev InputEvent) {
	if ev.Control >= ControlCount {
		return
	}
	v := slotDirty
	if ev.Active {
		v |= slotActive
	}
	q.slots[ev.Control].Store(v)
}

// Consume returns one event per changed control in control order and clears the change marks
// Single consumer
func (q *InputQueue) Consume() []InputEvent {
	var out []InputEvent
	for c := range q.slots {
		slot := &q.slots[c]
		for {
			v := slot.Load()
			if v&slotDirty == 0 {
				break
			}
			// A concurrent Push between Load and CAS retries with the newer level
			if slot.CompareAndSwap(v, v&^slotDirty) {
				out = append(out, InputEvent{Control: Control(c), Active: v&slotActive != 0})
				break
			}
		}
	}
	return out
}

// Len returns the number of controls with an unconsumed change
func (q *InputQueue) Len() int {
	n := 0
	for c := range q.slots {
		if q.slots[c].Load()&slotDirty != 0 {
			n++
		}
	}
	return n
}
