package event

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestInputQueueCoalescesPerControl(t *testing.T) {
	q := NewInputQueue()
	q.Push(InputEvent{Control: ControlGas, Active: true})
	q.Push(InputEvent{Control: ControlNitro, Active: true})
	q.Push(InputEvent{Control: ControlGas, Active: false})

	if q.Len() != 2 {
		t.Errorf("Expected 2 changed controls, got %d", q.Len())
	}

	events := q.Consume()
	want := []InputEvent{{Control: ControlGas, Active: false}, {Control: ControlNitro, Active: true}}
	if len(events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}

	if again := q.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
	if q.Len() != 0 {
		t.Errorf("Expected nothing pending, got %d", q.Len())
	}
}

func TestInputQueueIgnoresUnknownControl(t *testing.T) {
	q := NewInputQueue()
	q.Push(InputEvent{Control: ControlCount, Active: true})
	q.Push(InputEvent{Control: Control(200), Active: true})
	if events := q.Consume(); len(events) != 0 {
		t.Errorf("Expected unknown controls dropped, got %v", events)
	}
}

func TestInputQueueReleaseSurvivesBurst(t *testing.T) {
	q := NewInputQueue()
	for range 10000 {
		q.Push(InputEvent{Control: ControlBrake, Active: true})
	}
	q.Push(InputEvent{Control: ControlBrake, Active: false})

	events := q.Consume()
	if len(events) != 1 || events[0].Active {
		t.Fatalf("Expected a single brake release, got %v", events)
	}
	t.Logf("✓ Release kept after 10000 presses")
}

func TestInputQueueConcurrent(t *testing.T) {
	q := NewInputQueue()
	const producers, each = 8, 500

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := range producers {
		go func(p int) {
			defer wg.Done()
			c := Control(p % int(ControlCount))
			for i := range each {
				q.Push(InputEvent{Control: c, Active: i%2 == 0})
			}
			// Every producer finishes released
			q.Push(InputEvent{Control: c, Active: false})
		}(p)
	}

	// Consumer drains while producers run
	var controls Controls
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		controls.Apply(q.Consume())
	}
	controls.Apply(q.Consume())

	if controls.Gas() || controls.Brake() || controls.Nitro() {
		t.Errorf("Expected every control released, got %+v", controls)
	}
}

func TestControlsApply(t *testing.T) {
	var c Controls
	c.Apply([]InputEvent{
		{Control: ControlGas, Active: true},
		{Control: ControlBrake, Active: true},
		{Control: ControlBrake, Active: false},
		{Control: Control(42), Active: true},
	})
	if !c.Gas() || c.Brake() || c.Nitro() {
		t.Errorf("Unexpected control state %+v", c)
	}
}

func TestParseControl(t *testing.T) {
	for _, c := range []Control{ControlGas, ControlBrake, ControlNitro} {
		got, err := ParseControl(c.String())
		if err != nil || got != c {
			t.Errorf("ParseControl(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseControl("horn"); err == nil {
		t.Error("Expected error for unknown control")
	}
}

func TestEventJSON(t *testing.T) {
	b, err := json.Marshal(Event{Kind: KindFrontFlip, Tick: 7, Value: 750})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"kind":"front_flip","tick":7,"value":750,"x":0}`; string(b) != want {
		t.Errorf("Expected %s, got %s", want, b)
	}
	var back Event
	if err := json.Unmarshal(b, &back); err != nil || back.Kind != KindFrontFlip {
		t.Errorf("Round trip failed: %+v %v", back, err)
	}
	var k Kind
	if err := k.UnmarshalText([]byte("warp")); err == nil {
		t.Error("Expected error for unknown kind name")
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("Unexpected name for unknown kind: %s", Kind(99))
	}
}
