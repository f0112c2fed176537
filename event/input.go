package event

import (
	"fmt"
	"strings"
)

// Control is a driver input channel
type Control uint8

const (
	ControlGas Control = iota
	ControlBrake
	ControlNitro
	ControlCount
)

func (c Control) String() string {
	switch c {
	case ControlGas:
		return "gas"
	case ControlBrake:
		return "brake"
	case ControlNitro:
		return "nitro"
	default:
		return "unknown"
	}
}

// ParseControl maps a control name to its Control
func ParseControl(s string) (Control, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gas":
		return ControlGas, nil
	case "brake":
		return ControlBrake, nil
	case "nitro":
		return ControlNitro, nil
	}
	return 0, fmt.Errorf("unknown control %q", s)
}

// InputEvent is a level change on one control
type InputEvent struct {
	Control Control
	Active  bool
}

// Controls is the level state of every control
type Controls [ControlCount]bool

// Apply folds events into the control state in order
func (c *Controls) Apply(events []InputEvent) {
	for _, e := range events {
		if e.Control < ControlCount {
			c[e.Control] = e.Active
		}
	}
}

func (c Controls) Gas() bool   { return c[ControlGas] }
func (c Controls) Brake() bool { return c[ControlBrake] }
func (c Controls) Nitro() bool { return c[ControlNitro] }
