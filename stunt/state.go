package stunt

import "fmt"

// State is the airborne phase of the vehicle
type State uint8

const (
	Grounded State = iota
	Airborne
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	validTransitions := map[State][]State{
		Grounded: {Airborne},
		Airborne: {Grounded},
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// MarshalText encodes the state by name for JSON frames
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Grounded":
		*s = Grounded
	case "Airborne":
		*s = Airborne
	default:
		return fmt.Errorf("unknown stunt state %q", string(b))
	}
	return nil
}
