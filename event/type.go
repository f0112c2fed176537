package event

import "fmt"

// Kind represents the type of simulation event
type Kind int

const (
	// KindCoinCollected fires when the chassis consumes a coin
	// Value: coin denomination
	KindCoinCollected Kind = iota

	// KindFuelCollected fires when the chassis consumes a fuel can
	// Value: fuel refilled
	KindFuelCollected

	// KindFrontFlip fires on each nose-up full rotation while airborne
	// Value: bonus coins
	KindFrontFlip

	// KindBackFlip fires on each nose-down full rotation while airborne
	// Value: bonus coins
	KindBackFlip

	// KindAirTime fires once per full second of continuous air time
	// Value: bonus coins
	KindAirTime

	// KindDifficultyUp fires when terrain generation crosses a difficulty step
	// Value: steps crossed this tick
	KindDifficultyUp

	// KindRunEnded fires once on the terminal tick
	KindRunEnded
)

var kindNames = [...]string{
	KindCoinCollected: "coin",
	KindFuelCollected: "fuel",
	KindFrontFlip:     "front_flip",
	KindBackFlip:      "back_flip",
	KindAirTime:       "air_time",
	KindDifficultyUp:  "difficulty_up",
	KindRunEnded:      "run_ended",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name for JSON frames
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", string(b))
}

// Event is a discrete occurrence reported by a tick
type Event struct {
	Kind  Kind    `json:"kind"`
	Tick  uint64  `json:"tick"`
	Value int     `json:"value,omitempty"`
	X     float64 `json:"x"` // World x where the event happened
}
