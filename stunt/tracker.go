package stunt

import (
	"math"

	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/vmath"
)

// AwardKind identifies a stunt reward
type AwardKind uint8

const (
	FrontFlip AwardKind = iota
	BackFlip
	AirTime
)

func (k AwardKind) String() string {
	switch k {
	case FrontFlip:
		return "FrontFlip"
	case BackFlip:
		return "BackFlip"
	case AirTime:
		return "AirTime"
	default:
		return "Unknown"
	}
}

// Award is a stunt credit earned on one tick
type Award struct {
	Kind  AwardKind
	Value int
}

// Tracker accumulates airborne rotation and air time
// Negative rotation is nose-up, the way gas pitches the rig, and credits front flips
type Tracker struct {
	state     State
	lastAngle float64
	rotation  float64
	airTicks  int
	totalAir  int
}

// NewTracker returns a grounded tracker
func NewTracker() *Tracker {
	return &Tracker{state: Grounded}
}

// State returns the current phase
func (t *Tracker) State() State { return t.state }

// Rotation returns rotation accumulated since takeoff or the last flip credit
func (t *Tracker) Rotation() float64 { return t.rotation }

// AirTicks returns ticks in the current airborne period
func (t *Tracker) AirTicks() int { return t.airTicks }

// TotalAirTicks returns airborne ticks over the whole run
func (t *Tracker) TotalAirTicks() int { return t.totalAir }

// transition moves to a new state, resetting counters on entry to either state
func (t *Tracker) transition(to State, angle float64) {
	if !CanTransition(t.state, to) {
		return
	}
	t.state = to
	t.rotation = 0
	t.airTicks = 0
	t.lastAngle = angle
}

// Update feeds one tick of contact state and chassis angle, returning any awards earned
func (t *Tracker) Update(grounded bool, angle float64) []Award {
	if grounded {
		t.transition(Grounded, angle)
		t.lastAngle = angle
		return nil
	}

	var awards []Award
	if t.state == Grounded {
		t.transition(Airborne, angle)
	} else {
		t.rotation += vmath.WrapAngle(angle - t.lastAngle)
		t.lastAngle = angle
	}

	if math.Abs(t.rotation) > parameter.FlipThreshold {
		if t.rotation < 0 {
			awards = append(awards, Award{Kind: FrontFlip, Value: parameter.FrontFlipReward})
		} else {
			awards = append(awards, Award{Kind: BackFlip, Value: parameter.BackFlipReward})
		}
		t.rotation = 0
	}

	t.airTicks++
	t.totalAir++
	if t.airTicks%parameter.TickRate == 0 {
		awards = append(awards, Award{Kind: AirTime, Value: parameter.AirTimeReward})
	}
	return awards
}
