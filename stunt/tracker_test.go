package stunt

import (
	"math"
	"testing"

	"github.com/lixenwraith/hillclimb/vmath"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{Grounded, Airborne, true},
		{Airborne, Grounded, true},
		{Grounded, Grounded, false},
		{Airborne, Airborne, false},
		{State(9), Grounded, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestStateString(t *testing.T) {
	if Grounded.String() != "Grounded" || Airborne.String() != "Airborne" || State(7).String() != "Unknown" {
		t.Error("unexpected state names")
	}
	var s State
	if err := s.UnmarshalText([]byte("Airborne")); err != nil || s != Airborne {
		t.Errorf("decode Airborne: %v %v", s, err)
	}
	if err := s.UnmarshalText([]byte("Hovering")); err == nil {
		t.Error("expected error for unknown state")
	}
}

// spin feeds ticks airborne ticks of constant angular step starting from angle 0
func spin(tr *Tracker, ticks int, step float64) []Award {
	var awards []Award
	awards = append(awards, tr.Update(false, 0)...)
	for i := 1; i <= ticks; i++ {
		awards = append(awards, tr.Update(false, vmath.WrapAngle(float64(i)*step))...)
	}
	return awards
}

func flips(awards []Award) []Award {
	var out []Award
	for _, a := range awards {
		if a.Kind != AirTime {
			out = append(out, a)
		}
	}
	return out
}

func TestUpdate_SingleFlipForFullTurn(t *testing.T) {
	tr := NewTracker()
	awards := flips(spin(tr, 40, -2*math.Pi/40))

	if len(awards) != 1 {
		t.Fatalf("expected exactly one flip for 2π, got %d: %v", len(awards), awards)
	}
	if awards[0].Kind != FrontFlip || awards[0].Value != 750 {
		t.Errorf("expected front flip worth 750, got %+v", awards[0])
	}
	// Crossing lands at 1.8π, the remainder of the turn is left over
	if r := tr.Rotation(); r >= 0 || r < -0.25*math.Pi {
		t.Errorf("expected residual rotation in [-0.25π, 0), got %v", r)
	}
	t.Logf("✓ One flip credit, residual %.4f rad", tr.Rotation())
}

func TestUpdate_BackFlip(t *testing.T) {
	tr := NewTracker()
	awards := flips(spin(tr, 40, 2*math.Pi/40))
	if len(awards) != 1 || awards[0].Kind != BackFlip || awards[0].Value != 500 {
		t.Fatalf("expected single back flip worth 500, got %v", awards)
	}
}

func TestUpdate_MultipleFlipsInOneJump(t *testing.T) {
	tr := NewTracker()
	awards := flips(spin(tr, 80, 2*math.Pi/40))
	if len(awards) != 2 {
		t.Errorf("expected two flips for 4π, got %d", len(awards))
	}
}

func TestUpdate_LandingResets(t *testing.T) {
	tr := NewTracker()
	spin(tr, 30, 2*math.Pi/40)
	if tr.State() != Airborne || tr.Rotation() == 0 || tr.AirTicks() != 31 {
		t.Fatalf("unexpected airborne state: %s rot %v air %d", tr.State(), tr.Rotation(), tr.AirTicks())
	}

	if awards := tr.Update(true, 1.2); awards != nil {
		t.Errorf("landing produced awards %v", awards)
	}
	if tr.State() != Grounded || tr.Rotation() != 0 || tr.AirTicks() != 0 {
		t.Errorf("landing did not reset: %s rot %v air %d", tr.State(), tr.Rotation(), tr.AirTicks())
	}
	if tr.TotalAirTicks() != 31 {
		t.Errorf("run air time lost on landing: %d", tr.TotalAirTicks())
	}

	// A second short hop cannot finish the earlier partial rotation
	if a := flips(spin(tr, 20, 2*math.Pi/40)); len(a) != 0 {
		t.Errorf("partial rotations across hops combined into %v", a)
	}
}

func TestUpdate_GroundedRotationIgnored(t *testing.T) {
	tr := NewTracker()
	for i := range 200 {
		if a := tr.Update(true, vmath.WrapAngle(float64(i)*0.2)); a != nil {
			t.Fatalf("grounded tick %d produced %v", i, a)
		}
	}
}

func TestUpdate_AirTimeBonus(t *testing.T) {
	tr := NewTracker()
	var bonus int
	for range 150 {
		for _, a := range tr.Update(false, 0) {
			if a.Kind == AirTime {
				bonus += a.Value
			}
		}
	}
	if bonus != 100 {
		t.Errorf("expected two air-time bonuses (100) over 150 ticks, got %d", bonus)
	}
	if tr.TotalAirTicks() != 150 {
		t.Errorf("expected 150 air ticks, got %d", tr.TotalAirTicks())
	}
}
