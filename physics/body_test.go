package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/hillclimb/vmath"
)

func TestIntegrate_FreeFallFromRest(t *testing.T) {
	b := NewBody(vmath.V2(0, 0), 0)

	Integrate(b, 0.5, 1.0)
	if b.Pos[1] != 0.5 || b.Prev[1] != 0 {
		t.Fatalf("first step: pos=%v prev=%v", b.Pos, b.Prev)
	}

	Integrate(b, 0.5, 1.0)
	// v = 0.5, pos = 0.5 + 0.5 + 0.5
	if b.Pos[1] != 1.5 {
		t.Errorf("second step: expected y=1.5, got %v", b.Pos[1])
	}
	if v := Velocity(b); v[1] != 1.0 {
		t.Errorf("expected implicit velocity 1.0, got %v", v[1])
	}
}

func TestIntegrate_DampingBleedsMomentum(t *testing.T) {
	b := &Body{Pos: vmath.V2(10, 0), Prev: vmath.V2(0, 0)}

	Integrate(b, 0, 0.9)
	if math.Abs(b.Pos[0]-19) > 1e-12 {
		t.Errorf("expected x=19, got %v", b.Pos[0])
	}
	if b.Prev[0] != 10 {
		t.Errorf("expected prev x=10, got %v", b.Prev[0])
	}
}

func TestStopAndTeleport(t *testing.T) {
	b := &Body{Pos: vmath.V2(5, 5), Prev: vmath.V2(3, 4)}

	Teleport(b, vmath.V2(100, 100))
	if v := Velocity(b); v != vmath.V2(2, 1) {
		t.Errorf("teleport must keep velocity, got %v", v)
	}

	Stop(b)
	if v := Velocity(b); v != (vmath.Vec2{}) {
		t.Errorf("stop must zero velocity, got %v", v)
	}
}
