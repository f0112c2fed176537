package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/hillclimb/vmath"
)

func TestNewConstraint_Validation(t *testing.T) {
	a := NewBody(vmath.V2(0, 0), 0)
	b := NewBody(vmath.V2(10, 0), 0)

	tests := []struct {
		name                 string
		a, b                 *Body
		rest, stiff, damping float64
		wantErr              bool
	}{
		{"rigid", a, b, 10, 1, 0, false},
		{"spring", a, b, 10, 0.3, 0.6, false},
		{"stiffness above one", a, b, 10, 1.2, 0, true},
		{"negative damping", a, b, 10, 0.5, -0.1, true},
		{"damping above one", a, b, 10, 0.5, 1.5, true},
		{"zero rest length", a, b, 0, 1, 0, true},
		{"nan stiffness", a, b, 10, math.NaN(), 0, true},
		{"same body", a, a, 10, 1, 0, true},
		{"nil body", a, nil, 10, 1, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConstraint(tc.a, tc.b, tc.rest, tc.stiff, tc.damping)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConstraint) {
					t.Errorf("expected ErrInvalidConstraint, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSatisfy_RigidLinkRestoresLength(t *testing.T) {
	a := NewBody(vmath.V2(0, 0), 0)
	b := NewBody(vmath.V2(20, 0), 0)
	c, err := NewConstraint(a, b, 10, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	Satisfy(c)

	if math.Abs(c.Deviation()) > 1e-9 {
		t.Errorf("rigid link should converge in one pass, deviation %v", c.Deviation())
	}
	// Symmetric correction
	if a.Pos[0] != 5 || b.Pos[0] != 15 {
		t.Errorf("expected bodies at 5 and 15, got %v and %v", a.Pos[0], b.Pos[0])
	}
}

func TestSatisfy_SpringIsPartial(t *testing.T) {
	a := NewBody(vmath.V2(0, 0), 0)
	b := NewBody(vmath.V2(20, 0), 0)
	c, _ := NewConstraint(a, b, 10, 0.5, 0.5)

	Satisfy(c)

	// k = 0.25, correction = 10 * 0.25 = 2.5 total
	if got := c.Deviation(); math.Abs(got-7.5) > 1e-9 {
		t.Errorf("expected deviation 7.5 after one pass, got %v", got)
	}
}

func TestSatisfy_CoincidentBodiesIgnored(t *testing.T) {
	a := NewBody(vmath.V2(3, 3), 0)
	b := NewBody(vmath.V2(3, 3), 0)
	c, _ := NewConstraint(a, b, 10, 1, 0)

	Satisfy(c)

	if math.IsNaN(a.Pos[0]) || math.IsNaN(b.Pos[0]) {
		t.Fatal("coincident bodies produced NaN")
	}
}

func TestSolver_IterationsTightenSpring(t *testing.T) {
	single := func(iter int) float64 {
		a := NewBody(vmath.V2(0, 0), 0)
		b := NewBody(vmath.V2(20, 0), 0)
		c, _ := NewConstraint(a, b, 10, 0.3, 0.6)
		s := NewSolver(iter)
		s.Add(c)
		s.Solve()
		return math.Abs(c.Deviation())
	}

	one, eight := single(1), single(8)
	if !(eight < one) {
		t.Errorf("more iterations should reduce deviation: 1 -> %v, 8 -> %v", one, eight)
	}
	if NewSolver(0).Iterations != 1 {
		t.Error("solver must run at least one iteration")
	}
}
