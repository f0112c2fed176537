package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint reports a constraint that would make the solver diverge
var ErrInvalidConstraint = errors.New("invalid constraint")

// Constraint keeps two bodies at RestLength
// Stiffness 1 with Damping 0 is a rigid link; lower stiffness with damping is a spring
type Constraint struct {
	A, B       *Body
	RestLength float64
	Stiffness  float64 // [0, 1]
	Damping    float64 // [0, 1]
}

// NewConstraint validates and builds a constraint
func NewConstraint(a, b *Body, restLength, stiffness, damping float64) (*Constraint, error) {
	if a == nil || b == nil || a == b {
		return nil, fmt.Errorf("%w: needs two distinct bodies", ErrInvalidConstraint)
	}
	if !(restLength > 0) {
		return nil, fmt.Errorf("%w: rest length must be > 0, got %g", ErrInvalidConstraint, restLength)
	}
	if !(stiffness >= 0 && stiffness <= 1) {
		return nil, fmt.Errorf("%w: stiffness must be in [0,1], got %g", ErrInvalidConstraint, stiffness)
	}
	if !(damping >= 0 && damping <= 1) {
		return nil, fmt.Errorf("%w: damping must be in [0,1], got %g", ErrInvalidConstraint, damping)
	}
	return &Constraint{A: a, B: b, RestLength: restLength, Stiffness: stiffness, Damping: damping}, nil
}

// Satisfy runs one relaxation pass: each body moves half the correction, scaled by stiffness*(1-damping)
func Satisfy(c *Constraint) {
	d := c.A.Pos.Sub(c.B.Pos)
	dist := d.Len()
	if dist == 0 {
		// Coincident bodies have no direction to separate along
		return
	}
	k := c.Stiffness * (1 - c.Damping)
	diff := (c.RestLength - dist) / dist * k
	offset := d.Mul(diff * 0.5)
	c.A.Pos = c.A.Pos.Add(offset)
	c.B.Pos = c.B.Pos.Sub(offset)
}

// Deviation returns the signed deviation from rest length (positive = stretched)
func (c *Constraint) Deviation() float64 {
	return c.A.Pos.Sub(c.B.Pos).Len() - c.RestLength
}
