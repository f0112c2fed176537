package collision

import (
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/physics"
	"github.com/lixenwraith/hillclimb/vmath"
)

// Ground is the heightfield surface bodies collide against
type Ground interface {
	HeightAt(x float64) float64
	Tangent(x float64) vmath.Vec2
}

// Drive is the per-tick traction input applied to a grounded wheel
type Drive struct {
	Gas      bool
	Brake    bool
	Fuel     float64
	Traction float64 // Displacement per tick along the surface tangent
}

// Resolver resolves wheel-terrain contact and head strikes for one run
type Resolver struct {
	ground    Ground
	limitX    float64
	tolerance float64
}

// NewResolver creates a resolver whose reverse limiter sits ReverseLimit behind startX
func NewResolver(ground Ground, startX float64) *Resolver {
	return &Resolver{
		ground:    ground,
		limitX:    startX - parameter.ReverseLimit,
		tolerance: parameter.HeadTolerance,
	}
}

// ReverseLimit returns the minimum x a wheel may reach
func (r *Resolver) ReverseLimit() float64 { return r.limitX }

// ResolveWheel snaps a penetrating wheel onto the surface and applies traction, reporting contact
// A wheel clear of the surface is left untouched
func (r *Resolver) ResolveWheel(b *physics.Body, d Drive) bool {
	gy := r.ground.HeightAt(b.Pos[0])
	if b.Pos[1]+b.Radius <= gy {
		r.limit(b)
		return false
	}

	if d.Fuel > 0 && d.Gas != d.Brake {
		// Forward component of the unit surface tangent
		push := r.ground.Tangent(b.Pos[0])[0] * d.Traction
		if d.Brake {
			push = -push
		}
		b.Pos[0] += push
	}
	r.limit(b)

	// Snap after traction so contact holds at the final x
	b.Pos[1] = r.ground.HeightAt(b.Pos[0]) - b.Radius
	return true
}

// limit clamps backward travel and kills implicit velocity at the limit
func (r *Resolver) limit(b *physics.Body) {
	if b.Pos[0] < r.limitX {
		b.Pos[0] = r.limitX
		physics.Stop(b)
	}
}

// HeadStrike reports whether head is below the surface by more than the grazing tolerance
func (r *Resolver) HeadStrike(head vmath.Vec2) bool {
	return head[1] > r.ground.HeightAt(head[0])+r.tolerance
}
