package physics

import (
	"github.com/lixenwraith/hillclimb/vmath"
)

// Body is a Verlet point mass
// Velocity is implicit as Pos - Prev and is never stored
type Body struct {
	Pos    vmath.Vec2
	Prev   vmath.Vec2
	Radius float64 // Zero for point bodies (chassis), wheel radius for wheels
}

// NewBody creates a body at rest at pos
func NewBody(pos vmath.Vec2, radius float64) *Body {
	return &Body{Pos: pos, Prev: pos, Radius: radius}
}

// Integrate advances one Verlet step: v = (pos - prev) * damping; prev = pos; pos += v + gravity
// gravity is a per-tick displacement along +Y
func Integrate(b *Body, gravity, damping float64) {
	v := b.Pos.Sub(b.Prev).Mul(damping)
	b.Prev = b.Pos
	b.Pos = b.Pos.Add(v)
	b.Pos[1] += gravity
}

// Velocity returns the implicit per-tick velocity
func Velocity(b *Body) vmath.Vec2 {
	return b.Pos.Sub(b.Prev)
}

// Stop zeroes implicit velocity by collapsing history onto the current position
func Stop(b *Body) {
	b.Prev = b.Pos
}

// Displace moves the body without touching history, adding the displacement to implicit velocity
func Displace(b *Body, d vmath.Vec2) {
	b.Pos = b.Pos.Add(d)
}

// Teleport moves the body and its history together, preserving implicit velocity
func Teleport(b *Body, pos vmath.Vec2) {
	v := Velocity(b)
	b.Pos = pos
	b.Prev = pos.Sub(v)
}
