package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the world-space vector shared by every simulation package
// World space is screen-oriented: +X is forward travel, +Y points down
type Vec2 = mgl64.Vec2

// V2 builds a Vec2 from components
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Rotate rotates v counter-clockwise (in +Y-down space: clockwise on screen) by angle radians
func Rotate(v Vec2, angle float64) Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// RotateAbout rotates p about pivot by angle radians
func RotateAbout(p, pivot Vec2, angle float64) Vec2 {
	return Rotate(p.Sub(pivot), angle).Add(pivot)
}

// Normalize returns the unit vector of v, zero-safe
// mgl64.Vec2.Normalize yields NaN for the zero vector
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Heading returns the angle of the vector pointing from -> to
func Heading(from, to Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d[1], d[0])
}

// WrapAngle folds an angle (or angle delta) into [-π, π]
func WrapAngle(a float64) float64 {
	if a > math.Pi || a < -math.Pi {
		a = math.Remainder(a, 2*math.Pi)
	}
	return a
}

// Lerp linearly interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSq returns squared distance between a and b
func DistSq(a, b Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
