package vmath

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b Vec2) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"quarter", V2(1, 0), math.Pi / 2, V2(0, 1)},
		{"half", V2(0, -25), math.Pi, V2(0, 25)},
		{"negative quarter", V2(1, 0), -math.Pi / 2, V2(0, -1)},
		{"zero", V2(3, 4), 0, V2(3, 4)},
	}
	for _, tc := range tests {
		if got := Rotate(tc.v, tc.angle); !near(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	p := RotateAbout(V2(12, 5), V2(10, 5), math.Pi/2)
	if !near(p, V2(10, 7)) {
		t.Errorf("RotateAbout: got %v", p)
	}
}

func TestHeadingAndWrap(t *testing.T) {
	if h := Heading(V2(0, 0), V2(0, 1)); math.Abs(h-math.Pi/2) > eps {
		t.Errorf("Heading down: got %v", h)
	}
	for _, tc := range []struct{ in, want float64 }{
		{0.5, 0.5},
		{math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 0.25, 0.25},
	} {
		if got := WrapAngle(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeZeroSafe(t *testing.T) {
	if n := Normalize(Vec2{}); n != (Vec2{}) {
		t.Errorf("zero vector normalized to %v", n)
	}
	if n := Normalize(V2(3, 4)); !near(n, V2(0.6, 0.8)) {
		t.Errorf("got %v", n)
	}
	if d := DistSq(V2(1, 1), V2(4, 5)); d != 25 {
		t.Errorf("DistSq = %v", d)
	}
	if Lerp(10, 20, 0.25) != 12.5 || Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 {
		t.Error("Lerp/Clamp mismatch")
	}
}

func TestFastRand(t *testing.T) {
	a, b := NewFastRand(99), NewFastRand(99)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}

	zero := NewFastRand(0)
	if zero.Next() == 0 {
		t.Error("zero seed produced a stuck generator")
	}

	r := NewFastRand(7)
	hits := 0
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if r.Chance(0.3) {
			hits++
		}
	}
	if hits < 2500 || hits > 3500 {
		t.Errorf("Chance(0.3) hit %d of 10000", hits)
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
