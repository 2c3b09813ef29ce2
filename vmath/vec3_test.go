package vmath

import (
	"math"
	"testing"
)

func TestNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"unit_x", Vec3{X: 2}, Vec3{X: 1}},
		{"zero_stays_zero", Vec3{}, Vec3{}},
		{"sub_epsilon_stays_zero", Vec3{X: 1e-5, Z: -1e-5}, Vec3{}},
		{"diagonal", Vec3{X: 3, Y: 0, Z: 4}, Vec3{X: 0.6, Z: 0.8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Normalized()
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 || math.Abs(got.Z-c.want.Z) > 1e-9 {
				t.Fatalf("Normalized(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"identity", 1.0, 1.0},
		{"wrap_down", math.Pi + 0.5, -math.Pi + 0.5},
		{"wrap_up", -math.Pi - 0.5, math.Pi - 0.5},
		{"two_pi", 2 * math.Pi, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapAngle(c.in)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestMixVec3ClampsT(t *testing.T) {
	a := Vec3{X: 0}
	b := Vec3{X: 10}
	if got := MixVec3(a, b, 2.5); got.X != 10 {
		t.Fatalf("expected overshooting t to clamp at target, got %v", got)
	}
	if got := MixVec3(a, b, -1); got.X != 0 {
		t.Fatalf("expected negative t to clamp at start, got %v", got)
	}
}
