package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mix linearly interpolates from a to b by t in [0,1].
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MixVec3 interpolates each component; t is clamped to [0,1] so a large
// accel*dt step can never overshoot the target.
func MixVec3(a, b Vec3, t float64) Vec3 {
	t = Clamp(t, 0, 1)
	return Vec3{Mix(a.X, b.X, t), Mix(a.Y, b.Y, t), Mix(a.Z, b.Z, t)}
}

// WrapAngle normalizes an angle difference into (-pi, pi] so turning always
// takes the shortest arc.
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
