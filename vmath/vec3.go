package vmath

import "math"

// Epsilon is the shared tolerance for degenerate-geometry guards. Directions
// shorter than this are treated as zero rather than normalized.
const Epsilon = 1e-3

// Vec3 is a 3D point or direction. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthXZ is the horizontal magnitude, ignoring Y.
func (v Vec3) LengthXZ() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalized returns the unit vector, or the zero vector when v is shorter
// than Epsilon. Callers never see NaN from a zero-length input.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < Epsilon {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Flat zeroes the Y component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func Dist(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// DistXZ is the horizontal distance between two points.
func DistXZ(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
