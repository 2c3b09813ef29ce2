package sim

import (
	"math"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

// landingBand is how far below a platform's top a body's center may sit and
// still count as landing on it. Deeper than this means the body is beside or
// under the platform, not on it.
const landingBand = 0.6

// Body is the kinematic state shared by every dynamic entity. Entities embed
// it; one resolver grounds them all.
type Body struct {
	Pos vmath.Vec3
	Vel vmath.Vec3
	// HalfSize is half the collision cube's edge. The body's bottom is
	// Pos.Y - HalfSize.
	HalfSize float64
	Grounded bool
}

// Integrate advances position by explicit Euler.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// ResetTo teleports the body with zero velocity. Grounded is left false; the
// next resolver pass recomputes it.
func (b *Body) ResetTo(pos vmath.Vec3) {
	b.Pos = pos
	b.Vel = vmath.Vec3{}
	b.Grounded = false
}

// ResolvePlatforms grounds a body against the level's platforms. Platform 0
// is the floor: its top plane is unbounded in X/Z. Finite platforms only
// catch a body that is falling (or vertically still) and whose center is
// within landingBand of the top surface, so an ascending body passes through
// from below. Later platforms win when several accept in the same pass.
func ResolvePlatforms(b *Body, platforms []level.Platform) {
	if b == nil || len(platforms) == 0 {
		return
	}
	b.Grounded = false

	groundTop := platforms[0].Top()
	if b.Pos.Y-b.HalfSize <= groundTop {
		b.Pos.Y = groundTop + b.HalfSize
		b.Vel.Y = 0
		b.Grounded = true
	}

	for i := 1; i < len(platforms); i++ {
		p := platforms[i]
		top := p.Top()
		withinX := math.Abs(b.Pos.X-p.Center[0]) <= p.Half[0]+b.HalfSize
		withinZ := math.Abs(b.Pos.Z-p.Center[2]) <= p.Half[2]+b.HalfSize
		falling := b.Vel.Y <= 0
		if !withinX || !withinZ || !falling {
			continue
		}
		bottom := b.Pos.Y - b.HalfSize
		if bottom <= top && b.Pos.Y > top-landingBand {
			b.Pos.Y = top + b.HalfSize
			b.Vel.Y = 0
			b.Grounded = true
		}
	}
}
