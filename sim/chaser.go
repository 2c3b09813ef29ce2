package sim

import (
	"math"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

// Chaser is the melee pursuer. It runs at the player, ramps up when close,
// and when the player holds the high ground it picks a stepping-stone
// platform and jumps for it. No path graph: a single-hop score over the
// platform list stands in for planning.
type Chaser struct {
	Body
	Spawn vmath.Vec3

	jumpCooldown float64
	stung        bool // chase sting fired for the current approach
}

func NewChaser(spawn vmath.Vec3) *Chaser {
	return &Chaser{
		Body:  Body{Pos: spawn, HalfSize: 0.45},
		Spawn: spawn,
	}
}

// Reset returns the chaser to its spawn with zero velocity.
func (c *Chaser) Reset() {
	c.ResetTo(c.Spawn)
	c.jumpCooldown = 0
	c.stung = false
}

// Update advances pursuit for one step and integrates position.
func (c *Chaser) Update(player *Player, platforms []level.Platform, dt float64, tun *Tuning, audio AudioSink) {
	target := c.selectTarget(player, platforms, tun)

	dir := target.Sub(c.Pos).Flat().Normalized()
	horiz := vmath.DistXZ(player.Pos, c.Pos)

	ramp := 1.0
	if horiz < tun.ChaserCloseRange {
		ramp += tun.ChaserRampBoost * (1 - horiz/tun.ChaserCloseRange)
		if !c.stung {
			c.stung = true
			audio.PlayCue(CueChaseSting)
		}
	} else if horiz > tun.ChaserCloseRange*1.5 {
		c.stung = false
	}

	speed := tun.ChaserSpeed * ramp * tun.ChaserAggression
	c.Vel.X = dir.X * speed
	c.Vel.Z = dir.Z * speed
	c.Vel.Y += tun.Gravity * dt

	if c.jumpCooldown > 0 {
		c.jumpCooldown -= dt
	}

	gap := player.Pos.Y - c.Pos.Y
	if c.Grounded && c.jumpCooldown <= 0 && gap > tun.ChaserJumpMinGap && horiz < tun.ChaserJumpRange {
		// projectile-motion inversion: the launch speed that clears the
		// desired height under this gravity
		height := vmath.Clamp(gap+tun.ChaserJumpPad, tun.ChaserJumpMin, tun.ChaserJumpMax)
		c.Vel.Y = math.Sqrt(2 * -tun.Gravity * height)
		c.Grounded = false
		c.jumpCooldown = tun.ChaserJumpCool
	}

	c.Integrate(dt)
}

// selectTarget aims at the player directly unless the player is perched
// meaningfully higher inside aggro range; then the best-scoring platform
// top becomes the interception point.
func (c *Chaser) selectTarget(player *Player, platforms []level.Platform, tun *Tuning) vmath.Vec3 {
	dist := vmath.Dist(player.Pos, c.Pos)
	if dist > tun.ChaserAggroRange || player.Pos.Y-c.Pos.Y < tun.ChaserHopHeight {
		return player.Pos
	}

	best := -1
	bestScore := math.MaxFloat64
	for i := 1; i < len(platforms); i++ {
		p := platforms[i]
		top := vmath.Vec3{X: p.Center[0], Y: p.Top(), Z: p.Center[2]}
		score := vmath.Dist(top, player.Pos) +
			tun.PlatformHopWeight*vmath.Dist(top, c.Pos) +
			math.Abs(p.Top()-player.Pos.Y)
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return player.Pos
	}
	p := platforms[best]
	return vmath.Vec3{X: p.Center[0], Y: p.Top() + c.HalfSize, Z: p.Center[2]}
}

// CaughtPlayer reports whether the chaser has closed to catch distance.
func (c *Chaser) CaughtPlayer(player *Player, tun *Tuning) bool {
	return vmath.Dist(player.Pos, c.Pos) < player.HalfSize+c.HalfSize+tun.CatchMargin
}
