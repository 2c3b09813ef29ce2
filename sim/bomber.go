package sim

import "github.com/milk9111/platformer3d/vmath"

// handHeight is where bombs leave the bomber, as a multiple of half size
// above center.
const handHeight = 1.2

// Bomber is the ranged enemy. It holds a stand-off band around the player,
// never jumps, and lobs bombs on a cooldown. It keeps its position after the
// player is hit; distance is its defense.
type Bomber struct {
	Body
	Spawn vmath.Vec3

	throwCooldown float64
}

func NewBomber(spawn vmath.Vec3, tun *Tuning) *Bomber {
	return &Bomber{
		Body:  Body{Pos: spawn, HalfSize: 0.5},
		Spawn: spawn,
		// the opening delay is longer than the repeat interval
		throwCooldown: tun.ThrowOpening,
	}
}

// Update advances stand-off movement and throw scheduling, then integrates.
func (b *Bomber) Update(player *Player, pool *BombPool, dt float64, tun *Tuning, audio AudioSink) {
	dist := vmath.DistXZ(player.Pos, b.Pos)

	// positive closes in, negative backs away, near zero holds the band
	advance := vmath.Clamp((dist-tun.StandoffDistance)/tun.StandoffSoftness, -1, 1)
	dir := player.Pos.Sub(b.Pos).Flat().Normalized()
	b.Vel.X = dir.X * advance * tun.BomberSpeed
	b.Vel.Z = dir.Z * advance * tun.BomberSpeed
	b.Vel.Y += tun.Gravity * dt

	if b.throwCooldown > 0 {
		b.throwCooldown -= dt
	}
	if b.throwCooldown <= 0 && dist < tun.ThrowRange {
		b.throwAt(player, dist, pool, tun, audio)
		// cooldown restarts even when the pool dropped the throw
		b.throwCooldown = tun.ThrowInterval
	}

	b.Integrate(dt)
}

func (b *Bomber) throwAt(player *Player, dist float64, pool *BombPool, tun *Tuning, audio AudioSink) {
	hand := b.Pos.Add(vmath.Vec3{Y: b.HalfSize * handHeight})
	dir := player.Pos.Sub(b.Pos).Flat().Normalized()
	speed := tun.BombSpeedBase + dist*tun.BombSpeedScale
	vel := dir.Scale(speed)
	vel.Y = tun.BombLaunchUp

	if pool.Spawn(hand, vel, tun.BombFuse) {
		audio.PlayCue(CueThrow)
	}
}
