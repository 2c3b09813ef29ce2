package sim

import (
	"errors"

	"github.com/milk9111/platformer3d/vmath"
)

// bombRadius is the projectile's collision size against the ground.
const bombRadius = 0.25

var errNoBombCapacity = errors.New("sim: bomb pool capacity must be positive")

// Bomb is one pooled projectile slot.
type Bomb struct {
	Active bool
	Pos    vmath.Vec3
	Vel    vmath.Vec3
	Fuse   float64
}

// BombPool is a fixed-capacity projectile arena. Throws into a full pool are
// dropped, never queued.
type BombPool struct {
	slots []Bomb
}

func NewBombPool(capacity int) (*BombPool, error) {
	if capacity <= 0 {
		return nil, errNoBombCapacity
	}
	return &BombPool{slots: make([]Bomb, capacity)}, nil
}

// Spawn activates the first free slot. Returns false when the pool is
// exhausted.
func (bp *BombPool) Spawn(pos, vel vmath.Vec3, fuse float64) bool {
	for i := range bp.slots {
		if bp.slots[i].Active {
			continue
		}
		bp.slots[i] = Bomb{Active: true, Pos: pos, Vel: vel, Fuse: fuse}
		return true
	}
	return false
}

// Clear deactivates every slot.
func (bp *BombPool) Clear() {
	for i := range bp.slots {
		bp.slots[i] = Bomb{}
	}
}

// Slots exposes the pool for snapshots and rendering. Callers must not
// mutate it.
func (bp *BombPool) Slots() []Bomb {
	return bp.slots
}

// Update integrates every active bomb and detonates on ground impact or
// fuse expiry, whichever comes first. A blast within radius of the player
// hard-resets the player to spawn.
func (bp *BombPool) Update(player *Player, groundTop float64, dt float64, tun *Tuning, audio AudioSink, events *eventQueue) {
	for i := range bp.slots {
		b := &bp.slots[i]
		if !b.Active {
			continue
		}

		// lighter gravity than characters so the arc reads as a lob
		b.Vel.Y += tun.BombGravity * dt
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		exploded := false
		if b.Pos.Y-bombRadius <= groundTop {
			b.Pos.Y = groundTop + bombRadius
			exploded = true
		}
		b.Fuse -= dt
		if b.Fuse <= 0 {
			exploded = true
		}
		if !exploded {
			continue
		}

		audio.PlayCue(CueExplosion)
		events.push(Event{Kind: EventExplosion, Pos: b.Pos, Index: i})
		if vmath.Dist(player.Pos, b.Pos) < tun.BlastRadius {
			events.push(Event{Kind: EventBlast, Pos: b.Pos, Index: i})
			player.Respawn()
		}
		*b = Bomb{}
	}
}
