package sim

import (
	"math"

	"github.com/milk9111/platformer3d/vmath"
)

// companion behavior tuning
const (
	idleOdds        = 0.4 // chance the behavior timer rolls Idle over Wandering
	wanderFraction  = 0.45
	wanderAccel     = 4.0
	followAccel     = 8.0
	followBoost     = 1.5 // max catch-up speed multiplier on top of base
	reachTolerance  = 0.5
	settleSpeed     = 0.05 // below this horizontal speed a companion is "settled"
	groomRadius     = 1.5
	groomedHold     = 1.5
	actRetrigger    = 0.8
	orbitMinRadius  = 0.8
	companionHalf   = 0.3
)

// Species splits the flock. Cats carry the idle-act sub-machine; dogs keep
// only the primary behavior states.
type Species int

const (
	SpeciesCat Species = iota
	SpeciesDog
)

func (s Species) String() string {
	if s == SpeciesDog {
		return "dog"
	}
	return "cat"
}

// Behavior is a companion's primary state.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorWandering
	BehaviorFollowing
)

func (b Behavior) String() string {
	switch b {
	case BehaviorWandering:
		return "wandering"
	case BehaviorFollowing:
		return "following"
	default:
		return "idle"
	}
}

// IdleAct is the cosmetic sub-state a settled cat can drop into. Groomed is
// the reactive state a groomed neighbor is nudged into.
type IdleAct int

const (
	IdleNone IdleAct = iota
	IdleGroom
	IdleLoaf
	IdleRoll
	IdleGroomed
)

func (a IdleAct) String() string {
	switch a {
	case IdleGroom:
		return "groom"
	case IdleLoaf:
		return "loaf"
	case IdleRoll:
		return "roll"
	case IdleGroomed:
		return "groomed"
	default:
		return "none"
	}
}

// Companion is one collectible. Until collected it alternates between idling
// and short wanders near its home; once picked up it follows the player for
// the rest of the session.
type Companion struct {
	Body
	Species   Species
	Collected bool
	Behavior  Behavior
	Facing    float64
	WalkCycle float64
	IdlePhase float64
	Act       IdleAct

	home         vmath.Vec3
	moveSpeed    float64
	turnSpeed    float64
	timer        float64
	target       vmath.Vec3
	hasTarget    bool
	actTimer     float64
	retrigger    float64
	groomTarget  int // slice index of the groom partner, -1 when none
	rng          lcg
}

// NewCompanion seeds one companion's personality from its own stream.
func NewCompanion(home vmath.Vec3, species Species, seed uint32) Companion {
	rng := newLCG(seed)
	c := Companion{
		Body:        Body{Pos: home, HalfSize: companionHalf},
		Species:     species,
		home:        home,
		groomTarget: -1,
		rng:         rng,
	}
	c.moveSpeed = c.rng.Range(1.8, 3.2)
	c.turnSpeed = c.rng.Range(6, 12)
	c.Facing = c.rng.Range(-math.Pi, math.Pi)
	c.timer = c.rng.Range(0.5, 3)
	return c
}

// Update advances behavior, idle acts, and kinematics for one step. The
// caller passes the whole flock so grooming can look up neighbors by index.
func (c *Companion) Update(self int, all []Companion, player *Player, dt float64, tun *Tuning, audio AudioSink, events *eventQueue) {
	if !c.Collected && vmath.Dist(player.Pos, c.Pos) < tun.PickupRadius {
		c.collect(self, audio, events)
	}

	desired, accel := c.desiredVelocity(player, dt, tun)

	c.updateIdleAct(self, all, desired, dt)

	t := vmath.Clamp(accel*dt, 0, 1)
	c.Vel.X = vmath.Mix(c.Vel.X, desired.X, t)
	c.Vel.Z = vmath.Mix(c.Vel.Z, desired.Z, t)
	c.Vel.Y += tun.Gravity * dt

	if desired.LengthXZ() > vmath.Epsilon {
		want := math.Atan2(desired.X, desired.Z)
		diff := vmath.WrapAngle(want - c.Facing)
		c.Facing += diff * vmath.Clamp(c.turnSpeed*dt, 0, 1)
		c.Facing = vmath.WrapAngle(c.Facing)
	}

	c.Integrate(dt)

	c.WalkCycle += c.Vel.LengthXZ() * dt
	c.IdlePhase += dt
}

func (c *Companion) collect(self int, audio AudioSink, events *eventQueue) {
	c.Collected = true
	c.Behavior = BehaviorFollowing
	// expired timer forces an immediate orbit target roll
	c.timer = 0
	c.hasTarget = false
	c.Act = IdleNone
	c.groomTarget = -1
	audio.PlayCue(CuePickup)
	events.push(Event{Kind: EventCollected, Pos: c.Pos, Index: self})
}

// desiredVelocity runs the primary state machine and returns the velocity
// the companion wants plus the smoothing rate to reach it.
func (c *Companion) desiredVelocity(player *Player, dt float64, tun *Tuning) (vmath.Vec3, float64) {
	if c.Collected {
		return c.followVelocity(player, tun), followAccel
	}

	c.timer -= dt
	switch c.Behavior {
	case BehaviorWandering:
		to := c.target.Sub(c.Pos).Flat()
		if to.Length() < reachTolerance || c.timer <= 0 {
			c.Behavior = BehaviorIdle
			c.timer = c.rng.Range(1.5, 4)
			return vmath.Vec3{}, wanderAccel
		}
		return to.Normalized().Scale(c.moveSpeed * wanderFraction), wanderAccel
	default: // BehaviorIdle
		if c.timer <= 0 {
			if c.rng.Float() < idleOdds {
				c.timer = c.rng.Range(1.5, 4)
				return vmath.Vec3{}, wanderAccel
			}
			c.Behavior = BehaviorWandering
			c.timer = c.rng.Range(2, 5)
			angle := c.rng.Range(0, 2*math.Pi)
			radius := c.rng.Range(0.5, tun.WanderRadius)
			c.target = c.home.Add(vmath.Vec3{X: math.Sin(angle) * radius, Z: math.Cos(angle) * radius})
		}
		return vmath.Vec3{}, wanderAccel
	}
}

// followVelocity keeps a collected companion orbiting near the player,
// speeding up the farther behind it has fallen.
func (c *Companion) followVelocity(player *Player, tun *Tuning) vmath.Vec3 {
	dist := vmath.DistXZ(player.Pos, c.Pos)
	reachedTarget := c.hasTarget && vmath.DistXZ(c.target, c.Pos) < reachTolerance
	if !c.hasTarget || reachedTarget || dist > tun.CatchUpRadius {
		angle := c.rng.Range(0, 2*math.Pi)
		radius := c.rng.Range(orbitMinRadius, tun.OrbitRadius)
		c.target = player.Pos.Add(vmath.Vec3{X: math.Sin(angle) * radius, Z: math.Cos(angle) * radius})
		c.hasTarget = true
	}

	to := c.target.Sub(c.Pos).Flat()
	if to.Length() < reachTolerance {
		return vmath.Vec3{}
	}

	// degenerate tuning can put both radii at the same value
	span := math.Max(tun.CatchUpRadius-tun.OrbitRadius, vmath.Epsilon)
	lag := vmath.Clamp((dist-tun.OrbitRadius)/span, 0, 1)
	speed := c.moveSpeed * (1 + followBoost*lag)
	return to.Normalized().Scale(speed)
}

// updateIdleAct runs the cat-only cosmetic sub-machine. Wanting to move
// cancels any act immediately; a settled cat that has sat out the retrigger
// delay rolls a new act with a long randomized hold.
func (c *Companion) updateIdleAct(self int, all []Companion, desired vmath.Vec3, dt float64) {
	if c.retrigger > 0 {
		c.retrigger -= dt
	}

	if desired.LengthXZ() > vmath.Epsilon {
		if c.Act != IdleNone {
			c.Act = IdleNone
			c.groomTarget = -1
			c.retrigger = actRetrigger
		}
		return
	}

	if c.Act != IdleNone {
		if c.Act == IdleGroom && !c.validGroomTarget(self, all) {
			c.groomTarget = -1
			c.Act = IdleNone
			c.retrigger = actRetrigger
			return
		}
		c.actTimer -= dt
		if c.actTimer <= 0 {
			c.Act = IdleNone
			c.groomTarget = -1
			c.retrigger = actRetrigger
		}
		return
	}

	if c.Species != SpeciesCat || c.retrigger > 0 || !c.settled() {
		return
	}

	roll := c.rng.Float()
	switch {
	case roll < 0.25:
		if t := c.nearestSettled(self, all); t >= 0 {
			c.Act = IdleGroom
			c.groomTarget = t
			c.actTimer = c.rng.Range(2, 5)
			// nudge the partner into its reactive state
			if all[t].Act == IdleNone {
				all[t].Act = IdleGroomed
				all[t].actTimer = groomedHold
			}
		}
	case roll < 0.6:
		c.Act = IdleLoaf
		c.actTimer = c.rng.Range(3, 8)
	case roll < 0.75:
		c.Act = IdleRoll
		c.actTimer = c.rng.Range(1.5, 3)
	default:
		// stay plain idle, but not re-rolling every tick
		c.retrigger = actRetrigger
	}
}

// settled reports whether the companion qualifies for an idle act: nearly
// stationary and in a state where stillness is expected.
func (c *Companion) settled() bool {
	if c.Vel.LengthXZ() > settleSpeed {
		return false
	}
	return c.Behavior == BehaviorIdle || c.Behavior == BehaviorFollowing
}

// validGroomTarget revalidates the groom partner each tick. The index is a
// non-owning reference: the partner may have wandered off or sped up since
// the act began.
func (c *Companion) validGroomTarget(self int, all []Companion) bool {
	t := c.groomTarget
	if t < 0 || t >= len(all) || t == self {
		return false
	}
	o := &all[t]
	return vmath.DistXZ(o.Pos, c.Pos) <= groomRadius && o.Vel.LengthXZ() <= settleSpeed
}

// nearestSettled finds the closest near-stationary companion within grooming
// reach, or -1.
func (c *Companion) nearestSettled(self int, all []Companion) int {
	best := -1
	bestDist := groomRadius
	for i := range all {
		if i == self {
			continue
		}
		o := &all[i]
		if o.Vel.LengthXZ() > settleSpeed {
			continue
		}
		d := vmath.DistXZ(o.Pos, c.Pos)
		if d <= bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
