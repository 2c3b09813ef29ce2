package sim

import (
	"math"

	"github.com/milk9111/platformer3d/vmath"
)

// stepStride controls footstep cue cadence: one cue per stride-length of
// ground covered.
const stepStride = 1.6

// Player is the avatar. Movement is camera-relative with exponential
// velocity smoothing; jumps go through a buffer + coyote window so presses
// slightly before landing or slightly after walking off a ledge still fire.
type Player struct {
	Body
	Spawn   vmath.Vec3
	Stamina float64 // 0..1, sprint resource
	Facing  float64 // radians, derived from velocity while moving

	jumpBuffer  float64
	coyote      float64
	stepPhase   float64
	wasGrounded bool
}

func NewPlayer(spawn vmath.Vec3) Player {
	return Player{
		Body:    Body{Pos: spawn, HalfSize: 0.5},
		Spawn:   spawn,
		Stamina: 1,
	}
}

// Respawn hard-resets the player to its spawn point.
func (p *Player) Respawn() {
	p.ResetTo(p.Spawn)
	p.jumpBuffer = 0
	p.coyote = 0
	p.wasGrounded = false
}

// Update applies one step of input-driven movement and integrates position.
// The collision resolver runs afterwards and owns the grounded flag.
func (p *Player) Update(in Input, dt float64, tun *Tuning, audio AudioSink) {
	// camera basis projected onto the horizontal plane
	forward := vmath.Vec3{X: math.Sin(in.CameraYaw), Z: math.Cos(in.CameraYaw)}
	right := vmath.Vec3{X: -forward.Z, Z: forward.X}

	var dir vmath.Vec3
	if in.Forward {
		dir = dir.Add(forward)
	}
	if in.Back {
		dir = dir.Sub(forward)
	}
	if in.Right {
		dir = dir.Add(right)
	}
	if in.Left {
		dir = dir.Sub(right)
	}
	dir = dir.Normalized()
	moving := dir.LengthXZ() > vmath.Epsilon

	sprinting := in.Sprint && moving && p.Stamina > tun.SprintMinStamina
	speed := tun.MoveSpeed
	if sprinting {
		speed *= tun.SprintMultiplier
		p.Stamina -= tun.SprintDrain * dt
	} else {
		p.Stamina += tun.StaminaRegen * dt
	}
	p.Stamina = vmath.Clamp(p.Stamina, 0, 1)

	accel := tun.AirAccel
	if p.Grounded {
		accel = tun.GroundAccel
	}
	target := dir.Scale(speed)
	blended := vmath.MixVec3(p.Vel.Flat(), target, accel*dt)
	p.Vel.X = blended.X
	p.Vel.Z = blended.Z

	// gravity accumulates every frame; landing zeroes it in the resolver
	p.Vel.Y += tun.Gravity * dt

	if in.Jump {
		p.jumpBuffer = tun.JumpBuffer
	}
	if p.Grounded {
		p.coyote = tun.CoyoteTime
	}
	if p.jumpBuffer > 0 && p.coyote > 0 {
		p.Vel.Y = tun.JumpSpeed
		p.Grounded = false
		// both windows are spent so one press can't jump twice
		p.jumpBuffer = 0
		p.coyote = 0
		audio.PlayCue(CueJump)
	}
	p.jumpBuffer = math.Max(0, p.jumpBuffer-dt)
	p.coyote = math.Max(0, p.coyote-dt)

	if moving {
		p.Facing = math.Atan2(p.Vel.X, p.Vel.Z)
	}

	p.Integrate(dt)

	if p.Grounded && moving {
		p.stepPhase += p.Vel.LengthXZ() * dt
		if p.stepPhase >= stepStride {
			p.stepPhase -= stepStride
			audio.PlayCue(CueFootstep)
		}
	}
}

// afterResolve reacts to the grounded flag the resolver just recomputed.
func (p *Player) afterResolve(audio AudioSink) {
	if p.Grounded && !p.wasGrounded {
		audio.PlayCue(CueLand)
	}
	p.wasGrounded = p.Grounded
}
