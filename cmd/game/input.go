package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer3d/sim"
	"github.com/milk9111/platformer3d/vmath"
)

// yawSpeed is how fast the turn keys swing the camera, radians per second.
const yawSpeed = 2.4

// Input polls the keyboard into one simulation input frame and owns the
// camera yaw, which persists between frames.
type Input struct {
	yaw float64
}

func (i *Input) Update(dt float64) sim.Input {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.yaw += yawSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.yaw -= yawSpeed * dt
	}
	i.yaw = vmath.WrapAngle(i.yaw)

	return sim.Input{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Sprint:    ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		CameraYaw: i.yaw,
	}
}

// Yaw returns the current camera yaw for the renderer.
func (i *Input) Yaw() float64 {
	return i.yaw
}
