package sim

import (
	"math"
	"testing"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

func TestChaserJumpLaunchSpeed(t *testing.T) {
	// the default floor (0.8) can never bind: a jump needs gap > 0.4, so
	// gap+pad always starts above it. The floor case raises the minimum.
	cases := []struct {
		name    string
		gap     float64
		jumpMin float64 // 0 keeps the default
		want    float64 // jump height after clamping
	}{
		{"small_gap_padded", 0.5, 0, 0.9},
		{"raised_floor_binds", 0.5, 1.5, 1.5},
		{"mid_gap_padded", 1.5, 0, 1.9},
		{"huge_gap_clamps_high", 8, 0, 2.4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tun := DefaultTuning()
			if c.jumpMin > 0 {
				tun.ChaserJumpMin = c.jumpMin
			}
			ch := NewChaser(vmath.Vec3{})
			ch.Grounded = true
			player := NewPlayer(vmath.Vec3{X: 2, Y: c.gap})

			ch.Update(&player, groundOnly(), testDT, &tun, NopAudio{})

			want := math.Sqrt(2 * -tun.Gravity * c.want)
			if math.Abs(ch.Vel.Y-want) > 1e-9 {
				t.Fatalf("launch speed = %v, want %v", ch.Vel.Y, want)
			}
			if ch.jumpCooldown <= 0 {
				t.Fatal("jump must start the cooldown")
			}
		})
	}
}

func TestChaserNoJumpCases(t *testing.T) {
	tun := DefaultTuning()

	cases := []struct {
		name     string
		grounded bool
		cooldown float64
		player   vmath.Vec3
	}{
		{"airborne", false, 0, vmath.Vec3{X: 2, Y: 2}},
		{"cooling_down", true, 0.5, vmath.Vec3{X: 2, Y: 2}},
		{"gap_too_small", true, 0, vmath.Vec3{X: 2, Y: tun.ChaserJumpMinGap - 0.05}},
		{"too_far_horizontally", true, 0, vmath.Vec3{X: tun.ChaserJumpRange + 1, Y: 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := NewChaser(vmath.Vec3{})
			ch.Grounded = c.grounded
			ch.jumpCooldown = c.cooldown
			player := NewPlayer(c.player)

			ch.Update(&player, groundOnly(), testDT, &tun, NopAudio{})

			if ch.Vel.Y > 0 {
				t.Fatalf("unexpected jump, Vel.Y = %v", ch.Vel.Y)
			}
		})
	}
}

func TestChaserHopsViaSteppingStone(t *testing.T) {
	tun := DefaultTuning()
	platforms := []level.Platform{
		{Center: level.Vec{0, -1, 0}, Half: level.Vec{20, 0.5, 20}},
		{Center: level.Vec{2, 0.5, 0}, Half: level.Vec{1, 0.3, 1}},  // low stepping stone
		{Center: level.Vec{4, 2.5, 0}, Half: level.Vec{1, 0.3, 1}},  // player's perch
		{Center: level.Vec{-8, 4, -8}, Half: level.Vec{1, 0.3, 1}},  // far decoy
	}

	ch := NewChaser(vmath.Vec3{})
	ch.Pos = vmath.Vec3{X: 0, Y: 0, Z: 0}
	player := NewPlayer(vmath.Vec3{X: 4, Y: 2.8 + 0.5, Z: 0})

	target := ch.selectTarget(&player, platforms, &tun)
	// the perch itself scores best: nearest the player with no height error
	if math.Abs(target.X-4) > 1e-9 || math.Abs(target.Z) > 1e-9 {
		t.Fatalf("target = %v, want the perch platform", target)
	}

	// player on the floor: chase directly, no platform detour
	player.Pos = vmath.Vec3{X: 4, Y: 0, Z: 0}
	target = ch.selectTarget(&player, platforms, &tun)
	if target != player.Pos {
		t.Fatalf("grounded player should be targeted directly, got %v", target)
	}

	// out of aggro range: direct pursuit even with height advantage
	player.Pos = vmath.Vec3{X: 4, Y: 3, Z: tun.ChaserAggroRange + 5}
	target = ch.selectTarget(&player, platforms, &tun)
	if target != player.Pos {
		t.Fatalf("out-of-range player should be targeted directly, got %v", target)
	}
}

func TestChaserCatchDistance(t *testing.T) {
	tun := DefaultTuning()
	ch := NewChaser(vmath.Vec3{})
	player := NewPlayer(vmath.Vec3{})

	contact := player.HalfSize + ch.HalfSize + tun.CatchMargin

	player.Pos = vmath.Vec3{X: contact - 0.01}
	if !ch.CaughtPlayer(&player, &tun) {
		t.Fatal("inside catch distance should register")
	}
	player.Pos = vmath.Vec3{X: contact + 0.01}
	if ch.CaughtPlayer(&player, &tun) {
		t.Fatal("outside catch distance should not register")
	}
}

func TestChaserResetClearsState(t *testing.T) {
	ch := NewChaser(vmath.Vec3{X: 4, Z: -4})
	ch.Pos = vmath.Vec3{X: 1, Y: 2, Z: 3}
	ch.Vel = vmath.Vec3{X: 5, Y: -2}
	ch.jumpCooldown = 0.4
	ch.stung = true

	ch.Reset()

	if ch.Pos != ch.Spawn {
		t.Fatalf("pos = %v, want spawn %v", ch.Pos, ch.Spawn)
	}
	if ch.Vel != (vmath.Vec3{}) {
		t.Fatalf("velocity should be zero, got %v", ch.Vel)
	}
	if ch.jumpCooldown != 0 || ch.stung {
		t.Fatal("cooldown and sting latch should clear")
	}
}
