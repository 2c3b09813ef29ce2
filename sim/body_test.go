package sim

import (
	"math"
	"testing"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

func testPlatforms() []level.Platform {
	return []level.Platform{
		{Center: level.Vec{0, -1, 0}, Half: level.Vec{10, 0.5, 10}},
		{Center: level.Vec{3, 1, 0}, Half: level.Vec{1.5, 0.3, 1.5}},
		{Center: level.Vec{-2.5, 2.2, -1.5}, Half: level.Vec{1, 0.3, 1}},
	}
}

func TestResolveLandsOnPlatformTop(t *testing.T) {
	platforms := testPlatforms()

	cases := []struct {
		name    string
		pos     vmath.Vec3
		vel     vmath.Vec3
		wantY   float64 // expected bottom height after resolve
		grounds bool
	}{
		{
			name:    "falling_onto_platform_top",
			pos:     vmath.Vec3{X: 3, Y: 1.7, Z: 0},
			vel:     vmath.Vec3{Y: -2},
			wantY:   1.3,
			grounds: true,
		},
		{
			name:    "within_tolerance_band",
			pos:     vmath.Vec3{X: 3, Y: 1.3 + 0.45, Z: 0}, // bottom slightly under the top
			vel:     vmath.Vec3{Y: -1},
			wantY:   1.3,
			grounds: true,
		},
		{
			name:    "too_deep_falls_past_side",
			pos:     vmath.Vec3{X: 3, Y: 1.3 - landingBand - 0.01, Z: 0},
			grounds: false,
		},
		{
			name:    "ascending_passes_through",
			pos:     vmath.Vec3{X: 3, Y: 1.2, Z: 0},
			vel:     vmath.Vec3{Y: 5},
			grounds: false,
		},
		{
			name:    "outside_horizontal_overlap",
			pos:     vmath.Vec3{X: 6, Y: 1.2, Z: 0},
			vel:     vmath.Vec3{Y: -1},
			grounds: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := Body{Pos: c.pos, Vel: c.vel, HalfSize: 0.5}
			ResolvePlatforms(&b, platforms)
			if !c.grounds {
				if b.Grounded && b.Pos.Y-b.HalfSize > platforms[0].Top()+1e-9 {
					t.Fatalf("unexpected grounding at %v", b.Pos)
				}
				return
			}
			if !b.Grounded {
				t.Fatalf("expected grounded, got %+v", b)
			}
			bottom := b.Pos.Y - b.HalfSize
			if math.Abs(bottom-c.wantY) > 1e-9 {
				t.Fatalf("bottom = %v, want %v", bottom, c.wantY)
			}
			if b.Vel.Y != 0 {
				t.Fatalf("vertical velocity should be zeroed, got %v", b.Vel.Y)
			}
		})
	}
}

func TestResolveGroundPlaneIsUnbounded(t *testing.T) {
	platforms := testPlatforms()
	b := Body{Pos: vmath.Vec3{X: 500, Y: -3, Z: -800}, Vel: vmath.Vec3{Y: -10}, HalfSize: 0.5}
	ResolvePlatforms(&b, platforms)
	if !b.Grounded {
		t.Fatal("ground plane must catch bodies at any X/Z")
	}
	if got := b.Pos.Y - b.HalfSize; math.Abs(got-platforms[0].Top()) > 1e-9 {
		t.Fatalf("bottom = %v, want ground top %v", got, platforms[0].Top())
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	platforms := testPlatforms()
	b := Body{Pos: vmath.Vec3{X: 3, Y: 1.6, Z: 0}, Vel: vmath.Vec3{Y: -3}, HalfSize: 0.5}

	ResolvePlatforms(&b, platforms)
	first := b
	ResolvePlatforms(&b, platforms)

	if b.Pos != first.Pos || b.Vel != first.Vel || b.Grounded != first.Grounded {
		t.Fatalf("resolved state is not a fixed point: %+v then %+v", first, b)
	}
}

func TestResolveHigherPlatformOverridesGround(t *testing.T) {
	// a body below the ground plane but overlapping a finite platform's
	// band ends on whichever surface accepted last
	platforms := []level.Platform{
		{Center: level.Vec{0, -1, 0}, Half: level.Vec{10, 0.5, 10}},
		{Center: level.Vec{0, -0.6, 0}, Half: level.Vec{2, 0.3, 2}},
	}
	b := Body{Pos: vmath.Vec3{Y: -1}, Vel: vmath.Vec3{Y: -1}, HalfSize: 0.5}
	ResolvePlatforms(&b, platforms)
	if !b.Grounded {
		t.Fatal("expected grounded")
	}
	want := platforms[1].Top() + b.HalfSize
	if math.Abs(b.Pos.Y-want) > 1e-9 {
		t.Fatalf("expected the later platform to win: y = %v, want %v", b.Pos.Y, want)
	}
}
