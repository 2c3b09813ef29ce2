package sim

import (
	"testing"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

// testCampaign builds a two-level config where the first level's companion
// and goal sit right on the player spawn, so the transition fires as soon as
// the simulation starts. The second level's placement is up to the caller.
func testCampaign(l2Companion, l2Goal level.Vec) *level.Config {
	ground := level.Platform{Center: level.Vec{0, -1, 0}, Half: level.Vec{30, 0.5, 30}}
	return &level.Config{
		Levels: []level.Level{
			{
				Name:        "first",
				Platforms:   []level.Platform{ground},
				Companions:  []level.CompanionSpawn{{Position: level.Vec{0, 0, 0}, Species: "cat"}},
				PlayerSpawn: level.Vec{0, 0.5, 0},
				EnemySpawn:  level.Vec{25, 0, 25},
				Goal:        level.Vec{0, 0, 0},
				TargetCount: 1,
			},
			{
				Name:        "second",
				Platforms:   []level.Platform{ground},
				Companions:  []level.CompanionSpawn{{Position: l2Companion, Species: "dog"}},
				PlayerSpawn: level.Vec{5, 0.5, 5},
				EnemySpawn:  level.Vec{-25, 0, -25},
				Goal:        l2Goal,
				TargetCount: 1,
			},
		},
	}
}

func TestWorldAdvanceIsOneShot(t *testing.T) {
	// second level's pickup and goal are far away so the run parks in level 2
	cfg := testCampaign(level.Vec{20, 0, 20}, level.Vec{-20, 0, -20})
	w, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	w.Step(w.tun.FixedStep, Input{})

	if w.Phase() != PhaseLevel2 {
		t.Fatalf("phase = %v, want level2", w.Phase())
	}
	spawn := cfg.Levels[1].PlayerSpawn.V()
	if w.Player().Pos != spawn {
		t.Fatalf("player at %v, want level 2 spawn %v", w.Player().Pos, spawn)
	}
	if w.Collected() != 0 {
		t.Fatalf("collected = %d, want 0 for the fresh flock", w.Collected())
	}

	advances := 0
	for _, e := range w.Events() {
		if e.Kind == EventAdvance {
			advances++
		}
	}
	if advances != 1 {
		t.Fatalf("advance events = %d, want exactly 1", advances)
	}

	// the cleared first-level goal must not fire again
	for i := 0; i < 200; i++ {
		w.Step(w.tun.FixedStep, Input{})
	}
	for _, e := range w.Events() {
		if e.Kind == EventAdvance {
			t.Fatal("advance fired a second time")
		}
	}
	if w.Phase() != PhaseLevel2 {
		t.Fatalf("phase = %v, want to stay in level2", w.Phase())
	}
}

func TestWorldVictorySettlesPlayer(t *testing.T) {
	// second level also clears instantly: companion and goal on the spawn
	cfg := testCampaign(level.Vec{5, 0, 5}, level.Vec{5, 0, 5})
	w, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	w.Step(w.tun.FixedStep, Input{}) // level1 -> level2
	w.Step(w.tun.FixedStep, Input{}) // level2 -> won
	if w.Phase() != PhaseWon {
		t.Fatalf("phase = %v, want won", w.Phase())
	}

	victories := 0
	for _, e := range w.Events() {
		if e.Kind == EventVictory {
			victories++
		}
	}
	if victories != 1 {
		t.Fatalf("victory events = %d, want exactly 1", victories)
	}

	// input is ignored after victory; the avatar never picks up speed
	for i := 0; i < 240; i++ {
		w.Step(w.tun.FixedStep, Input{Forward: true, Sprint: true, Jump: true})
		if speed := w.Player().Vel.LengthXZ(); speed > 0.01 {
			t.Fatalf("player moving at %v after victory", speed)
		}
	}
	for _, e := range w.Events() {
		if e.Kind == EventVictory {
			t.Fatal("victory fired a second time")
		}
	}
}

func TestWorldCatchResetsBothToSpawn(t *testing.T) {
	cfg := testCampaign(level.Vec{20, 0, 20}, level.Vec{-20, 0, -20})
	// keep the first level from clearing so the chaser stays in play
	cfg.Levels[0].Goal = level.Vec{25, 0, -25}
	cfg.Levels[0].Companions[0].Position = level.Vec{-20, 0, 20}
	w, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	// settle the player onto the floor, then teleport the chaser next to it
	for i := 0; i < 60; i++ {
		w.Step(w.tun.FixedStep, Input{})
	}
	w.Events()
	w.chaser.Pos = w.Player().Pos.Add(vmath.Vec3{X: 0.5})
	w.Step(w.tun.FixedStep, Input{})

	if w.Player().Pos != w.Player().Spawn {
		t.Fatalf("player at %v, want spawn %v", w.Player().Pos, w.Player().Spawn)
	}
	if w.Player().Vel != (vmath.Vec3{}) {
		t.Fatalf("player velocity = %v, want zero", w.Player().Vel)
	}
	if w.chaser.Pos != w.chaser.Spawn {
		t.Fatalf("chaser at %v, want spawn %v", w.chaser.Pos, w.chaser.Spawn)
	}
	if w.chaser.Vel != (vmath.Vec3{}) {
		t.Fatalf("chaser velocity = %v, want zero", w.chaser.Vel)
	}

	caught := 0
	for _, e := range w.Events() {
		if e.Kind == EventCaught {
			caught++
		}
	}
	if caught != 1 {
		t.Fatalf("caught events = %d, want 1", caught)
	}
}

func TestWorldAdvanceClampsElapsed(t *testing.T) {
	cfg := testCampaign(level.Vec{20, 0, 20}, level.Vec{-20, 0, -20})
	cfg.Levels[0].Goal = level.Vec{25, 0, -25}
	cfg.Levels[0].Companions[0].Position = level.Vec{-20, 0, 20}
	cfg.Levels[0].PlayerSpawn = level.Vec{0, 6, 0}
	w, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	// ten seconds of wall clock may only simulate the frame-time cap, so the
	// player has barely begun to fall
	w.Advance(10, Input{})
	if w.Player().Pos.Y < 4 {
		t.Fatalf("player fell to %v; the accumulator ran unclamped", w.Player().Pos.Y)
	}
	if w.Player().Grounded {
		t.Fatal("player should still be airborne after one clamped frame")
	}
}

func TestWorldRejectsBadConfigs(t *testing.T) {
	t.Run("one_level", func(t *testing.T) {
		cfg := testCampaign(level.Vec{}, level.Vec{})
		cfg.Levels = cfg.Levels[:1]
		if _, err := New(cfg); err == nil {
			t.Fatal("expected an error for a single-level campaign")
		}
	})

	t.Run("no_platforms", func(t *testing.T) {
		cfg := testCampaign(level.Vec{}, level.Vec{})
		cfg.Levels[0].Platforms = nil
		if _, err := New(cfg); err == nil {
			t.Fatal("expected a validation error for a level without platforms")
		}
	})

	t.Run("zero_bomb_capacity", func(t *testing.T) {
		cfg := testCampaign(level.Vec{}, level.Vec{})
		tun := DefaultTuning()
		tun.BombCapacity = 0
		if _, err := New(cfg, WithTuning(tun)); err == nil {
			t.Fatal("expected an error for zero bomb capacity")
		}
	})
}

func TestWorldSnapshotReflectsActiveLevel(t *testing.T) {
	cfg := testCampaign(level.Vec{20, 0, 20}, level.Vec{-20, 0, -20})
	cfg.Levels[0].Goal = level.Vec{25, 0, -25}
	cfg.Levels[0].Companions[0].Position = level.Vec{-20, 0, 20}
	w, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	w.Step(w.tun.FixedStep, Input{})

	snap := w.Snapshot()
	if snap.Level != 0 || snap.Phase != PhaseLevel1 {
		t.Fatalf("snapshot level/phase = %d/%v, want 0/level1", snap.Level, snap.Phase)
	}
	if snap.Chaser == nil || snap.Bomber != nil {
		t.Fatal("level 1 snapshot should carry the chaser and no bomber")
	}
	if snap.Target != 1 || len(snap.Companions) != 1 {
		t.Fatalf("snapshot target=%d companions=%d, want 1/1", snap.Target, len(snap.Companions))
	}
	if snap.Companions[0].Species != "cat" {
		t.Fatalf("companion species = %q, want cat", snap.Companions[0].Species)
	}
	if snap.Player.Pos != w.Player().Pos {
		t.Fatalf("snapshot player pos %v != world %v", snap.Player.Pos, w.Player().Pos)
	}

	// cross the transition and the snapshot flips to the bomber loadout
	cfg.Levels[0].Goal = level.Vec{0, 0, 0}
	cfg.Levels[0].Companions[0].Position = level.Vec{0, 0, 0}
	w2, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	w2.Step(w2.tun.FixedStep, Input{})
	snap = w2.Snapshot()
	if snap.Level != 1 || snap.Phase != PhaseLevel2 {
		t.Fatalf("snapshot level/phase = %d/%v, want 1/level2", snap.Level, snap.Phase)
	}
	if snap.Bomber == nil || snap.Chaser != nil {
		t.Fatal("level 2 snapshot should carry the bomber and no chaser")
	}
}
