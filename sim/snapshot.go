package sim

import "github.com/milk9111/platformer3d/vmath"

// Snapshot is a stable read-only copy of the entity state, taken once per
// frame after the simulation settles. The renderer consumes it locally; the
// transport ships it to a second observer unchanged.
type Snapshot struct {
	Phase     Phase `json:"phase"`
	Level     int   `json:"level"`
	Collected int   `json:"collected"`
	Target    int   `json:"target"`

	Player     PlayerState     `json:"player"`
	Chaser     *EnemyState     `json:"chaser,omitempty"`
	Bomber     *EnemyState     `json:"bomber,omitempty"`
	Bombs      []BombState     `json:"bombs,omitempty"`
	Companions []CompanionState `json:"companions"`
}

type PlayerState struct {
	Pos      vmath.Vec3 `json:"pos"`
	Vel      vmath.Vec3 `json:"vel"`
	Facing   float64    `json:"facing"`
	Stamina  float64    `json:"stamina"`
	Grounded bool       `json:"grounded"`
}

type EnemyState struct {
	Pos      vmath.Vec3 `json:"pos"`
	Vel      vmath.Vec3 `json:"vel"`
	Grounded bool       `json:"grounded"`
}

type BombState struct {
	Pos  vmath.Vec3 `json:"pos"`
	Vel  vmath.Vec3 `json:"vel"`
	Fuse float64    `json:"fuse"`
}

type CompanionState struct {
	Pos       vmath.Vec3 `json:"pos"`
	Species   string     `json:"species"`
	Behavior  string     `json:"behavior"`
	Act       string     `json:"act"`
	Facing    float64    `json:"facing"`
	WalkCycle float64    `json:"walk_cycle"`
	Collected bool       `json:"collected"`
}

// Snapshot copies the current entity state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     w.phase,
		Level:     w.levelIndex,
		Collected: w.collected,
		Target:    w.cfg.Levels[w.levelIndex].TargetCount,
		Player: PlayerState{
			Pos:      w.player.Pos,
			Vel:      w.player.Vel,
			Facing:   w.player.Facing,
			Stamina:  w.player.Stamina,
			Grounded: w.player.Grounded,
		},
	}

	if w.chaser != nil {
		snap.Chaser = &EnemyState{Pos: w.chaser.Pos, Vel: w.chaser.Vel, Grounded: w.chaser.Grounded}
	}
	if w.bomber != nil {
		snap.Bomber = &EnemyState{Pos: w.bomber.Pos, Vel: w.bomber.Vel, Grounded: w.bomber.Grounded}
	}

	for _, b := range w.bombs.Slots() {
		if !b.Active {
			continue
		}
		snap.Bombs = append(snap.Bombs, BombState{Pos: b.Pos, Vel: b.Vel, Fuse: b.Fuse})
	}

	snap.Companions = make([]CompanionState, 0, len(w.companions))
	for i := range w.companions {
		c := &w.companions[i]
		snap.Companions = append(snap.Companions, CompanionState{
			Pos:       c.Pos,
			Species:   c.Species.String(),
			Behavior:  c.Behavior.String(),
			Act:       c.Act.String(),
			Facing:    c.Facing,
			WalkCycle: c.WalkCycle,
			Collected: c.Collected,
		})
	}
	return snap
}
