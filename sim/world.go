package sim

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/vmath"
)

// maxFrameTime caps how much wall-clock time one Advance call may simulate,
// so a stalled frame (window drag, debugger) doesn't spiral the accumulator.
const maxFrameTime = 0.25

var errTooFewLevels = errors.New("sim: campaign needs two levels")

// World owns every entity and runs the fixed-timestep simulation. All
// mutation happens inside Step on the caller's goroutine; renderers and
// transports read through Snapshot.
type World struct {
	cfg   *level.Config
	tun   Tuning
	log   *zap.Logger
	audio AudioSink
	seed  uint32

	levelIndex int
	platforms  []level.Platform
	player     Player
	chaser     *Chaser
	bomber     *Bomber
	bombs      *BombPool
	companions []Companion

	phase            Phase
	collected        int
	advanceAnnounced bool
	victoryAnnounced bool

	accum  float64
	events eventQueue
}

// Option configures a World.
type Option func(*World)

func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

func WithAudio(sink AudioSink) Option {
	return func(w *World) {
		if sink != nil {
			w.audio = sink
		}
	}
}

func WithTuning(tun Tuning) Option {
	return func(w *World) { w.tun = tun }
}

// WithSeed fixes the companion personality streams.
func WithSeed(seed uint32) Option {
	return func(w *World) { w.seed = seed }
}

// New builds a world from a validated campaign config. Configs the
// simulation cannot establish a grounded state on are rejected here rather
// than producing NaN positions later.
func New(cfg *level.Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Levels) < 2 {
		return nil, errTooFewLevels
	}

	w := &World{
		cfg:   cfg,
		tun:   DefaultTuning(),
		log:   zap.NewNop(),
		audio: NopAudio{},
		seed:  1,
	}
	for _, opt := range opts {
		opt(w)
	}

	bombs, err := NewBombPool(w.tun.BombCapacity)
	if err != nil {
		return nil, fmt.Errorf("sim: new world: %w", err)
	}
	w.bombs = bombs

	w.loadLevel(0)
	return w, nil
}

// loadLevel swaps in a stage's layout and entities. Level 0 fields the
// chaser, level 1 the bomber.
func (w *World) loadLevel(idx int) {
	lvl := &w.cfg.Levels[idx]
	w.levelIndex = idx
	w.platforms = lvl.Platforms

	w.player = NewPlayer(lvl.PlayerSpawn.V())

	w.chaser = nil
	w.bomber = nil
	if idx == 0 {
		w.chaser = NewChaser(lvl.EnemySpawn.V())
	} else {
		w.bomber = NewBomber(lvl.EnemySpawn.V(), &w.tun)
	}
	w.bombs.Clear()

	w.companions = make([]Companion, 0, len(lvl.Companions))
	for i, spawn := range lvl.Companions {
		species := SpeciesCat
		if spawn.Species == "dog" {
			species = SpeciesDog
		}
		// knuth multiplicative hash spreads per-instance streams apart
		seed := w.seed + uint32(idx*1000+i)*2654435761
		w.companions = append(w.companions, NewCompanion(spawn.Position.V(), species, seed))
	}
	w.collected = 0
}

// Advance accumulates wall-clock time and runs as many fixed steps as fit.
// The external clock only schedules; physics always integrates FixedStep.
func (w *World) Advance(elapsed float64, in Input) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	w.accum += elapsed
	for w.accum >= w.tun.FixedStep {
		w.Step(w.tun.FixedStep, in)
		w.accum -= w.tun.FixedStep
	}
}

// Step runs one simulation tick in the fixed component order: player first,
// then grounding, then the active enemy, bombs, companions, progression.
// Enemies and collection checks always see the player's position for this
// frame, never last frame's.
func (w *World) Step(dt float64, in Input) {
	if w.phase == PhaseWon {
		// the world keeps breathing but the avatar eases to a stop
		in = Input{CameraYaw: in.CameraYaw}
	}

	w.player.Update(in, dt, &w.tun, w.audio)
	ResolvePlatforms(&w.player.Body, w.platforms)
	w.player.afterResolve(w.audio)

	if w.chaser != nil {
		w.chaser.Update(&w.player, w.platforms, dt, &w.tun, w.audio)
		ResolvePlatforms(&w.chaser.Body, w.platforms)
		if w.chaser.CaughtPlayer(&w.player, &w.tun) {
			w.audio.PlayCue(CueCaught)
			w.events.push(Event{Kind: EventCaught, Pos: w.player.Pos, Index: -1})
			w.player.Respawn()
			w.chaser.Reset()
		}
	}

	if w.bomber != nil {
		w.bomber.Update(&w.player, w.bombs, dt, &w.tun, w.audio)
		ResolvePlatforms(&w.bomber.Body, w.platforms)
		w.bombs.Update(&w.player, w.platforms[0].Top(), dt, &w.tun, w.audio, &w.events)
	}

	for i := range w.companions {
		c := &w.companions[i]
		c.Update(i, w.companions, &w.player, dt, &w.tun, w.audio, &w.events)
		ResolvePlatforms(&c.Body, w.platforms)
	}

	w.collected = 0
	for i := range w.companions {
		if w.companions[i].Collected {
			w.collected++
		}
	}

	w.checkProgress()
}

// Events drains the events queued since the last call.
func (w *World) Events() []Event {
	return w.events.drain()
}

// Phase returns the progression state.
func (w *World) Phase() Phase {
	return w.phase
}

// Collected returns how many companions have been picked up this level.
func (w *World) Collected() int {
	return w.collected
}

// Goal returns the active level's exit marker position.
func (w *World) Goal() vmath.Vec3 {
	return w.cfg.Levels[w.levelIndex].Goal.V()
}

// Platforms returns the active level's static layout.
func (w *World) Platforms() []level.Platform {
	return w.platforms
}

// Player returns the avatar for direct inspection. The frontend camera
// follows it; tests poke it.
func (w *World) Player() *Player {
	return &w.player
}

func zapLevelFields(w *World) []zap.Field {
	return []zap.Field{
		zap.Int("level", w.levelIndex),
		zap.Int("collected", w.collected),
		zap.String("phase", w.phase.String()),
	}
}
