package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/sim"
	"github.com/milk9111/platformer3d/transport"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Options collects everything main parses off the command line.
type Options struct {
	LevelPath  string
	TuningPath string
	Seed       uint32
	Debug      bool
	ListenAddr string
	RemoteAddr string
	SendRate   float64
}

type Game struct {
	opts Options
	log  *zap.Logger

	world  *sim.World
	tun    sim.Tuning
	input  *Input
	beeper *Beeper

	watcher  *level.Watcher
	sender   *transport.Sender
	receiver *transport.Receiver

	last      time.Time
	flash     float64 // screen flash after a blast, seconds remaining
	banner    string
	bannerTTL float64
}

func NewGame(opts Options, log *zap.Logger) (*Game, error) {
	g := &Game{
		opts:   opts,
		log:    log,
		input:  &Input{},
		beeper: NewBeeper(),
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	g.tun = sim.DefaultTuning()
	if opts.TuningPath != "" {
		if g.tun, err = sim.LoadTuning(opts.TuningPath); err != nil {
			return nil, err
		}
	}

	g.world, err = sim.New(cfg,
		sim.WithLogger(log.Named("sim")),
		sim.WithAudio(g.beeper),
		sim.WithTuning(g.tun),
		sim.WithSeed(opts.Seed),
	)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if opts.LevelPath != "" {
		g.watcher, err = level.NewWatcher(filepath.Dir(opts.LevelPath))
		if err != nil {
			// hot reload is a convenience, not a requirement
			log.Warn("level watcher unavailable", zap.Error(err))
		}
	}
	if opts.RemoteAddr != "" {
		g.sender, err = transport.NewSender(opts.RemoteAddr, opts.SendRate, log.Named("transport"))
		if err != nil {
			return nil, err
		}
		log.Info("streaming snapshots",
			zap.String("addr", opts.RemoteAddr),
			zap.String("session", g.sender.Session().String()))
	}
	if opts.ListenAddr != "" {
		g.receiver, err = transport.NewReceiver(opts.ListenAddr, log.Named("transport"))
		if err != nil {
			return nil, err
		}
		log.Info("listening for remote snapshots", zap.String("addr", opts.ListenAddr))
	}

	return g, nil
}

func (g *Game) loadConfig() (*level.Config, error) {
	if g.opts.LevelPath == "" {
		return level.LoadDefault()
	}
	return level.Load(g.opts.LevelPath)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.pollReload()

	in := g.input.Update(dt)
	g.world.Advance(dt, in)

	for _, e := range g.world.Events() {
		g.handleEvent(e)
	}
	g.flash = max(0, g.flash-dt)
	g.bannerTTL = max(0, g.bannerTTL-dt)

	if g.sender != nil {
		if _, err := g.sender.Send(g.world.Snapshot()); err != nil {
			g.log.Warn("snapshot send", zap.Error(err))
		}
	}
	return nil
}

// pollReload rebuilds the world when the campaign file on disk changes. A
// config that no longer validates keeps the old world running.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) == filepath.Clean(g.opts.LevelPath) {
				changed = true
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("level watcher", zap.Error(err))
			}
		default:
			if !changed {
				return
			}
			cfg, err := g.loadConfig()
			if err != nil {
				g.log.Warn("reload rejected", zap.Error(err))
				return
			}
			world, err := sim.New(cfg,
				sim.WithLogger(g.log.Named("sim")),
				sim.WithAudio(g.beeper),
				sim.WithTuning(g.tun),
				sim.WithSeed(g.opts.Seed),
			)
			if err != nil {
				g.log.Warn("reload rejected", zap.Error(err))
				return
			}
			g.world = world
			g.log.Info("campaign reloaded", zap.String("path", g.opts.LevelPath))
			return
		}
	}
}

func (g *Game) handleEvent(e sim.Event) {
	switch e.Kind {
	case sim.EventBlast, sim.EventCaught:
		g.flash = 0.35
	case sim.EventAdvance:
		g.banner = "LEVEL 2"
		g.bannerTTL = 3
	case sim.EventVictory:
		g.banner = "ALL COMPANIONS HOME"
		g.bannerTTL = 60
	}
	if g.opts.Debug {
		g.log.Debug("sim event", zap.String("kind", string(e.Kind)), zap.Int("index", e.Index))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawRemotes(screen)
	g.drawHUD(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.sender != nil {
		_ = g.sender.Close()
	}
	if g.receiver != nil {
		_ = g.receiver.Close()
	}
}
