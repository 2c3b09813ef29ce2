package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	levelPath := flag.String("level", "", "campaign yaml path (empty uses the embedded campaign)")
	tuningPath := flag.String("tuning", "", "gameplay tuning overrides yaml")
	seed := flag.Uint("seed", 1, "companion personality seed")
	debug := flag.Bool("debug", false, "draw AI ranges and verbose logs")
	listen := flag.String("listen", "", "UDP address to receive remote snapshots on")
	connect := flag.String("connect", "", "UDP address to stream snapshots to")
	sendRate := flag.Float64("send-rate", 20, "snapshot packets per second")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(Options{
		LevelPath:  *levelPath,
		TuningPath: *tuningPath,
		Seed:       uint32(*seed),
		Debug:      *debug,
		ListenAddr: *listen,
		RemoteAddr: *connect,
		SendRate:   *sendRate,
	}, logger)
	if err != nil {
		logger.Fatal("starting game", zap.Error(err))
	}
	defer game.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer3d")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}
