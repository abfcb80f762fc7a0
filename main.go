package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"shooter/internal/config"
	"shooter/internal/gamemode"
	"shooter/internal/logger"
	"shooter/internal/terminal"
)

// Used when the display size cannot be queried.
const (
	fallbackWidth  = 960
	fallbackHeight = 720
)

var (
	configFlag     = flag.String("config", "", "Path to a YAML config file")
	backendFlag    = flag.String("backend", "", "Render backend: ebiten, terminal")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	fullscreenFlag = flag.Bool("fullscreen", true, "Run fullscreen at display size (ebiten)")
	logLevelFlag   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	debugFlag      = flag.Bool("debug", false, "Show tick overlay (ebiten)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	zl.Info("starting",
		zap.String("backend", cfg.Backend),
		zap.Int64("seed", seed),
		zap.Int("tick_rate", cfg.TickRate),
	)

	switch cfg.Backend {
	case config.BackendTerminal:
		runTerminal(cfg, zl, rng)
	default:
		runEbiten(cfg, zl, rng)
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "fullscreen":
			cfg.Window.Fullscreen = *fullscreenFlag
		case "log-level":
			cfg.Log.Level = *logLevelFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

// The terminal backend owns stdout and stderr, so it only logs to a file.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Backend == config.BackendTerminal && cfg.Log.File == "" {
		return zap.NewNop(), nil
	}
	return logger.New(cfg.Log)
}

func runEbiten(cfg *config.Config, zl *zap.Logger, rng *rand.Rand) {
	w, h := cfg.Window.Width, cfg.Window.Height
	if w == 0 || h == 0 {
		if m := ebiten.Monitor(); m != nil {
			w, h = m.Size()
		}
	}
	if w == 0 || h == 0 {
		w, h = fallbackWidth, fallbackHeight
	}

	listeners := []gamemode.Listener{gamemode.NewLogListener(zl)}
	if cfg.Audio {
		listeners = append(listeners, newBlipSound())
	}
	shooter := gamemode.New(config.NewArena(w, h), rng, listeners...)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(shooter, w, h, cfg.Debug)); err != nil {
		zl.Fatal("game loop failed", zap.Error(err))
	}
}

func runTerminal(cfg *config.Config, zl *zap.Logger, rng *rand.Rand) {
	screen, err := tcell.NewScreen()
	if err != nil {
		zl.Fatal("terminal unavailable", zap.Error(err))
	}
	backend, err := terminal.New(screen)
	if err != nil {
		zl.Fatal("terminal unavailable", zap.Error(err))
	}
	defer backend.Close()

	// Restore the terminal before printing a crash.
	defer func() {
		if r := recover(); r != nil {
			backend.Close()
			fmt.Fprintf(os.Stderr, "\ncrashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	listeners := []gamemode.Listener{gamemode.NewLogListener(zl)}
	if cfg.Audio {
		if snd, err := terminal.NewSound(); err != nil {
			zl.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer snd.Close()
			listeners = append(listeners, snd)
		}
	}
	shooter := gamemode.New(gamemode.ArenaFor(backend), rng, listeners...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gamemode.Run(ctx, backend, shooter, cfg.TickRate)
}
