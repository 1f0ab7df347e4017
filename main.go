package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N driver ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation steps per driver tick (1-10)")
	reducedMotion := flag.Bool("reduced-motion", false, "Start paused: draw the field without animating it")
	headlessFPS := flag.Int("headless-fps", 0, "Headless tick rate (0 = as fast as possible)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	game.SetupLogging(os.Stdout, slog.LevelInfo)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.OptionsFromConfig(cfg)
	opts.Seed = rngSeed
	opts.MaxTicks = *maxTicks
	opts.StepsPerUpdate = *stepsPerUpdate
	opts.LogStats = *logStats
	opts.OutputDir = *outputDir
	opts.ReducedMotion = opts.ReducedMotion || *reducedMotion

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *headless {
		err = runHeadless(ctx, opts, *headlessFPS)
	} else {
		err = runWindow(ctx, opts, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless runs the field against a recording surface with no window.
func runHeadless(ctx context.Context, opts game.Options, fps int) error {
	host := game.NewHeadlessHost(opts.Width, opts.Height, fps)
	defer host.Close()

	g, err := game.NewGame(host.Surface(), opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"particles", opts.Count,
		"max_ticks", opts.MaxTicks,
		"steps_per_update", opts.StepsPerUpdate,
		"fps", fps,
	)
	err = g.Run(ctx, host)
	slog.Info("headless simulation finished",
		"frames", host.Frames(),
		"draws", host.Recorder().Draws(),
		"links", host.LastStatus().Links,
	)
	return err
}

// runWindow opens a raylib window and runs the field until it closes.
func runWindow(ctx context.Context, opts game.Options, cfg *config.Config) error {
	bg := cfg.Derived.Background
	win := renderer.OpenWindow(renderer.WindowConfig{
		Width:      int32(cfg.Screen.Width),
		Height:     int32(cfg.Screen.Height),
		TargetFPS:  int32(cfg.Screen.TargetFPS),
		Title:      cfg.Screen.Title,
		Background: rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255},
	})
	defer win.Close()

	g, err := game.NewGame(win.Surface(), opts)
	if err != nil {
		return err
	}
	defer g.Unload()
	win.SetPerfSource(g.PerfStats)

	return g.Run(ctx, win)
}
