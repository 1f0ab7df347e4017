// Package game drives the particle field: it owns the run/pause state and
// the visibility gate, and runs one update and draw per host tick.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/plexus/field"
	"github.com/pthm-cable/plexus/telemetry"
)

// Speed limits for steps per update.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// Game holds the complete driver state.
type Game struct {
	sim  *field.Simulator
	rng  *rand.Rand
	opts Options

	// State
	tick           int64 // driver ticks
	steps          int64 // simulation steps
	paused         bool
	visible        bool
	stepsPerUpdate int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a driver rendering onto surface and populates the field.
// It fails only when the output directory cannot be prepared.
func NewGame(surface field.Surface, opts Options) (*Game, error) {
	if opts.Params == (field.Params{}) {
		opts.Params = field.DefaultParams()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		sim:            field.NewSimulator(surface, opts.Params, rng),
		rng:            rng,
		opts:           opts,
		paused:         opts.ReducedMotion,
		visible:        true,
		stepsPerUpdate: clampSpeed(opts.StepsPerUpdate),
		collector:      telemetry.NewCollector(opts.StatsWindowTicks, opts.DT),
		perfCollector:  telemetry.NewPerfCollector(opts.PerfWindow),
		logStats:       opts.LogStats,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if opts.Config != nil {
		if err := om.WriteConfig(opts.Config); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config: %w", err)
		}
	}

	g.sim.Configure(opts.Count, opts.Width, opts.Height)
	g.logFieldState("field configured")
	return g, nil
}

// SetStatsCallback registers a function called with every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Tick runs one driver tick: stepsPerUpdate simulation steps unless paused,
// then a draw if the surface is visible.
func (g *Game) Tick() {
	g.perfCollector.StartTick()

	if !g.paused {
		g.perfCollector.StartPhase(telemetry.PhaseUpdate)
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.collector.RecordBounces(g.sim.Update())
			g.steps++
		}
	}

	if g.visible {
		g.perfCollector.StartPhase(telemetry.PhaseDraw)
		g.sim.Draw()
		g.perfCollector.RecordFrame()
	}

	g.tick++
	g.collector.RecordTick(g.visible, g.paused)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// SetVisible sets the visibility gate. While hidden, ticks keep advancing
// the field but nothing is drawn.
func (g *Game) SetVisible(visible bool) {
	if g.visible == visible {
		return
	}
	g.visible = visible
	slog.Info("visibility changed", "visible", visible, "tick", g.tick)
}

// Resize forwards new surface dimensions to the simulator when they differ
// from the current ones. Negative dimensions count as zero.
func (g *Game) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	w, h := g.sim.Size()
	if width == w && height == h {
		return
	}
	g.sim.OnSurfaceResize(width, height)
	g.collector.RecordResize()
	g.logFieldState("surface resized")
}

// TogglePause pauses or resumes the simulation. Drawing continues while paused.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	slog.Info("pause toggled", "paused", g.paused, "tick", g.tick)
}

// Reseed replaces the field with freshly sampled particles, keeping the
// particle count and surface size.
func (g *Game) Reseed() {
	w, h := g.sim.Size()
	g.sim.Configure(g.sim.Len(), w, h)
	g.collector.RecordReseed()
	g.logFieldState("field reseeded")
}

// SetSpeed sets the simulation steps per driver tick, clamped to [MinSpeed, MaxSpeed].
func (g *Game) SetSpeed(n int) {
	g.stepsPerUpdate = clampSpeed(n)
}

func clampSpeed(n int) int {
	return min(max(n, MinSpeed), MaxSpeed)
}

// Status returns the current driver state.
func (g *Game) Status() Status {
	w, h := g.sim.Size()
	return Status{
		Tick:      g.tick,
		Steps:     g.steps,
		Particles: g.sim.Len(),
		Links:     len(g.sim.CurrentLinks()),
		Speed:     g.stepsPerUpdate,
		Paused:    g.paused,
		Visible:   g.visible,
		Width:     w,
		Height:    h,
	}
}

// Simulator returns the underlying field simulator.
func (g *Game) Simulator() *field.Simulator {
	return g.sim
}

// Ticks returns the number of driver ticks run.
func (g *Game) Ticks() int64 {
	return g.tick
}

// Steps returns the number of simulation steps applied.
func (g *Game) Steps() int64 {
	return g.steps
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Visible reports whether drawing is enabled.
func (g *Game) Visible() bool {
	return g.visible
}

// Speed returns the current steps per update.
func (g *Game) Speed() int {
	return g.stepsPerUpdate
}

// PerfStats returns the rolling tick timings.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
