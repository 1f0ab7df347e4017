package game

import (
	"log/slog"

	"github.com/pthm-cable/plexus/telemetry"
)

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleField())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		g.logPerfStats(perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleField collects the per-particle and per-link values for a stats window.
// Links are measured at the current positions, drawn or not.
func (g *Game) sampleField() telemetry.FieldSample {
	w, h := g.sim.Size()
	sample := telemetry.FieldSample{
		Particles: g.sim.Len(),
		Width:     w,
		Height:    h,
	}

	fw, fh := float64(w), float64(h)
	particles := g.sim.Particles()
	sample.Speeds = make([]float64, 0, len(particles))
	for _, p := range particles {
		sample.Speeds = append(sample.Speeds, p.Velocity.Speed())
		if p.X < 0 || p.X > fw || p.Y < 0 || p.Y > fh {
			sample.OutOfBounds++
		}
	}

	links := g.sim.CurrentLinks()
	sample.LinkDistances = make([]float64, 0, len(links))
	sample.LinkAlphas = make([]float64, 0, len(links))
	for _, l := range links {
		sample.LinkDistances = append(sample.LinkDistances, l.Distance)
		sample.LinkAlphas = append(sample.LinkAlphas, l.Alpha)
	}
	return sample
}
