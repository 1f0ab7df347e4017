package game

import (
	"io"
	"log/slog"

	"github.com/pthm-cable/plexus/telemetry"
)

// SetupLogging installs a JSON slog handler writing to w as the default logger.
func SetupLogging(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// logPerfStats logs performance statistics.
func (g *Game) logPerfStats(stats telemetry.PerfStats) {
	slog.Info("perf",
		"tick", g.tick,
		"speed", g.stepsPerUpdate,
		"perf", stats,
	)
}

// logFieldState logs the field's size and population.
func (g *Game) logFieldState(msg string) {
	w, h := g.sim.Size()
	slog.Info(msg,
		"tick", g.tick,
		"particles", g.sim.Len(),
		"width", w,
		"height", h,
	)
}
