package game

import (
	"context"
	"log/slog"
)

// Run drives the game until the host closes, ctx is cancelled, or
// MaxTicks driver ticks have run. Each iteration asks the host for exactly
// one frame, applies it, ticks, and presents the resulting status.
// Returns ctx.Err() when stopped by cancellation and nil otherwise.
func (g *Game) Run(ctx context.Context, host Host) error {
	slog.Info("run started",
		"seed", g.opts.Seed,
		"max_ticks", g.opts.MaxTicks,
		"steps_per_update", g.stepsPerUpdate,
		"paused", g.paused,
	)

	for {
		frame, ok := host.NextFrame(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				slog.Info("run cancelled", "tick", g.tick)
				return err
			}
			slog.Info("host closed", "tick", g.tick)
			return nil
		}

		g.applyFrame(frame)
		g.Tick()
		host.Present(g.Status())

		if g.opts.MaxTicks > 0 && g.tick >= g.opts.MaxTicks {
			slog.Info("max ticks reached", "tick", g.tick, "steps", g.steps)
			return nil
		}
	}
}

// applyFrame applies the host's size, visibility and commands ahead of a tick.
func (g *Game) applyFrame(f Frame) {
	g.Resize(f.Width, f.Height)
	g.SetVisible(f.Visible)
	g.handleCommands(f.Commands)
}
