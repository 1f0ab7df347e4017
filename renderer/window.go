package renderer

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/field"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/telemetry"
	"github.com/pthm-cable/plexus/ui"
)

// WindowConfig holds window creation parameters.
type WindowConfig struct {
	Width, Height int32
	TargetFPS     int32
	Title         string
	Background    rl.Color
}

// Window is a game.Host backed by a resizable raylib window. A frame spans
// NextFrame to Present: NextFrame begins drawing and Present draws the HUD
// and ends it, which also paces the loop at the target FPS.
type Window struct {
	surface *Surface
	hud     *ui.HUD
	title   string
	perf    func() telemetry.PerfStats

	pending []game.Command // issued through the HUD, delivered next frame
	drawing bool
}

// OpenWindow creates the raylib window. Call Close when done.
func OpenWindow(cfg WindowConfig) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	rl.SetTargetFPS(cfg.TargetFPS)
	rl.SetExitKey(rl.KeyNull)

	return &Window{
		surface: NewSurface(cfg.Background),
		hud:     ui.NewHUD(10, 10, 220),
		title:   cfg.Title,
	}
}

// SetPerfSource sets where the HUD reads tick timings from.
func (w *Window) SetPerfSource(fn func() telemetry.PerfStats) {
	w.perf = fn
}

// NextFrame polls input and window state and begins a raylib frame.
func (w *Window) NextFrame(ctx context.Context) (game.Frame, bool) {
	if ctx.Err() != nil || rl.WindowShouldClose() {
		return game.Frame{}, false
	}

	cmds := w.pending
	w.pending = nil
	cmds = append(cmds, w.handleInput()...)

	rl.BeginDrawing()
	w.drawing = true

	return game.Frame{
		Width:    rl.GetScreenWidth(),
		Height:   rl.GetScreenHeight(),
		Visible:  !rl.IsWindowMinimized() && !rl.IsWindowHidden(),
		Commands: cmds,
	}, true
}

// handleInput processes keyboard input.
func (w *Window) handleInput() []game.Command {
	var cmds []game.Command

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		slog.Info("hud toggled", "visible", w.hud.Toggle())
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		cmds = append(cmds, game.Command{Kind: game.CmdTogglePause})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		cmds = append(cmds, game.Command{Kind: game.CmdReseed})
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		cmds = append(cmds, game.Command{Kind: game.CmdSlower})
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		cmds = append(cmds, game.Command{Kind: game.CmdFaster})
	}
	return cmds
}

// Surface returns the raylib surface.
func (w *Window) Surface() field.Surface {
	return w.surface
}

// Present draws the HUD over the field and ends the frame.
func (w *Window) Present(s game.Status) {
	if !w.drawing {
		return
	}
	if s.Visible {
		data := ui.HUDData{
			Title:  w.title,
			Status: s,
			FPS:    rl.GetFPS(),
		}
		if w.perf != nil {
			data.Perf = w.perf()
		}
		w.pending = append(w.pending, w.hud.Draw(data)...)
		w.hud.DrawControls(int32(rl.GetScreenHeight()))
	}
	rl.EndDrawing()
	w.drawing = false
}

// Close closes the window.
func (w *Window) Close() {
	rl.CloseWindow()
}
