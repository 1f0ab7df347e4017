package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/telemetry"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title  string
	Status game.Status
	FPS    int32
	Perf   telemetry.PerfStats
}

// hudFields lists the HUD rows top to bottom.
var hudFields = []StatField{
	{Label: "Tick", Value: func(d HUDData) string { return fmt.Sprintf("%d", d.Status.Tick) }},
	{Label: "Particles", Value: func(d HUDData) string { return fmt.Sprintf("%d", d.Status.Particles) }},
	{Label: "Links", Value: func(d HUDData) string { return fmt.Sprintf("%d", d.Status.Links) }},
	{Label: "Surface", Value: func(d HUDData) string {
		return fmt.Sprintf("%dx%d", d.Status.Width, d.Status.Height)
	}},
	{Label: "FPS", Value: func(d HUDData) string { return fmt.Sprintf("%d", d.FPS) }},
	{Label: "Tick time", Value: func(d HUDData) string {
		return fmt.Sprintf("%dus (draw %.0f%%)", d.Perf.AvgTickDuration.Microseconds(), d.Perf.PhasePct[telemetry.PhaseDraw])
	}, Visible: func(d HUDData) bool { return d.Perf.AvgTickDuration > 0 }},
}

// HUD renders the control overlay. Button and slider interactions are
// returned as driver commands for the next frame.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewHUD creates a visible HUD anchored at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Draw renders the HUD and returns the commands the user issued through it.
func (h *HUD) Draw(data HUDData) []game.Command {
	if !h.visible {
		return nil
	}

	r := h.renderer
	t := r.Theme
	rows := countVisible(hudFields, data)
	// header + rows + state line + buttons + slider
	height := t.Padding*2 + t.LineHeight + 2 + rows*t.LineHeight + t.LineHeight + 2*(t.ButtonHeight+6)
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + t.Padding
	y := r.DrawSectionHeader(x, h.y+t.Padding, data.Title)
	y = r.DrawFields(x, y, hudFields, data)

	state, color := "Running", t.ValueColor
	if data.Status.Paused {
		state, color = "PAUSED", t.WarnColor
	}
	rl.DrawText(state, x, y, t.FontSize, color)
	y += t.LineHeight

	var cmds []game.Command
	inner := float32(h.width - 2*t.Padding)
	bw := (inner - 6) / 2

	pauseLabel := "Pause"
	if data.Status.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: bw, Height: float32(t.ButtonHeight)}, pauseLabel) {
		cmds = append(cmds, game.Command{Kind: game.CmdTogglePause})
	}
	if gui.Button(rl.Rectangle{X: float32(x) + bw + 6, Y: float32(y), Width: bw, Height: float32(t.ButtonHeight)}, "Reseed") {
		cmds = append(cmds, game.Command{Kind: game.CmdReseed})
	}
	y += t.ButtonHeight + 6

	speed := gui.SliderBar(
		rl.Rectangle{X: float32(x) + 40, Y: float32(y), Width: inner - 70, Height: float32(t.ButtonHeight)},
		"Speed", fmt.Sprintf("%dx", data.Status.Speed),
		float32(data.Status.Speed), game.MinSpeed, game.MaxSpeed,
	)
	if n := int(math.Round(float64(speed))); n != data.Status.Speed {
		cmds = append(cmds, game.Command{Kind: game.CmdSetSpeed, Value: n})
	}

	return cmds
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	if !h.visible {
		return
	}
	rl.DrawText("[Space] pause  [R] reseed  [,/.] speed  [H] HUD  [F11] fullscreen",
		10, screenHeight-22, h.renderer.Theme.FontSize, h.renderer.Theme.LabelColor)
}
