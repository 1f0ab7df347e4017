// Field preview tool - interactive particle field with parameter sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/field"
	"github.com/pthm-cable/plexus/renderer"
)

const (
	windowWidth  = 1200
	windowHeight = 720
	panelWidth   = 320
	previewW     = windowWidth - panelWidth
	previewH     = windowHeight
)

// PreviewParams holds the tunable field parameters.
type PreviewParams struct {
	Count        int
	LinkDistance float32
	LinkMaxAlpha float32
	SpeedMax     float32
	Seed         int64
}

func defaultPreviewParams() PreviewParams {
	return PreviewParams{
		Count:        field.DefaultCount,
		LinkDistance: 120,
		LinkMaxAlpha: 0.15,
		SpeedMax:     1,
		Seed:         1,
	}
}

func (p PreviewParams) fieldParams() field.Params {
	fp := field.DefaultParams()
	fp.LinkDistance = float64(p.LinkDistance)
	fp.LinkMaxAlpha = float64(p.LinkMaxAlpha)
	fp.SpeedMax = float64(p.SpeedMax)
	return fp
}

func (p PreviewParams) yaml() string {
	return fmt.Sprintf(`field:
  count: %d
  speed_max: %.2f
links:
  distance: %.1f
  max_alpha: %.3f`,
		p.Count, p.SpeedMax, p.LinkDistance, p.LinkMaxAlpha)
}

// newSimulator builds a field on surface from params.
func newSimulator(surface field.Surface, p PreviewParams) *field.Simulator {
	sim := field.NewSimulator(surface, p.fieldParams(), rand.New(rand.NewSource(p.Seed)))
	sim.Configure(p.Count, previewW, previewH)
	return sim
}

func main() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Particle Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultPreviewParams()
	surface := renderer.NewSurface(rl.White)
	sim := newSimulator(surface, params)

	animating := true
	needsRebuild := false

	for !rl.WindowShouldClose() {
		if needsRebuild {
			sim = newSimulator(surface, params)
			needsRebuild = false
		}
		if animating {
			sim.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview, clipped to the left area
		rl.BeginScissorMode(0, 0, previewW, previewH)
		sim.Draw()
		rl.EndScissorMode()
		rl.DrawLine(previewW, 0, previewW, windowHeight, rl.LightGray)

		// Control panel
		panelX := float32(previewW + 15)
		panelY := float32(10)
		sliderW := float32(panelWidth - 100)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Count slider
		rl.DrawText("Particle count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
			"0", "400",
			float32(params.Count), 0, 400,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Count), int32(panelX+sliderW+35), int32(panelY+2), 16, rl.DarkGray)
		if int(newCount) != params.Count {
			params.Count = int(newCount)
			needsRebuild = true
		}
		panelY += 35

		// Link distance slider
		rl.DrawText("Link distance (px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDistance := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
			"0", "300",
			params.LinkDistance, 0, 300,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.LinkDistance), int32(panelX+sliderW+35), int32(panelY+2), 16, rl.DarkGray)
		if newDistance != params.LinkDistance {
			params.LinkDistance = newDistance
			needsRebuild = true
		}
		panelY += 35

		// Link alpha slider
		rl.DrawText("Link alpha at distance 0", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAlpha := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
			"0", "1",
			params.LinkMaxAlpha, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.LinkMaxAlpha), int32(panelX+sliderW+35), int32(panelY+2), 16, rl.DarkGray)
		if newAlpha != params.LinkMaxAlpha {
			params.LinkMaxAlpha = newAlpha
			needsRebuild = true
		}
		panelY += 35

		// Speed slider
		rl.DrawText("Max speed (px/tick per axis)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
			"0", "5",
			params.SpeedMax, 0, 5,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.SpeedMax), int32(panelX+sliderW+35), int32(panelY+2), 16, rl.DarkGray)
		if newSpeed != params.SpeedMax {
			params.SpeedMax = newSpeed
			needsRebuild = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(1, 99999))
			needsRebuild = true
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultPreviewParams()
			needsRebuild = true
		}
		panelY += 50

		// Live stats
		links := sim.Links()
		perParticle := float64(0)
		if sim.Len() > 0 {
			perParticle = 2 * float64(len(links)) / float64(sim.Len())
		}
		rl.DrawText(fmt.Sprintf("Links: %d  (%.2f per particle)", len(links), perParticle), int32(panelX), int32(panelY), 14, rl.DarkGray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("Seed: %d  FPS: %d", params.Seed, rl.GetFPS()), int32(panelX), int32(panelY), 14, rl.DarkGray)
		panelY += 35

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		rl.DrawText(params.yaml(), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(params.yaml())
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
