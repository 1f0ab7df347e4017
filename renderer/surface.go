// Package renderer draws the particle field into a raylib window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/field"
)

// Surface is a field.Surface drawing straight to the raylib frame buffer.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	background rl.Color
}

// NewSurface creates a surface clearing to background.
func NewSurface(background rl.Color) *Surface {
	return &Surface{background: background}
}

// Resize is a no-op: raylib resizes the window's frame buffer itself.
func (s *Surface) Resize(width, height int) {}

// Clear fills the frame with the background color.
func (s *Surface) Clear() {
	rl.ClearBackground(s.background)
}

// FillCircle draws a filled circle.
func (s *Surface) FillCircle(x, y, radius float64, c field.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(radius), toRL(c))
}

// StrokeLine draws a line of the given width.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c field.Color) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x0), Y: float32(y0)},
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		float32(width),
		toRL(c),
	)
}

func toRL(c field.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.Color{R: r, G: g, B: b, A: a}
}
