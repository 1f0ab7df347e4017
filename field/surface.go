package field

// Color is an RGB color with a floating-point alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA returns the color components with alpha scaled to 0-255.
func (c Color) RGBA() (r, g, b, a uint8) {
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return c.R, c.G, c.B, uint8(alpha*255 + 0.5)
}

// Surface is the raster target the simulator renders onto.
type Surface interface {
	// Resize sets the drawing buffer's pixel dimensions.
	Resize(width, height int)
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c Color)
	// StrokeLine draws a straight line from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}
