// Package components defines ECS components for the particle field.
package components

// Position represents a particle's surface-local position in pixels.
type Position struct {
	X, Y float64
}

// Velocity represents a particle's velocity in pixels per tick.
type Velocity struct {
	X, Y float64
}

// Appearance holds the render attributes fixed at creation.
// Neither field changes for the lifetime of the particle.
type Appearance struct {
	Radius  float64
	Opacity float64 // alpha applied to the accent color, 0-1
}

// Speed returns the velocity magnitude.
func (v Velocity) Speed() float64 {
	return hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return hypot(p.X-o.X, p.Y-o.Y)
}
