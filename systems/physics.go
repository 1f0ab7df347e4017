// Package systems contains ECS systems for the particle field.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plexus/components"
)

// Bounds represents the surface bounds particles bounce within.
type Bounds struct {
	Width, Height float64
}

// PhysicsSystem advances particle positions and reflects them off the bounds.
type PhysicsSystem struct {
	filter ecs.Filter2[components.Position, components.Velocity]
	bounds Bounds
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter2[components.Position, components.Velocity](w),
		bounds: bounds,
	}
}

// SetBounds replaces the reflection bounds. Positions are left untouched.
func (s *PhysicsSystem) SetBounds(b Bounds) {
	s.bounds = b
}

// Bounds returns the current reflection bounds.
func (s *PhysicsSystem) Bounds() Bounds {
	return s.bounds
}

// Update runs one tick for every particle and returns how many velocity
// components were negated.
func (s *PhysicsSystem) Update() int {
	bounces := 0
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		bounces += Advance(pos, vel, s.bounds)
	}
	return bounces
}

// Advance moves pos by vel, then negates each velocity component whose axis
// is now outside [0, bound]. The position is never clamped: a particle that
// crosses an edge renders outside for one tick and heads back on the next.
// Returns the number of components negated (0-2).
func Advance(pos *components.Position, vel *components.Velocity, b Bounds) int {
	pos.X += vel.X
	pos.Y += vel.Y

	n := 0
	if pos.X < 0 || pos.X > b.Width {
		vel.X = -vel.X
		n++
	}
	if pos.Y < 0 || pos.Y > b.Height {
		vel.Y = -vel.Y
		n++
	}
	return n
}
