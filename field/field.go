// Package field implements the ambient particle field: a fixed set of
// drifting points rendered with fading connection lines between near
// neighbours.
package field

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/systems"
)

// DefaultCount is the particle count used by the page.
const DefaultCount = 80

// Params holds the sampling ranges and render constants of a field.
// Ranges are half-open: [Min, Max).
type Params struct {
	RadiusMin, RadiusMax   float64
	SpeedMax               float64 // each velocity component is sampled from [-SpeedMax, SpeedMax)
	OpacityMin, OpacityMax float64

	LinkDistance float64
	LinkMaxAlpha float64
	LinkWidth    float64

	Accent Color
}

// DefaultParams returns the observed production values.
func DefaultParams() Params {
	return Params{
		RadiusMin:    1,
		RadiusMax:    4,
		SpeedMax:     1,
		OpacityMin:   0.2,
		OpacityMax:   0.7,
		LinkDistance: 120,
		LinkMaxAlpha: 0.15,
		LinkWidth:    1,
		Accent:       Color{R: 37, G: 99, B: 235, A: 1},
	}
}

// Particle is a value snapshot of one particle.
type Particle struct {
	components.Position
	Velocity components.Velocity
	components.Appearance
}

// Simulator owns a particle field and the surface it renders onto.
// It is not safe for concurrent use; a single driver goroutine calls it.
type Simulator struct {
	params  Params
	rng     *rand.Rand
	surface Surface

	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Appearance]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Appearance]

	physics *systems.PhysicsSystem
	links   *systems.LinkSystem
	measure *systems.LinkSystem // undrawn link passes; keeps lastLinks intact

	count         int
	width, height int

	// Scratch buffers reused by Draw.
	points    []components.Position
	lastLinks []systems.Link

	// Links at the current positions when nothing was drawn since the last
	// Update. drawnFresh and measuredFresh say which slice is current.
	measured      []components.Position
	measuredLinks []systems.Link
	drawnFresh    bool
	measuredFresh bool
}

// NewSimulator creates an empty simulator drawing onto surface.
// Call Configure to populate it.
func NewSimulator(surface Surface, params Params, rng *rand.Rand) *Simulator {
	s := &Simulator{
		params:  params,
		rng:     rng,
		surface: surface,
		links:   systems.NewLinkSystem(params.LinkDistance, params.LinkMaxAlpha),
		measure: systems.NewLinkSystem(params.LinkDistance, params.LinkMaxAlpha),
	}
	s.resetWorld()
	return s
}

func (s *Simulator) resetWorld() {
	s.world = ecs.NewWorld()
	s.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Appearance](s.world)
	s.filter = ecs.NewFilter3[components.Position, components.Velocity, components.Appearance](s.world)
	s.physics = systems.NewPhysicsSystem(s.world, s.bounds())
}

func (s *Simulator) bounds() systems.Bounds {
	return systems.Bounds{Width: float64(s.width), Height: float64(s.height)}
}

// Configure replaces the field with count freshly sampled particles on a
// surface of the given size. Negative values are treated as zero; an empty
// field or a zero-sized surface is valid.
func (s *Simulator) Configure(count, width, height int) {
	s.count = max(count, 0)
	s.width = max(width, 0)
	s.height = max(height, 0)

	s.resetWorld()
	s.surface.Resize(s.width, s.height)

	p := s.params
	w, h := float64(s.width), float64(s.height)
	for i := 0; i < s.count; i++ {
		pos := components.Position{
			X: s.rng.Float64() * w,
			Y: s.rng.Float64() * h,
		}
		app := components.Appearance{
			Radius:  p.RadiusMin + s.rng.Float64()*(p.RadiusMax-p.RadiusMin),
			Opacity: p.OpacityMin + s.rng.Float64()*(p.OpacityMax-p.OpacityMin),
		}
		vel := components.Velocity{
			X: (s.rng.Float64()*2 - 1) * p.SpeedMax,
			Y: (s.rng.Float64()*2 - 1) * p.SpeedMax,
		}
		s.mapper.NewEntity(&pos, &vel, &app)
	}

	s.points = make([]components.Position, 0, s.count)
	s.lastLinks = s.lastLinks[:0]
	s.drawnFresh, s.measuredFresh = false, false
}

// OnSurfaceResize applies new surface dimensions to the drawing buffer and
// the reflection bounds. Particles keep their positions, even when they now
// lie outside the new bounds.
func (s *Simulator) OnSurfaceResize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.surface.Resize(s.width, s.height)
	s.physics.SetBounds(s.bounds())
}

// Update advances every particle by one tick. Returns the number of
// velocity components reflected.
func (s *Simulator) Update() int {
	s.drawnFresh, s.measuredFresh = false, false
	return s.physics.Update()
}

// Draw clears the surface, draws every particle, then draws a line between
// every pair closer than the link distance.
func (s *Simulator) Draw() {
	s.surface.Clear()

	p := s.params
	s.points = s.points[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, _, app := query.Get()
		s.surface.FillCircle(pos.X, pos.Y, app.Radius, p.Accent.WithAlpha(app.Opacity))
		s.points = append(s.points, *pos)
	}

	s.lastLinks = s.links.Find(s.points)
	s.drawnFresh = true
	for _, l := range s.lastLinks {
		a, b := s.points[l.A], s.points[l.B]
		s.surface.StrokeLine(a.X, a.Y, b.X, b.Y, p.LinkWidth, p.Accent.WithAlpha(l.Alpha))
	}
}

// Len returns the number of particles.
func (s *Simulator) Len() int {
	return s.count
}

// Size returns the current surface dimensions.
func (s *Simulator) Size() (width, height int) {
	return s.width, s.height
}

// Params returns the field parameters.
func (s *Simulator) Params() Params {
	return s.params
}

// Links returns the links drawn by the last Draw. The slice is reused.
func (s *Simulator) Links() []systems.Link {
	return s.lastLinks
}

// CurrentLinks returns the links between the particles' current positions.
// When particles moved since the last Draw, the link pass runs without
// drawing; Links keeps reporting what was drawn. The slice is reused.
func (s *Simulator) CurrentLinks() []systems.Link {
	if s.drawnFresh {
		return s.lastLinks
	}
	if !s.measuredFresh {
		s.measured = s.Positions(s.measured[:0])
		s.measuredLinks = s.measure.Find(s.measured)
		s.measuredFresh = true
	}
	return s.measuredLinks
}

// Particles returns a copy of every particle in storage order.
func (s *Simulator) Particles() []Particle {
	out := make([]Particle, 0, s.count)
	query := s.filter.Query()
	for query.Next() {
		pos, vel, app := query.Get()
		out = append(out, Particle{Position: *pos, Velocity: *vel, Appearance: *app})
	}
	return out
}

// Positions appends every particle position to dst in storage order.
func (s *Simulator) Positions(dst []components.Position) []components.Position {
	query := s.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		dst = append(dst, *pos)
	}
	return dst
}
