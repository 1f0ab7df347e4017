package systems

import (
	"cmp"
	"slices"

	"github.com/pthm-cable/plexus/components"
)

// gridThreshold is the point count from which Find buckets points into a
// spatial grid instead of testing every pair.
const gridThreshold = 256

// Link is a proximity connection between two particles, identified by their
// index in the position slice passed to LinkSystem.Find.
type Link struct {
	A, B     int
	Distance float64
	Alpha    float64
}

// LinkSystem finds particle pairs closer than a threshold distance.
// The link buffer is reused across calls.
type LinkSystem struct {
	maxDistance float64
	maxAlpha    float64
	links       []Link
	grid        *SpatialGrid
}

// NewLinkSystem creates a link system. Pairs with distance strictly below
// maxDistance are linked; alpha decays linearly from maxAlpha at distance 0
// to zero at maxDistance.
func NewLinkSystem(maxDistance, maxAlpha float64) *LinkSystem {
	return &LinkSystem{
		maxDistance: maxDistance,
		maxAlpha:    maxAlpha,
		links:       make([]Link, 0, 256),
		grid:        NewSpatialGrid(),
	}
}

// Find returns every pair of points closer than the link distance, each
// pair once with A < B, ordered by (A, B). The returned slice is only valid
// until the next call.
func (s *LinkSystem) Find(points []components.Position) []Link {
	s.links = s.links[:0]
	if s.maxDistance <= 0 {
		return s.links
	}
	if len(points) >= gridThreshold {
		return s.findGrid(points)
	}
	return s.findAll(points)
}

// findAll tests every unordered pair.
func (s *LinkSystem) findAll(points []components.Position) []Link {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			s.tryLink(points, i, j)
		}
	}
	return s.links
}

// findGrid tests only pairs in adjacent grid cells, then restores pair order.
func (s *LinkSystem) findGrid(points []components.Position) []Link {
	s.grid.Build(points, s.maxDistance)
	s.grid.ForEachCandidatePair(func(i, j int) {
		s.tryLink(points, i, j)
	})
	slices.SortFunc(s.links, func(a, b Link) int {
		return cmp.Or(cmp.Compare(a.A, b.A), cmp.Compare(a.B, b.B))
	})
	return s.links
}

// tryLink appends a link for (i, j) if the points are close enough.
func (s *LinkSystem) tryLink(points []components.Position, i, j int) {
	a, b := points[i], points[j]
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx*dx+dy*dy >= s.maxDistance*s.maxDistance {
		return
	}
	d := a.DistanceTo(b)
	if d >= s.maxDistance {
		return
	}
	s.links = append(s.links, Link{
		A:        i,
		B:        j,
		Distance: d,
		Alpha:    LinkAlpha(d, s.maxDistance, s.maxAlpha),
	})
}

// LinkAlpha returns maxAlpha * (1 - d/maxDistance) for d in [0, maxDistance)
// and zero otherwise.
func LinkAlpha(d, maxDistance, maxAlpha float64) float64 {
	if maxDistance <= 0 || d >= maxDistance {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return maxAlpha * (1 - d/maxDistance)
}
