package systems

import (
	"testing"

	"github.com/pthm-cable/plexus/components"
)

func TestSpatialGridVisitsCandidatePairsOnce(t *testing.T) {
	g := NewSpatialGrid()
	points := []components.Position{
		{X: 0, Y: 0},
		{X: 10, Y: 0},    // same cell as 0
		{X: 25, Y: 25},   // diagonal neighbour
		{X: 100, Y: 100}, // far from everything
	}
	g.Build(points, 20)

	seen := make(map[[2]int]int)
	g.ForEachCandidatePair(func(i, j int) {
		if i >= j {
			t.Errorf("pair (%d, %d) not ordered", i, j)
		}
		seen[[2]int{i, j}]++
	})

	for _, want := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if seen[want] != 1 {
			t.Errorf("pair %v visited %d times, want 1", want, seen[want])
		}
	}
	for _, far := range [][2]int{{0, 3}, {1, 3}, {2, 3}} {
		if seen[far] != 0 {
			t.Errorf("far pair %v visited", far)
		}
	}
}

func TestSpatialGridCapsDimensions(t *testing.T) {
	g := NewSpatialGrid()
	points := []components.Position{{X: 0, Y: 0}, {X: 1e7, Y: 5}, {X: 3, Y: 4}}
	g.Build(points, 10)

	if g.cols > maxGridDim || g.rows > maxGridDim {
		t.Fatalf("grid %dx%d exceeds cap %d", g.cols, g.rows, maxGridDim)
	}

	found := false
	g.ForEachCandidatePair(func(i, j int) {
		if i == 0 && j == 2 {
			found = true
		}
	})
	if !found {
		t.Error("close pair (0, 2) not offered after widening cells")
	}
}

func TestSpatialGridEmpty(t *testing.T) {
	g := NewSpatialGrid()
	g.Build(nil, 10)
	g.ForEachCandidatePair(func(i, j int) {
		t.Errorf("unexpected pair (%d, %d)", i, j)
	})
}
