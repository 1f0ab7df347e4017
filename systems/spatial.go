package systems

import (
	"github.com/pthm-cable/plexus/components"
)

// maxGridDim caps the grid size per axis. Particles far outside the surface
// widen the cells instead of growing the grid.
const maxGridDim = 256

// SpatialGrid buckets point indices into square cells no smaller than the
// query radius, so every pair closer than the radius lies in the same or
// adjacent cells.
type SpatialGrid struct {
	cellSize   float64
	minX, minY float64
	cols, rows int
	cells      [][]int32
}

// NewSpatialGrid creates an empty grid. Call Build before querying.
func NewSpatialGrid() *SpatialGrid {
	return &SpatialGrid{}
}

// Build indexes points with cells of at least cellSize covering their
// bounding box. Cell storage is reused across builds.
func (g *SpatialGrid) Build(points []components.Position, cellSize float64) {
	g.cols, g.rows = 0, 0
	if len(points) == 0 || cellSize <= 0 {
		return
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	cs := max(cellSize, spanX/(maxGridDim-1), spanY/(maxGridDim-1))

	g.cellSize = cs
	g.minX, g.minY = minX, minY
	g.cols = int(spanX/cs) + 1
	g.rows = int(spanY/cs) + 1

	n := g.cols * g.rows
	if cap(g.cells) < n {
		g.cells = make([][]int32, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}

	for i, p := range points {
		idx := g.cellIndex(p.X, p.Y)
		g.cells[idx] = append(g.cells[idx], int32(i))
	}
}

// cellIndex returns the flat index for a position inside the bounding box.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	col := min(int((x-g.minX)/g.cellSize), g.cols-1)
	row := min(int((y-g.minY)/g.cellSize), g.rows-1)
	return row*g.cols + col
}

// forwardNeighbors are the cell offsets visited from each cell so that
// every pair of adjacent cells is visited exactly once.
var forwardNeighbors = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// ForEachCandidatePair calls fn(i, j) with i < j once for every pair of
// points in the same or adjacent cells. Pairs in non-adjacent cells are
// farther apart than the build cell size and are skipped.
func (g *SpatialGrid) ForEachCandidatePair(fn func(i, j int)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if len(cell) == 0 {
				continue
			}

			for a := 0; a < len(cell); a++ {
				for b := a + 1; b < len(cell); b++ {
					emitOrdered(fn, cell[a], cell[b])
				}
			}

			for _, off := range forwardNeighbors {
				nc, nr := col+off[0], row+off[1]
				if nc < 0 || nc >= g.cols || nr >= g.rows {
					continue
				}
				other := g.cells[nr*g.cols+nc]
				for _, a := range cell {
					for _, b := range other {
						emitOrdered(fn, a, b)
					}
				}
			}
		}
	}
}

func emitOrdered(fn func(i, j int), a, b int32) {
	if a < b {
		fn(int(a), int(b))
	} else {
		fn(int(b), int(a))
	}
}
