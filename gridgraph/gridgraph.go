// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/talus/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCellSize for a
// non-positive or non-finite cell size.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !(opts.CellSize > 0) || math.IsInf(opts.CellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		CellSize:        opts.CellSize,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with unit cell size.
func From2D(values [][]float64, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx,dy) steps of the grid's connectivity,
// clockwise from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexID formats the vertex identifier of cell (x,y) as "x,y".
func (gg *GridGraph) VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the grid into a weighted, undirected *core.Graph.
// Each non-void cell (x,y) becomes a vertex "x,y" carrying the cell value
// and coordinates (x, y). Neighbouring cells are joined once, with weight
// CellSize for orthogonal and CellSize·√2 for diagonal steps.
// Complexity: O(W×H×d) time, Memory: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			if math.IsNaN(v) {
				continue
			}
			if err := g.AddVertex(gg.VertexID(x, y), v, core.WithCoords(float64(x), float64(y))); err != nil {
				return nil, err
			}
		}
	}

	diagonal := gg.CellSize * math.Sqrt2
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if math.IsNaN(gg.CellValues[y][x]) {
				continue
			}
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// each pair once, from its lower row-major end
				if !gg.InBounds(nx, ny) || gg.Index(nx, ny) < u || math.IsNaN(gg.CellValues[ny][nx]) {
					continue
				}
				w := gg.CellSize
				if d[0] != 0 && d[1] != 0 {
					w = diagonal
				}
				if _, err := g.AddEdge(gg.VertexID(x, y), gg.VertexID(nx, ny), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
