// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellSize indicates a cell size that is not a positive finite number.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive and finite")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize is the ground distance between orthogonal neighbours. It is
	// the weight of orthogonal edges; diagonal edges get CellSize·√2.
	CellSize float64
}

// DefaultGridOptions returns Conn4 with unit cell size.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:     Conn4,
		CellSize: 1,
	}
}

// GridGraph treats a 2D elevation grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the elevation.
// NaN cells are voids: they are skipped by every traversal.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]float64
	Conn            Connectivity
	CellSize        float64
	neighborOffsets [][2]int
}
