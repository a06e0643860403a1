// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D elevation grid as a graph, ready for
// Morse-complex analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid (row y, column x).
//   - ToCoreGraph emits one vertex "x,y" per cell and one weighted edge per
//     neighbouring pair, so the grid can be fed to morse.FromGraph.
//   - SuperlevelComponents / SublevelComponents flood-fill the regions
//     above or below a level, handy for checking basins against a cut.
//
// Complexity:
//
//   - ToCoreGraph:          O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - Super/Sublevel sets:  O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize: orthogonal edge weight; diagonals get CellSize·√2.
//
// NaN cells are voids (no-data): they get no vertex, no edges, and belong
// to no level-set component.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: cell size is zero, negative, NaN or infinite.
package gridgraph
