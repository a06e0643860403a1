// SPDX-License-Identifier: MIT

package gridgraph

// SuperlevelComponents finds the connected regions of cells with value ≥ level,
// according to gg.Conn connectivity. Each component is a slice of row-major
// cell indices in BFS order; components are ordered by their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) SuperlevelComponents(level float64) [][]int {
	return gg.components(func(v float64) bool { return v >= level })
}

// SublevelComponents is SuperlevelComponents for cells with value ≤ level.
func (gg *GridGraph) SublevelComponents(level float64) [][]int {
	return gg.components(func(v float64) bool { return v <= level })
}

// components runs a BFS flood fill over the cells accepted by keep.
// NaN cells fail every comparison and are never kept.
func (gg *GridGraph) components(keep func(float64) bool) [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !keep(gg.CellValues[y][x]) {
				continue
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !keep(gg.CellValues[vy][vx]) {
						continue
					}
					vi := gg.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
