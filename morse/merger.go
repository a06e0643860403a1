// SPDX-License-Identifier: MIT
//
// File: merger.go
// Role: Incremental basin merging. Walks c.points in order, assigns every
//       point its record and records merge events on destroyed extrema.
// Determinism:
//   - Neighbours are visited in Field.NeighborIDs order; every "first wins"
//     tie-break below refers to that order.

package morse

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// construct processes every point in order. It is the only code path that
// mutates c.points and c.cells.
func (c *Complex) construct(g Field) error {
	for i := range c.points {
		higher, err := c.higherNeighbors(i, g)
		if err != nil {
			return err
		}

		if len(higher) == 0 {
			c.points[i].data = seedRecord(i)
			continue
		}

		ancestor, err := c.addPoint(i, higher, g)
		if err != nil {
			return err
		}
		// Absorbed or saddle: not an extremum, no lifetime of its own.
		c.points[i].data = &record{lifetime: 0, mergeParent: noParent, ancestor: ancestor}
	}

	c.filtration = c.computeFiltration()
	if c.debug {
		c.log.WithFields(logrus.Fields{
			"points":  len(c.points),
			"extrema": len(c.Extrema()),
			"merges":  len(c.filtration),
		}).Debug("morse complex constructed")
	}

	return nil
}

// higherNeighbors returns the positions of the already-processed neighbours
// of point i lying on the priority side of its value.
func (c *Complex) higherNeighbors(i int, g Field) ([]int, error) {
	p := c.points[i]
	ids, err := g.NeighborIDs(p.id)
	if err != nil {
		return nil, newError(ErrMissingNode, p.id, "", err)
	}

	out := make([]int, 0, len(ids))
	for _, nb := range ids {
		j, ok := c.lookup[nb]
		if !ok {
			return nil, newError(ErrMissingNode, nb, "", nil)
		}
		if j >= i {
			continue // not processed yet (or a self-loop)
		}
		if c.kind.dominates(c.points[j].value, p.value) {
			out = append(out, j)
		}
	}

	return out, nil
}

// addPoint unions point i into the basins reached by its higher neighbours
// and returns the ancestor point i inherits.
//
// One routine covers the three cases:
//   - a single neighbour, or several inside one basin: plain absorption,
//     the ancestor comes from the first neighbour;
//   - neighbours spanning several basins: i is a saddle, the most extreme
//     basin survives, the others are destroyed, and i inherits the ancestor
//     of its steepest neighbour.
func (c *Complex) addPoint(i int, higher []int, g Field) (int, error) {
	cells := c.distinctCells(higher)
	guide := higher[0]

	if len(cells) == 1 {
		c.cells.union(guide, i)
	} else {
		owner, err := c.findMaxCell(i, cells)
		if err != nil {
			return 0, err
		}
		steepest, err := c.findSteepestNeighbor(i, higher, g)
		if err != nil {
			return 0, err
		}
		if err = c.mergeCells(i, owner, cells); err != nil {
			return 0, err
		}
		guide = steepest
	}

	data := c.points[guide].data
	if data == nil {
		return 0, newError(ErrMissingData, c.points[guide].id, "", nil)
	}

	return data.ancestor, nil
}

// distinctCells maps neighbours to their basin representatives, keeping the
// first occurrence of each.
func (c *Complex) distinctCells(neighbors []int) []int {
	cells := make([]int, 0, len(neighbors))
	seen := make(map[int]struct{}, len(neighbors))
	for _, n := range neighbors {
		cell := c.cells.find(n)
		if _, dup := seen[cell]; dup {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}

	return cells
}

// findMaxCell returns the basin whose extremum is most extreme. The first
// candidate wins ties.
func (c *Complex) findMaxCell(joining int, cells []int) (int, error) {
	best := -1
	for _, cell := range cells {
		if best < 0 || c.kind.moreExtreme(c.points[cell].value, c.points[best].value) {
			best = cell
		}
	}
	if best < 0 {
		return 0, newError(ErrNoMaximum, c.points[joining].id, "", nil)
	}

	return best, nil
}

// findSteepestNeighbor returns the neighbour maximising |value/weight|.
// The first candidate wins ties; a NaN grade only wins as first candidate.
// Signs are not checked: neighbours are already filtered by priority.
func (c *Complex) findSteepestNeighbor(joining int, neighbors []int, g Field) (int, error) {
	from := c.points[joining].id
	best := -1
	var bestGrade float64
	for _, n := range neighbors {
		nb := c.points[n]
		w, err := g.Weight(from, nb.id)
		if err != nil {
			if errors.Is(err, ErrMissingEdgeWeight) {
				return 0, newError(ErrMissingEdgeWeight, from, nb.id, err)
			}
			return 0, newError(ErrMissingEdge, from, nb.id, err)
		}
		if math.IsNaN(w) {
			return 0, newError(ErrMissingEdgeWeight, from, nb.id, nil)
		}

		grade := math.Abs(nb.value / w)
		if best < 0 || grade > bestGrade {
			best, bestGrade = n, grade
		}
	}
	if best < 0 {
		return 0, newError(ErrMissingNeighbors, from, "", nil)
	}

	return best, nil
}

// mergeCells unions the saddle and every destroyed basin into owner and
// stamps each destroyed extremum with its lifetime and merge parent.
func (c *Complex) mergeCells(joining, owner int, cells []int) error {
	saddle := c.points[joining]
	c.cells.union(owner, joining)

	for _, cell := range cells {
		if cell == owner {
			continue
		}
		extremum := c.points[cell]
		if extremum.data == nil {
			return newError(ErrMissingData, extremum.id, "", nil)
		}

		// abs keeps the formula valid for both directions
		extremum.data.lifetime = math.Abs(extremum.value - saddle.value)
		extremum.data.mergeParent = owner
		c.cells.union(owner, cell)

		if c.debug {
			c.log.WithFields(logrus.Fields{
				"saddle":    saddle.id,
				"destroyed": extremum.id,
				"owner":     c.points[owner].id,
				"lifetime":  extremum.data.lifetime,
			}).Debug("basins merged")
		}
	}

	return nil
}
