// SPDX-License-Identifier: MIT

package morse

import (
	"github.com/sirupsen/logrus"
)

// Complex is the Morse complex of one direction. It is built once by
// FromGraph and is read-only afterwards.
type Complex struct {
	kind       Kind
	points     []orderedPoint // arena, in processing order
	lookup     map[string]int // vertex ID → arena position
	cells      *pointedUnionFind
	filtration []FiltrationStep
	log        logrus.FieldLogger
	debug      bool // log is at Debug level
}

// FromGraph builds the Morse complex of g for the given direction.
//
// The graph is only read during the call and is not retained. On error no
// complex is returned; the error wraps one of the package sentinels.
//
// Complexity: O(V·log V + E·α(V)) time, O(V) space.
func FromGraph(kind Kind, g Field, opts ...Option) (*Complex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts)

	points, err := orderPoints(kind, g)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]int, len(points))
	for i, p := range points {
		lookup[p.id] = i
	}

	c := &Complex{
		kind:   kind,
		points: points,
		lookup: lookup,
		cells:  newPointedUnionFind(len(points)),
		log:    o.logger.WithField("kind", kind.String()),
		debug:  debugEnabled(o.logger),
	}
	if err = c.construct(g); err != nil {
		return nil, err
	}

	return c, nil
}

// Kind returns the direction of the complex.
func (c *Complex) Kind() Kind { return c.kind }

// Len returns the number of vertices in the complex.
func (c *Complex) Len() int { return len(c.points) }

// Ancestors maps every vertex to the extremum that seeded its basin.
//
// Destroyed basins keep their own extremum here, so an ancestor is not
// necessarily a surviving extremum. The closure, where every vertex maps to
// the surviving extremum of its component, is CellsAtLifetime(math.Inf(1)).
func (c *Complex) Ancestors() map[string]string {
	out := make(map[string]string, len(c.points))
	for _, p := range c.points {
		if p.data != nil {
			out[p.id] = c.points[p.data.ancestor].id
		}
	}

	return out
}

// Persistence maps every vertex to its lifetime: +Inf for surviving
// extrema, the merge gap for destroyed extrema, 0 for everything else.
func (c *Complex) Persistence() map[string]float64 {
	out := make(map[string]float64, len(c.points))
	for _, p := range c.points {
		if p.data != nil {
			out[p.id] = p.data.lifetime
		}
	}

	return out
}

// Filtration returns a copy of the merge events sorted by time.
func (c *Complex) Filtration() []FiltrationStep {
	out := make([]FiltrationStep, len(c.filtration))
	copy(out, c.filtration)

	return out
}

// Extrema returns the vertices that seeded a basin, in processing order
// (most extreme first).
func (c *Complex) Extrema() []string {
	var out []string
	for _, p := range c.points {
		if p.data != nil && p.data.extremum {
			out = append(out, p.id)
		}
	}

	return out
}

// CellsAtLifetime returns the simplified complex obtained by applying every
// filtration step with Time <= t: each vertex maps to the extremum owning
// its basin once those merges are done.
//
// A negative t returns the same mapping as Ancestors; t = +Inf collapses
// every connected component onto its surviving extremum.
func (c *Complex) CellsAtLifetime(t float64) map[string]string {
	parent := make([]int, len(c.points))
	for i, p := range c.points {
		parent[i] = noParent
		if p.data != nil && p.data.mergeParent != noParent && p.data.lifetime <= t {
			parent[i] = p.data.mergeParent
		}
	}

	// Merge parents form a forest: a basin is destroyed at most once and
	// always into a basin that is still alive at that moment.
	resolve := func(x int) int {
		for parent[x] != noParent {
			x = parent[x]
		}
		return x
	}

	out := make(map[string]string, len(c.points))
	for _, p := range c.points {
		if p.data != nil {
			out[p.id] = c.points[resolve(p.data.ancestor)].id
		}
	}

	return out
}
