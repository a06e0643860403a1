// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/talus/core"
)

// walker holds the state shared by the searches of one Components call.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []string
	visited map[string]bool
}

// Components returns the connected components of g. Components are ordered
// by their smallest vertex ID, and each lists its vertices in BFS order
// from that ID.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
	}

	var comps [][]string
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		comp, err := w.run(id)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// run floods the component of start and returns it in visit order.
func (w *walker) run(start string) ([]string, error) {
	w.visited[start] = true
	w.queue = append(w.queue[:0], start)

	// the queue is never shrunk, so it ends up holding the visit order
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		id := w.queue[head]
		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.queue = append(w.queue, nbr)
			}
		}
	}

	return append([]string(nil), w.queue...), nil
}
