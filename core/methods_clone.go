// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep snapshot of a graph.
// Determinism:
//   - Clone carries over nextEdgeID so AddEdge on the clone continues the
//     textual ID sequence without collisions.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices (values
// and coords copied, Metadata shared), edges and adjacency.
//
// Typical use: freeze a snapshot before handing it to long-running
// analyses while the original keeps being edited.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]string, len(g.adjacency)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{
			ID:       v.ID,
			Value:    v.Value,
			Coords:   append([]float64(nil), v.Coords...),
			Metadata: v.Metadata,
		}
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
	}
	for from, bucket := range g.adjacency {
		nb := make(map[string]string, len(bucket))
		for to, eid := range bucket {
			nb[to] = eid
		}
		clone.adjacency[from] = nb
	}

	return clone
}
