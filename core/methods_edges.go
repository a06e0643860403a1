// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Weight,
//       Neighbors/NeighborIDs/Edges/EdgeCount.
// Determinism:
//   - Edges() and Neighbors() return edges sorted by Edge.ID asc.
//   - NeighborIDs() returns vertex IDs sorted asc.
//   - Edge IDs are monotonic ("e" + decimal counter).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix yields stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = "e"

// AddEdge connects from and to with an undirected edge of the given weight
// and returns its unique Edge.ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Verify both endpoints exist (a vertex must carry a value, so edges
//     never create vertices implicitly).
//  3. Lock muEdgeAdj, reject a second edge between the same pair.
//  4. Generate eid atomically, store, index both directions.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || weight < 0 {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	g.ensureAdjacency(from)
	g.ensureAdjacency(to)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the catalog and from
// both adjacency buckets.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the edge joining from and to.
// Returns ErrEmptyVertexID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Weight returns the weight of the edge joining from and to.
// Returns ErrEmptyVertexID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	e, err := g.Edge(from, to)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Neighbors returns all edges incident to vertex id, sorted by Edge.ID.
// A self-loop appears once.
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids, nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
