// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & scalar-field queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap and cascade deletes under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given scalar value, or updates the
// value (and any ancillary data passed via opts) of an existing one.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, update in place or allocate a new Vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Upsert: re-adding an existing vertex keeps its edges and Metadata.
//   - NaN values are stored as-is; consumers such as morse reject them.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, value float64, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		// Metadata is initialized to a non-nil map by policy.
		v = &Vertex{ID: id, Metadata: make(map[string]interface{})}
		g.vertices[id] = v
	}
	v.Value = value
	for _, opt := range opts {
		opt(v)
	}

	if !exists {
		g.muEdgeAdj.Lock()
		g.ensureAdjacency(id)
		g.muEdgeAdj.Unlock()
	}

	return nil
}

// SetValue overwrites the scalar value of an existing vertex.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetValue(id string, value float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Value = value

	return nil
}

// Value returns the scalar value stored on vertex id.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Value(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return v.Value, nil
}

// Vertex returns a copy of the vertex record. Coords are copied; Metadata
// is shared with the graph.
// Complexity: O(len(Coords)).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return &Vertex{
		ID:       v.ID,
		Value:    v.Value,
		Coords:   append([]float64(nil), v.Coords...),
		Metadata: v.Metadata,
	}, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Implementation:
//   - Stage 1: Validate ID, lock muVert then muEdgeAdj (global lock order).
//   - Stage 2: Drop every edge in adjacency[id] from the catalog and from the
//     mirror bucket of the other endpoint.
//   - Stage 3: Drop the vertex and its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for nb, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// ensureAdjacency makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func (g *Graph) ensureAdjacency(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}
