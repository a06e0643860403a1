// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, VertexOption, sentinel errors and
//       the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog (values, coords, metadata).
//   - muEdgeAdj guards the edge catalog and the adjacency index.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN weight, or a non-zero weight
	// provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a sample of the scalar field.
//
// Value is the field value f(v). Coords is an optional position of the
// sample (pixel, point-cloud coordinates, …); algorithms never read it.
// Metadata stores arbitrary user data and is shared on Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Value is the scalar field value sampled at this vertex.
	Value float64

	// Coords is the ancillary position of the sample.
	Coords []float64

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two vertices.
//
// From and To record the orientation the edge was added with; both
// endpoints see the edge in Neighbors.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the length of the edge. Gradients are measured as value/Weight.
	Weight float64
}

// Other returns the endpoint of e that is not id.
// For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures ancillary data of a vertex in AddVertex.
type VertexOption func(v *Vertex)

// WithCoords attaches a position to the vertex. The slice is copied.
func WithCoords(coords ...float64) VertexOption {
	return func(v *Vertex) {
		v.Coords = append([]float64(nil), coords...)
	}
}

// WithMetadata stores key=value in the vertex Metadata map.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// Graph is an undirected scalar-field graph.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and the
// adjacency index. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags (immutable after NewGraph)
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b] = Edge.ID, mirrored as adjacency[b][a].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
