// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory, undirected graph whose
// vertices carry a real-valued scalar field.
//
// The Graph G = (V,E,f) stores:
//
//   - Vertices with a string ID, a float64 Value f(v), optional Coords and
//     free-form Metadata.
//   - Undirected edges with a float64 Weight (a distance used to normalise
//     gradients; zero in unweighted graphs).
//   - Constant-time adjacency via nested maps:
//     adjacency[from][to] = edgeID (mirrored for to→from).
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention.
//
// Why use core.Graph?
//
//   - It is the input of the morse package: *Graph satisfies morse.Field.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted,
//     so every algorithm built on top is reproducible.
//   - Safe concurrent reads, which lets both directions of a Morse-Smale
//     complex be computed in parallel over one graph.
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Vertex Options (VertexOption):
//
//	– WithCoords(coords ...float64)   ancillary position, ignored by algorithms
//	– WithMetadata(key, value)        arbitrary user data
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, value float64, opts ...VertexOption) error // O(1), upsert
//	SetValue(id string, value float64) error                       // O(1)
//	Value(id string) (float64, error)                              // O(1)
//	HasVertex(id string) bool                                      // O(1)
//	RemoveVertex(id string) error                                  // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                                      // O(1)
//	HasEdge(from, to string) bool                                        // O(1)
//	Edge(from, to string) (*Edge, error)                                 // O(1)
//	Weight(from, to string) (float64, error)                             // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), sorted by Edge.ID
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	VertexCount(), EdgeCount()               // O(1)
//	Clone() *Graph                           // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – negative or NaN weight, or non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
