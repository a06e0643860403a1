// SPDX-License-Identifier: MIT

// Package bfs splits a core.Graph into connected components by
// breadth-first search.
//
// Edge weights are ignored. core.Graph.Vertices and NeighborIDs are sorted,
// so each component starts at its smallest ID and lists its vertices in
// reproducible BFS order.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrNeighbors  if neighbour lookup fails for any vertex.
//   - ctx.Err() when the context passed with WithContext is cancelled.
package bfs
