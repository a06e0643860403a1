// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between core.Graph and
// gonum graphs (gonum.org/v1/gonum/graph).
//
// FromGonum imports any undirected gonum graph together with a value per
// node, so gonum-built meshes and networks can be analysed with package
// morse. ToGonum exports a core.Graph as a *simple.WeightedUndirectedGraph
// for gonum's path, flow and centrality algorithms.
//
// Node IDs map to vertex IDs through strconv: gonum node 42 becomes vertex
// "42" on import. On export vertices are numbered 0..n-1 in sorted ID order
// and the mapping is returned.
package converters
