// SPDX-License-Identifier: MIT

// Package morse computes Morse complexes and Morse-Smale complexes of a
// scalar field sampled on the vertices of an undirected weighted graph.
//
// What:
//
//   - A descending Complex partitions the vertices into basins owned by
//     maxima; an ascending Complex partitions them into basins owned by
//     minima.
//   - Every extremum receives a persistence (lifetime): +Inf for the
//     global extremum, otherwise the absolute value gap between the
//     extremum and the saddle at which its basin was absorbed.
//   - The filtration lists the basin merges ordered by lifetime. Applying
//     its steps in order simplifies the complex from "every extremum
//     separate" to "one global basin" (see Complex.CellsAtLifetime).
//   - MorseSmale pairs an ascending and a descending complex built over
//     the same graph; its Crystals are the intersections of their cells.
//
// How:
//
//	1. Order vertices by value (largest first for Descending, smallest
//	   first for Ascending). Ties keep the Field.Vertices() order.
//	2. Walk the order. A vertex with no already-processed neighbour on the
//	   priority side seeds a basin. Otherwise it joins the basins of those
//	   neighbours; when they span two or more basins it is a saddle: the
//	   most extreme basin survives, the others are destroyed and recorded
//	   in the filtration.
//	3. Basin ownership is tracked with a pointed union-find whose
//	   canonical representative is always the surviving extremum.
//
// Complexity:
//
//   - Time:  O(V·log V + E·α(V))
//   - Space: O(V)
//
// Input:
//
//	Any Field; *core.Graph implements it. Values must not be NaN. Edge
//	weights are only used to pick the steepest neighbour of a saddle
//	(|value/weight|), so zero weights are tolerated.
//
// Errors:
//
//	ErrNilGraph, ErrNanValue, ErrMissingNode, ErrMissingNeighbors,
//	ErrMissingEdgeWeight, ErrMissingEdge, ErrNoMaximum, ErrMissingData.
//	All but ErrNilGraph are delivered inside a *Error naming the offending
//	vertex; match them with errors.Is and inspect them with errors.As.
//	A failed construction returns no complex.
//
// Concurrency:
//
//	Construction is sequential. A built Complex is immutable and safe for
//	concurrent reads. NewMorseSmale builds both directions concurrently
//	when WithParallel is given.
package morse
