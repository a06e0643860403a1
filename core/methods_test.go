// SPDX-License-Identifier: MIT
// Package core_test verifies the vertex/edge contracts of core.Graph.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/talus/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"
)

// newSquare builds the 4-cycle A-B-D-C-A with values 1,-1,0,2 and unit weights.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex(VertexA, 1, core.WithCoords(0, 0)))
	require.NoError(t, g.AddVertex(VertexB, -1, core.WithCoords(1, 0)))
	require.NoError(t, g.AddVertex(VertexC, 0, core.WithCoords(0, 1)))
	require.NoError(t, g.AddVertex(VertexD, 2, core.WithCoords(1, 1)))
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexA, VertexC}, {VertexB, VertexD}, {VertexC, VertexD}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())

	g = core.NewGraph(core.WithWeighted(), core.WithLoops())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
}

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(VertexEmpty, 0), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA, 3.5, core.WithCoords(1, 2), core.WithMetadata("kind", "peak")))
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexEmpty))

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v.Value)
	assert.Equal(t, []float64{1, 2}, v.Coords)
	assert.Equal(t, "peak", v.Metadata["kind"])

	// Upsert keeps the vertex count and replaces the value.
	require.NoError(t, g.AddVertex(VertexA, -1))
	assert.Equal(t, 1, g.VertexCount())
	val, err := g.Value(VertexA)
	require.NoError(t, err)
	assert.Equal(t, -1.0, val)

	require.NoError(t, g.SetValue(VertexA, 7))
	val, _ = g.Value(VertexA)
	assert.Equal(t, 7.0, val)

	assert.ErrorIs(t, g.SetValue(VertexB, 1), core.ErrVertexNotFound)
	_, err = g.Value(VertexB)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	assert.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.RemoveVertex(VertexA))
	assert.Zero(t, g.VertexCount())
}

func TestGraph_VertexCopyIsDetached(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 1, core.WithCoords(4, 5)))

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	v.Coords[0] = 100
	v.Value = 100

	again, _ := g.Vertex(VertexA)
	assert.Equal(t, []float64{4, 5}, again.Coords)
	assert.Equal(t, 1.0, again.Value)
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 0))
	require.NoError(t, g.AddVertex(VertexB, 0))

	_, err := g.AddEdge(VertexEmpty, VertexB, 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexB, 2)
	assert.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weights")

	_, err = g.AddEdge(VertexA, VertexA, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexC, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound, "edges never create vertices")

	eid, err := g.AddEdge(VertexA, VertexB, 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge(VertexB, VertexA, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected duplicate in reverse orientation")

	wg := core.NewGraph(core.WithWeighted())
	require.NoError(t, wg.AddVertex(VertexA, 0))
	require.NoError(t, wg.AddVertex(VertexB, 0))
	_, err = wg.AddEdge(VertexA, VertexB, -1)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = wg.AddEdge(VertexA, VertexB, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_EdgeQueries(t *testing.T) {
	g := newSquare(t)

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexB, VertexA), "edges are visible from both endpoints")
	assert.False(t, g.HasEdge(VertexA, VertexD))
	assert.False(t, g.HasEdge(VertexEmpty, VertexD))

	e, err := g.Edge(VertexD, VertexB)
	require.NoError(t, err)
	assert.Equal(t, VertexB, e.From)
	assert.Equal(t, VertexD, e.Other(VertexB))
	assert.Equal(t, VertexB, e.Other(VertexD))

	w, err := g.Weight(VertexC, VertexD)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	_, err = g.Weight(VertexA, VertexD)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)

	nbs, err := g.Neighbors(VertexD)
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, "e3", nbs[0].ID)
	assert.Equal(t, "e4", nbs[1].ID)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD}, g.Vertices())
	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, "e1", edges[0].ID)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := newSquare(t)

	e, err := g.Edge(VertexA, VertexB)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e.ID))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.ErrorIs(t, g.RemoveEdge(e.ID), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex(VertexD))
	assert.Equal(t, 1, g.EdgeCount(), "only A-C survives")
	ids, err := g.NeighborIDs(VertexC)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, ids)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddVertex(VertexA, 0))
	_, err := g.AddEdge(VertexA, VertexA, 0)
	require.NoError(t, err)

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Len(t, nbs, 1, "a loop appears once")

	require.NoError(t, g.RemoveVertex(VertexA))
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_Clone(t *testing.T) {
	g := newSquare(t)
	clone := g.Clone()

	assert.Equal(t, g.Vertices(), clone.Vertices())
	assert.Equal(t, g.EdgeCount(), clone.EdgeCount())
	assert.True(t, clone.Weighted())

	require.NoError(t, clone.SetValue(VertexA, 42))
	val, _ := g.Value(VertexA)
	assert.Equal(t, 1.0, val, "clone values are detached")

	require.NoError(t, clone.AddVertex("E", 0))
	eid, err := clone.AddEdge(VertexA, "E", 1)
	require.NoError(t, err)
	assert.Equal(t, "e5", eid, "clone continues the edge ID sequence")
	assert.False(t, g.HasVertex("E"))
}
