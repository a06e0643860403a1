// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/talus/core"
)

var (
	// ErrNilGraph indicates a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")
	// ErrMissingValue indicates a gonum node with no entry in the value map.
	ErrMissingValue = errors.New("converters: node has no value")
	// ErrSelfLoop indicates a loop edge, which simple gonum graphs cannot hold.
	ErrSelfLoop = errors.New("converters: self-loop cannot be exported")
)

// FromGonum builds a core.Graph from an undirected gonum graph and a value
// per node. If src also implements graph.Weighted the result is weighted
// and carries src's edge weights; otherwise every edge has weight 0.
//
// Self-loops are dropped. Complexity: O(V·log V + E).
func FromGonum(src graph.Undirected, values map[int64]float64) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	weighted, isWeighted := src.(graph.Weighted)

	var g *core.Graph
	if isWeighted {
		g = core.NewGraph(core.WithWeighted())
	} else {
		g = core.NewGraph()
	}

	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		v, ok := values[n.ID()]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingValue, n.ID())
		}
		if err := g.AddVertex(vertexID(n.ID()), v); err != nil {
			return nil, err
		}
	}

	for _, u := range nodes {
		uid := u.ID()
		to := graph.NodesOf(src.From(uid))
		sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })
		for _, v := range to {
			vid := v.ID()
			if vid <= uid {
				continue // each undirected edge once; loops dropped
			}
			var w float64
			if isWeighted {
				w, _ = weighted.Weight(uid, vid)
			}
			if _, err := g.AddEdge(vertexID(uid), vertexID(vid), w); err != nil {
				return nil, fmt.Errorf("converters: edge %d-%d: %w", uid, vid, err)
			}
		}
	}

	return g, nil
}

// ToGonum exports g as a weighted undirected gonum graph. Vertices are
// numbered in sorted ID order; the returned map gives each vertex's node ID.
// Absent edges weigh +Inf, matching gonum's shortest-path conventions.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	for i, id := range ids {
		index[id] = int64(i)
		dst.AddNode(simple.Node(i))
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(index[e.From]), simple.Node(index[e.To]), e.Weight))
	}

	return dst, index, nil
}

func vertexID(id int64) string {
	return strconv.FormatInt(id, 10)
}
