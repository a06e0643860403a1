// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/talus/core"
)

// ExampleGraph builds a tiny terrain profile: three samples on a line with
// a peak in the middle.
//
//	A(1) ──2── B(5) ──2── C(3)
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A", 1, core.WithCoords(0))
	_ = g.AddVertex("B", 5, core.WithCoords(2))
	_ = g.AddVertex("C", 3, core.WithCoords(4))
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 2)

	for _, id := range g.Vertices() {
		v, _ := g.Value(id)
		nbs, _ := g.NeighborIDs(id)
		fmt.Printf("%s=%g neighbors=%v\n", id, v, nbs)
	}
	// Output:
	// A=1 neighbors=[B]
	// B=5 neighbors=[A C]
	// C=3 neighbors=[B]
}
