// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/talus/gridgraph"
	"github.com/katalvlaran/talus/morse"
)

// ExampleGridGraph_SuperlevelComponents lists the regions standing at or
// above 5 in a small elevation grid.
func ExampleGridGraph_SuperlevelComponents() {
	grid := [][]float64{
		{1, 6, 7, 2, 9},
		{4, 8, 0, 5, 6},
		{7, 2, 5, 5, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.SuperlevelComponents(5)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}

// ExampleGridGraph_ToCoreGraph feeds a grid to the Morse machinery.
func ExampleGridGraph_ToCoreGraph() {
	gg, _ := gridgraph.From2D([][]float64{
		{3, 1, 4},
		{1, 0, 1},
		{2, 1, 9},
	}, gridgraph.Conn4)
	g, _ := gg.ToCoreGraph()

	c, _ := morse.FromGraph(morse.Descending, g)
	fmt.Println("peaks:", c.Extrema())
	for _, step := range c.Filtration() {
		fmt.Printf("%s dies into %s after %.0f\n", step.DestroyedCell, step.OwningCell, step.Time)
	}

	// Output:
	// peaks: [2,2 2,0 0,0 0,2]
	// 0,2 dies into 0,0 after 1
	// 0,0 dies into 2,0 after 2
	// 2,0 dies into 2,2 after 3
}
