// SPDX-License-Identifier: MIT

package morse

import (
	"math"
	"sort"
)

// computeFiltration collects one step per destroyed extremum and sorts the
// steps by time. Equal times keep processing order; NaN times sort first.
func (c *Complex) computeFiltration() []FiltrationStep {
	var steps []FiltrationStep
	for _, p := range c.points {
		if p.data == nil || p.data.mergeParent == noParent {
			continue
		}
		steps = append(steps, FiltrationStep{
			Time:          p.data.lifetime,
			DestroyedCell: p.id,
			OwningCell:    c.points[p.data.mergeParent].id,
		})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		a, b := steps[i].Time, steps[j].Time
		return a < b || (math.IsNaN(a) && !math.IsNaN(b))
	})

	return steps
}
