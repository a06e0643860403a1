// SPDX-License-Identifier: MIT

package morse

import (
	"math"
	"sort"
)

// orderPoints reads every vertex value of g and returns the processing
// order for kind: position 0 is the most extreme vertex.
//
// The sort is stable over g.Vertices(), so equal values keep the Field's
// own order. NaN values are rejected before sorting.
func orderPoints(kind Kind, g Field) ([]orderedPoint, error) {
	ids := g.Vertices()
	points := make([]orderedPoint, 0, len(ids))
	for _, id := range ids {
		v, err := g.Value(id)
		if err != nil {
			return nil, newError(ErrMissingNode, id, "", err)
		}
		if math.IsNaN(v) {
			return nil, newError(ErrNanValue, id, "", nil)
		}
		points = append(points, orderedPoint{id: id, value: v})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return kind.moreExtreme(points[i].value, points[j].value)
	})

	return points, nil
}
