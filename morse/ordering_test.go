// SPDX-License-Identifier: MIT

package morse

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/talus/core"
)

func orderIDs(points []orderedPoint) []string {
	ids := make([]string, len(points))
	for i, p := range points {
		ids[i] = p.id
	}

	return ids
}

func TestOrderPoints_DirectionsAndTies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", 1))
	require.NoError(t, g.AddVertex("b", 3))
	require.NoError(t, g.AddVertex("c", 3))
	require.NoError(t, g.AddVertex("d", 0))

	desc, err := orderPoints(Descending, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a", "d"}, orderIDs(desc), "equal values keep vertex order")

	asc, err := orderPoints(Ascending, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "b", "c"}, orderIDs(asc))
	assert.Equal(t, 3.0, asc[3].value)
}

func TestOrderPoints_NaN(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", 1))
	require.NoError(t, g.AddVertex("b", math.NaN()))

	_, err := orderPoints(Descending, g)
	require.ErrorIs(t, err, ErrNanValue)

	var merr *Error
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "b", merr.Node)
}

func TestOrderPoints_Empty(t *testing.T) {
	points, err := orderPoints(Ascending, core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, points)
}
