// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/talus/gridgraph"
)

func TestWriteRaster(t *testing.T) {
	gg, err := gridgraph.From2D([][]float64{{0, 0}, {0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)

	persistence := map[string]float64{
		"0,0": math.Inf(1),
		"1,0": 1.239,
		"0,1": 0,
		// "1,1" is a void cell
	}
	var buf bytes.Buffer
	require.NoError(t, writeRaster(&buf, gg, persistence, rasterHeader{CellSize: 0.5, NoData: -1}))

	assert.Equal(t, "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 0.5\nNODATA_value -1\n"+
		"9999 123\n0 -1\n", buf.String())
}
