// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/talus/gridgraph"
)

const (
	// rasterInfinite marks cells of surviving extrema.
	rasterInfinite = 9999
	// rasterNoData is written for void cells when the grid file has no nodata value.
	rasterNoData = -9999
)

// rasterHeader carries the georeferencing of an ESRI ASCII raster.
type rasterHeader struct {
	XLLCorner float64
	YLLCorner float64
	CellSize  float64
	NoData    float64
}

// writeRaster writes persistence as an ESRI ASCII raster of
// int(persistence*100), rasterInfinite for infinite persistence and the
// nodata value for void cells.
func writeRaster(w io.Writer, gg *gridgraph.GridGraph, persistence map[string]float64, h rasterHeader) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", gg.Width)
	fmt.Fprintf(bw, "nrows %d\n", gg.Height)
	fmt.Fprintf(bw, "xllcorner %s\n", formatFloat(h.XLLCorner))
	fmt.Fprintf(bw, "yllcorner %s\n", formatFloat(h.YLLCorner))
	fmt.Fprintf(bw, "cellsize %s\n", formatFloat(h.CellSize))
	fmt.Fprintf(bw, "NODATA_value %s\n", formatFloat(h.NoData))

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			p, ok := persistence[gg.VertexID(x, y)]
			switch {
			case !ok:
				bw.WriteString(formatFloat(h.NoData))
			case math.IsInf(p, 1):
				bw.WriteString(strconv.Itoa(rasterInfinite))
			default:
				bw.WriteString(strconv.Itoa(int(p * 100)))
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
