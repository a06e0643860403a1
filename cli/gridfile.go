// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/talus/gridgraph"
)

// GridFile is the YAML description of an elevation grid. Rows run north to
// south, as in an ESRI ASCII raster.
type GridFile struct {
	Connectivity int         `yaml:"connectivity"`
	CellSize     float64     `yaml:"cellsize"`
	XLLCorner    float64     `yaml:"xllcorner"`
	YLLCorner    float64     `yaml:"yllcorner"`
	NoData       *float64    `yaml:"nodata,omitempty"`
	Grid         [][]float64 `yaml:"grid"`
}

func readGridFile(path string) (*GridFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read grid file %s", path)
	}

	gf := new(GridFile)
	if err = yaml.Unmarshal(raw, gf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse grid file %s", path)
	}

	return gf, nil
}

// options merges the file settings with command line overrides. Zero
// values in the file fall back to gridgraph.DefaultGridOptions.
func (gf *GridFile) options(conn int, cellSize float64) (gridgraph.GridOptions, error) {
	opts := gridgraph.DefaultGridOptions()
	if conn == 0 {
		conn = gf.Connectivity
	}
	switch conn {
	case 0, 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return opts, errors.Errorf("connectivity must be 4 or 8, got %d", conn)
	}

	if cellSize == 0 {
		cellSize = gf.CellSize
	}
	if cellSize != 0 {
		opts.CellSize = cellSize
	}

	return opts, nil
}

// values returns the grid with no-data cells replaced by NaN.
func (gf *GridFile) values() [][]float64 {
	out := make([][]float64, len(gf.Grid))
	for y, row := range gf.Grid {
		out[y] = make([]float64, len(row))
		for x, v := range row {
			if gf.NoData != nil && v == *gf.NoData {
				v = math.NaN()
			}
			out[y][x] = v
		}
	}

	return out
}
