// SPDX-License-Identifier: MIT

package cli

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Input contains the input for the grid command.
type Input struct {
	workdir    string
	inputPath  string
	outputPath string
	rasterPath string
	conn       int
	cellSize   float64
	direction  string
	lifetime   float64
	level      float64
	parallel   bool
	verbose    bool
}

func (i *Input) resolve(path string) string {
	basedir, err := filepath.Abs(i.workdir)
	if err != nil {
		log.Fatal(err)
	}
	if path == "" || path == "-" {
		return path
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(basedir, path)
	}
	return path
}

// InputPath returns the path to the grid file.
func (i *Input) InputPath() string {
	return i.resolve(i.inputPath)
}

// OutputPath returns the path of the YAML report; "" or "-" mean stdout.
func (i *Input) OutputPath() string {
	return i.resolve(i.outputPath)
}

// RasterPath returns the path of the ESRI ASCII raster, "" when disabled.
func (i *Input) RasterPath() string {
	return i.resolve(i.rasterPath)
}
