// SPDX-License-Identifier: MIT

// Package cli implements the talus command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/talus/bfs"
	"github.com/katalvlaran/talus/gridgraph"
	"github.com/katalvlaran/talus/morse"
)

const (
	directionBoth       = "both"
	directionDescending = "descending"
	directionAscending  = "ascending"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "talus",
		Short:        "Compute Morse complexes and topological persistence of scalar fields.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.workdir, "directory", "C", ".", "working directory")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "Analyse an elevation grid given as a YAML file.",
		Args:  cobra.NoArgs,
		RunE:  newGridCommand(ctx, input),
	}
	gridCmd.Flags().StringVarP(&input.inputPath, "input", "i", "", "path to the YAML grid file")
	gridCmd.Flags().StringVarP(&input.outputPath, "output", "o", "-", "path of the YAML report (- for stdout)")
	gridCmd.Flags().StringVar(&input.rasterPath, "raster", "", "write persistence as an ESRI ASCII raster to this path")
	gridCmd.Flags().IntVar(&input.conn, "conn", 0, "neighbour connectivity, 4 or 8 (overrides the grid file)")
	gridCmd.Flags().Float64Var(&input.cellSize, "cell-size", 0, "distance between orthogonal cells (overrides the grid file)")
	gridCmd.Flags().StringVar(&input.direction, "direction", directionBoth, "complexes to build: both, descending or ascending")
	gridCmd.Flags().Float64Var(&input.lifetime, "lifetime", -1, "simplify crystals by merging basins that die at or below this lifetime")
	gridCmd.Flags().BoolVar(&input.parallel, "parallel", false, "build both complexes concurrently")
	gridCmd.Flags().Float64Var(&input.level, "level", 0, "also count the connected regions above and below this value")
	_ = gridCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(gridCmd)

	return rootCmd
}

func newGridCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.rasterPath != "" && isStdout(input.OutputPath()) && isStdout(input.RasterPath()) {
			return errors.New("report and raster cannot both be written to stdout")
		}
		gf, err := readGridFile(input.InputPath())
		if err != nil {
			return err
		}
		opts, err := gf.options(input.conn, input.cellSize)
		if err != nil {
			return err
		}
		gg, err := gridgraph.NewGridGraph(gf.values(), opts)
		if err != nil {
			return errors.Wrapf(err, "invalid grid in %s", input.InputPath())
		}
		g, err := gg.ToCoreGraph()
		if err != nil {
			return err
		}
		logger := log.WithField("grid", input.InputPath())
		logger.WithFields(log.Fields{
			"cols": gg.Width,
			"rows": gg.Height,
			"conn": gg.Conn.String(),
		}).Debug("grid loaded")

		comps, err := bfs.Components(g, bfs.WithContext(ctx))
		if err != nil {
			return err
		}

		morseOpts := []morse.Option{morse.WithLogger(logger)}
		if input.parallel {
			morseOpts = append(morseOpts, morse.WithParallel())
		}

		report := &Report{Rows: gg.Height, Cols: gg.Width, Components: len(comps)}
		if cmd.Flags().Changed("level") {
			report.Level = &LevelReport{
				Level:      input.level,
				Superlevel: len(gg.SuperlevelComponents(input.level)),
				Sublevel:   len(gg.SublevelComponents(input.level)),
			}
		}
		var rasterSource *morse.Complex
		switch input.direction {
		case directionBoth:
			ms, err := morse.NewMorseSmale(g, morseOpts...)
			if err != nil {
				return err
			}
			report.Complexes = []ComplexReport{newComplexReport(ms.Descending), newComplexReport(ms.Ascending)}
			report.Crystals = newCrystalReports(ms.CrystalsAtLifetime(input.lifetime))
			rasterSource = ms.Descending
		case directionDescending, directionAscending:
			kind := morse.Descending
			if input.direction == directionAscending {
				kind = morse.Ascending
			}
			c, err := morse.FromGraph(kind, g, morseOpts...)
			if err != nil {
				return err
			}
			report.Complexes = []ComplexReport{newComplexReport(c)}
			rasterSource = c
		default:
			return errors.Errorf("unknown direction %q", input.direction)
		}

		if err = writeTo(input.OutputPath(), cmd.OutOrStdout(), func(w io.Writer) error {
			return writeReport(w, report)
		}); err != nil {
			return errors.Wrap(err, "failed to write report")
		}

		if input.rasterPath == "" {
			return nil
		}
		header := rasterHeader{XLLCorner: gf.XLLCorner, YLLCorner: gf.YLLCorner, CellSize: opts.CellSize, NoData: rasterNoData}
		if gf.NoData != nil {
			header.NoData = *gf.NoData
		}
		if err = writeTo(input.RasterPath(), cmd.OutOrStdout(), func(w io.Writer) error {
			return writeRaster(w, gg, rasterSource.Persistence(), header)
		}); err != nil {
			return errors.Wrap(err, "failed to write raster")
		}
		log.Infof("persistence raster written to %s", input.RasterPath())

		return nil
	}
}

func isStdout(path string) bool {
	return path == "" || path == "-"
}

// writeTo runs write against path, or against stdout for "" and "-".
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if isStdout(path) {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
