// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/talus/morse"
)

// Report is the YAML document written by the grid command.
type Report struct {
	Rows       int             `yaml:"rows"`
	Cols       int             `yaml:"cols"`
	Components int             `yaml:"components"`
	Level      *LevelReport    `yaml:"level,omitempty"`
	Complexes  []ComplexReport `yaml:"complexes"`
	Crystals   []CrystalReport `yaml:"crystals,omitempty"`
}

// LevelReport counts the connected regions of cells at or above and at or
// below one value.
type LevelReport struct {
	Level      float64 `yaml:"level"`
	Superlevel int     `yaml:"superlevel"`
	Sublevel   int     `yaml:"sublevel"`
}

// ComplexReport summarises one Morse complex.
type ComplexReport struct {
	Kind       string           `yaml:"kind"`
	Extrema    []ExtremumReport `yaml:"extrema"`
	Filtration []StepReport     `yaml:"filtration"`
}

// ExtremumReport is one seeded extremum with its persistence.
type ExtremumReport struct {
	Cell        string  `yaml:"cell"`
	Persistence float64 `yaml:"persistence"`
}

// StepReport is one merge event.
type StepReport struct {
	Time      float64 `yaml:"time"`
	Destroyed string  `yaml:"destroyed"`
	Owner     string  `yaml:"owner"`
}

// CrystalReport is one Morse-Smale cell.
type CrystalReport struct {
	Minimum string `yaml:"minimum"`
	Maximum string `yaml:"maximum"`
	Size    int    `yaml:"size"`
}

func newComplexReport(c *morse.Complex) ComplexReport {
	persistence := c.Persistence()
	r := ComplexReport{Kind: c.Kind().String()}
	for _, id := range c.Extrema() {
		r.Extrema = append(r.Extrema, ExtremumReport{Cell: id, Persistence: persistence[id]})
	}
	for _, step := range c.Filtration() {
		r.Filtration = append(r.Filtration, StepReport{Time: step.Time, Destroyed: step.DestroyedCell, Owner: step.OwningCell})
	}

	return r
}

func newCrystalReports(crystals []morse.Crystal) []CrystalReport {
	out := make([]CrystalReport, len(crystals))
	for i, c := range crystals {
		out[i] = CrystalReport{Minimum: c.Minimum, Maximum: c.Maximum, Size: len(c.Members)}
	}

	return out
}

func writeReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}
