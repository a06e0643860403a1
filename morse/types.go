// SPDX-License-Identifier: MIT

package morse

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Field is the read-only view of a scalar-field graph consumed by the
// constructors. *core.Graph implements it.
//
// Vertices and NeighborIDs must return a deterministic order; it decides
// every tie-break of the construction.
type Field interface {
	// Vertices lists every vertex ID.
	Vertices() []string
	// Value returns the scalar value of a vertex.
	Value(id string) (float64, error)
	// NeighborIDs lists the vertices adjacent to id.
	NeighborIDs(id string) ([]string, error)
	// Weight returns the weight of the edge joining from and to.
	Weight(from, to string) (float64, error)
}

// Kind selects the direction of a Complex.
type Kind int

const (
	// Descending complexes are rooted at maxima: vertices are processed from
	// the largest value down.
	Descending Kind = iota
	// Ascending complexes are rooted at minima: vertices are processed from
	// the smallest value up.
	Ascending
)

// String returns "descending" or "ascending".
func (k Kind) String() string {
	if k == Ascending {
		return "ascending"
	}

	return "descending"
}

// dominates reports whether a lies on the priority side of b (inclusive).
func (k Kind) dominates(a, b float64) bool {
	if k == Ascending {
		return a <= b
	}

	return a >= b
}

// moreExtreme reports whether a is strictly more extreme than b.
func (k Kind) moreExtreme(a, b float64) bool {
	if k == Ascending {
		return a < b
	}

	return a > b
}

// FiltrationStep is one basin-merge event: at Time (the lifetime of the
// destroyed extremum) the basin of DestroyedCell joins that of OwningCell.
type FiltrationStep struct {
	Time          float64
	DestroyedCell string
	OwningCell    string
}

// noParent marks a record that was never the destroyed side of a merge.
const noParent = -1

// record is the basin bookkeeping of one processed point. Indices refer to
// positions in Complex.points.
type record struct {
	lifetime    float64
	mergeParent int
	ancestor    int
	extremum    bool
}

// seedRecord returns the record of a freshly seeded extremum at position i.
func seedRecord(i int) *record {
	return &record{lifetime: math.Inf(1), mergeParent: noParent, ancestor: i, extremum: true}
}

// orderedPoint is an arena entry: a vertex and, once processed, its record.
type orderedPoint struct {
	id    string
	value float64
	data  *record
}

// Option configures construction.
type Option func(*options)

type options struct {
	logger   logrus.FieldLogger
	parallel bool
}

// WithLogger sets the logger receiving construction traces at Debug level.
// The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallel lets NewMorseSmale build its two complexes concurrently.
// It has no effect on FromGraph.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// debugEnabled reports whether l emits Debug entries. Loggers other than
// logrus' own are assumed to.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}

	return true
}

func newOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
