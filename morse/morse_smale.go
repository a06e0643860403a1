// SPDX-License-Identifier: MIT

package morse

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// MorseSmale holds the ascending and descending complexes of one graph.
// The two share no state.
type MorseSmale struct {
	Ascending  *Complex
	Descending *Complex
}

// Crystal is a Morse-Smale cell: the vertices flowing down to Minimum in
// the ascending complex and up to Maximum in the descending complex.
type Crystal struct {
	Minimum string
	Maximum string
	Members []string // sorted
}

// NewMorseSmale builds the ascending and then the descending complex of g
// and returns the first error. With WithParallel both are built
// concurrently; the graph must then tolerate concurrent reads
// (*core.Graph does).
func NewMorseSmale(g Field, opts ...Option) (*MorseSmale, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts)
	ms := &MorseSmale{}

	if !o.parallel {
		var err error
		if ms.Ascending, err = FromGraph(Ascending, g, opts...); err != nil {
			return nil, err
		}
		if ms.Descending, err = FromGraph(Descending, g, opts...); err != nil {
			return nil, err
		}
		return ms, nil
	}

	var eg errgroup.Group
	eg.Go(func() (err error) {
		ms.Ascending, err = FromGraph(Ascending, g, opts...)
		return err
	})
	eg.Go(func() (err error) {
		ms.Descending, err = FromGraph(Descending, g, opts...)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return ms, nil
}

// Crystals partitions the vertices by their (minimum, maximum) ancestor
// pair. Crystals are sorted by Maximum, then Minimum.
func (ms *MorseSmale) Crystals() []Crystal {
	return crystalsOf(ms.Ascending.Ancestors(), ms.Descending.Ancestors())
}

// CrystalsAtLifetime is Crystals over both complexes simplified at t
// (see Complex.CellsAtLifetime).
func (ms *MorseSmale) CrystalsAtLifetime(t float64) []Crystal {
	return crystalsOf(ms.Ascending.CellsAtLifetime(t), ms.Descending.CellsAtLifetime(t))
}

func crystalsOf(minima, maxima map[string]string) []Crystal {
	type key struct{ min, max string }
	groups := make(map[key][]string)
	for id, lo := range minima {
		k := key{min: lo, max: maxima[id]}
		groups[k] = append(groups[k], id)
	}

	out := make([]Crystal, 0, len(groups))
	for k, members := range groups {
		sort.Strings(members)
		out = append(out, Crystal{Minimum: k.min, Maximum: k.max, Members: members})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Maximum != out[j].Maximum {
			return out[i].Maximum < out[j].Maximum
		}
		return out[i].Minimum < out[j].Minimum
	})

	return out
}
