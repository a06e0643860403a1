// SPDX-License-Identifier: MIT

package morse_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/talus/core"
	"github.com/katalvlaran/talus/morse"
)

// field wraps a core graph and lets a test override single lookups.
type field struct {
	*core.Graph
	extraNeighbor map[string]string
	weight        func(from, to string) (float64, error)
	neighborErr   error
}

func (f *field) NeighborIDs(id string) ([]string, error) {
	if f.neighborErr != nil {
		return nil, f.neighborErr
	}
	ids, err := f.Graph.NeighborIDs(id)
	if extra, ok := f.extraNeighbor[id]; ok {
		ids = append(ids, extra)
	}

	return ids, err
}

func (f *field) Weight(from, to string) (float64, error) {
	if f.weight != nil {
		return f.weight(from, to)
	}

	return f.Graph.Weight(from, to)
}

// saddleGraph has one saddle "b" between peaks "a" and "c".
func saddleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("a", 3))
	require.NoError(t, g.AddVertex("b", 1))
	require.NoError(t, g.AddVertex("c", 2))
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)

	return g
}

func TestFromGraph_NilGraph(t *testing.T) {
	_, err := morse.FromGraph(morse.Descending, nil)
	assert.ErrorIs(t, err, morse.ErrNilGraph)

	_, err = morse.NewMorseSmale(nil)
	assert.ErrorIs(t, err, morse.ErrNilGraph)
}

func TestFromGraph_Errors(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name  string
		field func(t *testing.T) morse.Field
		kind  error
		node  string
		other string
		cause error
	}{
		{
			name: "NaN value",
			field: func(t *testing.T) morse.Field {
				g := saddleGraph(t)
				require.NoError(t, g.SetValue("c", math.NaN()))
				return g
			},
			kind: morse.ErrNanValue,
			node: "c",
		},
		{
			name: "unknown neighbour",
			field: func(t *testing.T) morse.Field {
				return &field{Graph: saddleGraph(t), extraNeighbor: map[string]string{"a": "ghost"}}
			},
			kind: morse.ErrMissingNode,
			node: "ghost",
		},
		{
			name: "neighbour lookup fails",
			field: func(t *testing.T) morse.Field {
				return &field{Graph: saddleGraph(t), neighborErr: boom}
			},
			kind:  morse.ErrMissingNode,
			node:  "a",
			cause: boom,
		},
		{
			name: "edge lookup fails",
			field: func(t *testing.T) morse.Field {
				return &field{Graph: saddleGraph(t), weight: func(string, string) (float64, error) {
					return 0, core.ErrEdgeNotFound
				}}
			},
			kind:  morse.ErrMissingEdge,
			node:  "b",
			other: "a",
			cause: core.ErrEdgeNotFound,
		},
		{
			name: "weight unavailable",
			field: func(t *testing.T) morse.Field {
				return &field{Graph: saddleGraph(t), weight: func(string, string) (float64, error) {
					return 0, morse.ErrMissingEdgeWeight
				}}
			},
			kind:  morse.ErrMissingEdgeWeight,
			node:  "b",
			other: "a",
		},
		{
			name: "NaN weight",
			field: func(t *testing.T) morse.Field {
				return &field{Graph: saddleGraph(t), weight: func(string, string) (float64, error) {
					return math.NaN(), nil
				}}
			},
			kind:  morse.ErrMissingEdgeWeight,
			node:  "b",
			other: "a",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := morse.FromGraph(morse.Descending, tc.field(t))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.kind)

			var merr *morse.Error
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tc.node, merr.Node)
			assert.Equal(t, tc.other, merr.Other)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestNewMorseSmale_PropagatesError(t *testing.T) {
	g := saddleGraph(t)
	require.NoError(t, g.SetValue("b", math.NaN()))

	_, err := morse.NewMorseSmale(g)
	assert.ErrorIs(t, err, morse.ErrNanValue)

	_, err = morse.NewMorseSmale(g, morse.WithParallel())
	assert.ErrorIs(t, err, morse.ErrNanValue)
}

func TestError_Message(t *testing.T) {
	err := &morse.Error{Kind: morse.ErrMissingEdge, Node: "b", Other: "a", Cause: errors.New("gone")}
	assert.Equal(t, `morse: expected edge but could not find it: edge "b"-"a": gone`, err.Error())

	err = &morse.Error{Kind: morse.ErrNanValue, Node: "x"}
	assert.Equal(t, `morse: node had NaN for its value: node "x"`, err.Error())
}
