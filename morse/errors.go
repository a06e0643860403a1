// SPDX-License-Identifier: MIT

package morse

import (
	"errors"
	"fmt"
)

// Sentinel errors for complex construction.
var (
	// ErrNilGraph indicates that a nil Field was passed to a constructor.
	ErrNilGraph = errors.New("morse: graph is nil")

	// ErrNanValue indicates a vertex whose scalar value is NaN.
	ErrNanValue = errors.New("morse: node had NaN for its value")

	// ErrMissingNode indicates a vertex referenced by the graph that could
	// not be resolved (unknown ID or failed lookup).
	ErrMissingNode = errors.New("morse: expected node in graph but could not find it")

	// ErrMissingNeighbors indicates a vertex that had no neighbours where
	// neighbours were required.
	ErrMissingNeighbors = errors.New("morse: node had no neighbors but neighbors were expected")

	// ErrMissingEdgeWeight indicates an edge whose weight is unavailable or NaN.
	// Field implementations may return it from Weight.
	ErrMissingEdgeWeight = errors.New("morse: could not compute gradient, edge had no weight")

	// ErrMissingEdge indicates two vertices reported as neighbours without an edge.
	ErrMissingEdge = errors.New("morse: expected edge but could not find it")

	// ErrNoMaximum indicates that no surviving basin could be selected for a saddle.
	ErrNoMaximum = errors.New("morse: could not find a maximum")

	// ErrMissingData indicates a processed vertex without its basin record.
	ErrMissingData = errors.New("morse: could not find data for node")
)

// Error reports a construction failure together with the offending vertex.
//
// Kind is one of the package sentinels. Other is set for edge failures.
// Cause is the error returned by the Field, if any.
type Error struct {
	Kind  error
	Node  string
	Other string
	Cause error
}

func newError(kind error, node, other string, cause error) *Error {
	return &Error{Kind: kind, Node: node, Other: other, Cause: cause}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: node %q", e.Kind, e.Node)
	if e.Other != "" {
		msg = fmt.Sprintf("%v: edge %q-%q", e.Kind, e.Node, e.Other)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel and the Field error to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}
