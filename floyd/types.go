// SPDX-License-Identifier: MIT

// Package floyd defines the sentinel errors, result tags and configuration
// options of the Floyd–Warshall path enumerator.
//
// Options:
//
//	– Observer:     progress sink notified once per elimination step and once on completion.
//	– Epsilon:      tolerance for "same weight" comparisons during reconstruction (default 0, exact).
//	– HopFiltering: restrict Answer.MinPaths to the paths with the fewest nodes.
//	– DirectTies:   also report a direct edge when it ties with a multi-hop path.
//
// Errors (sentinel):
//
//	– ErrDimension      if the input matrix is not square.
//	– ErrNoPath         if start == end, or end is unreachable from start.
//	– ErrNodeOutOfRange if a queried node is outside [0, n); always wrapped by ErrNoPath.
package floyd

import (
	"errors"
	"math"
)

// Sentinel errors. They never escape Solve/ShortestPath: the query boundary
// converts them into a Failed Answer. Callers that build a Graph directly
// receive ErrDimension from NewGraph and can match it with errors.Is.
var (
	// ErrDimension indicates that the adjacency matrix is not square.
	ErrDimension = errors.New("floyd: matrix is not square")

	// ErrNoPath indicates that no path exists between the queried nodes,
	// including the disallowed self-query start == end.
	ErrNoPath = errors.New("floyd: no path between nodes")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = errors.New("floyd: node index out of range")
)

// Outcome tags the result of a query.
//
// OutcomeComplete  – a finite shortest weight was found and its paths enumerated.
// OutcomeDimension – the matrix failed the square-shape check.
// OutcomeNoPath    – self-query, out-of-range node or unreachable target.
type Outcome int

const (
	// OutcomeComplete marks a successful query.
	OutcomeComplete Outcome = iota

	// OutcomeDimension marks a query against a non-square matrix.
	OutcomeDimension

	// OutcomeNoPath marks a query with no admissible path.
	OutcomeNoPath
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeDimension:
		return "dimension_error"
	case OutcomeNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Status strings rendered on the first line of Answer.String.
const (
	StatusComplete = "Complete"
	StatusFailed   = "Failed"
)

// messageDone is the Answer.Message of a completed query.
const messageDone = "Done"

// Options configures a Solver.
//
// Observer     – receives progress events; nil is replaced by NopObserver.
// Epsilon      – absolute tolerance when comparing split weights (≥ 0).
// HopFiltering – if true, MinPaths keeps only the paths with the fewest nodes;
//
//	if false (default), MinPaths equals Paths.
//
// DirectTies   – if true, a direct edge whose weight equals the shortest
//
//	distance is reported alongside the multi-hop decompositions.
type Options struct {
	Observer     Observer
	Epsilon      float64
	HopFiltering bool
	DirectTies   bool
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithObserver installs a progress observer. Passing nil restores the no-op sink.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o == nil {
			o = NopObserver{}
		}
		opts.Observer = o
	}
}

// WithEpsilon sets the tolerance used when matching split weights.
// Must be finite and non-negative; invalid values panic, like other
// option constructors in this module family.
func WithEpsilon(eps float64) Option {
	return func(opts *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			panic("floyd: epsilon must be finite and non-negative")
		}
		opts.Epsilon = eps
	}
}

// WithHopFiltering makes Answer.MinPaths hold only the fewest-node paths.
func WithHopFiltering() Option {
	return func(opts *Options) {
		opts.HopFiltering = true
	}
}

// WithDirectTies reports direct edges that tie with multi-hop paths.
func WithDirectTies() Option {
	return func(opts *Options) {
		opts.DirectTies = true
	}
}

// DefaultOptions returns the Options used when no Option is supplied.
//
// Defaults:
//   - Observer:     NopObserver{}.
//   - Epsilon:      0 (exact comparisons).
//   - HopFiltering: false (MinPaths == Paths).
//   - DirectTies:   false.
func DefaultOptions() Options {
	return Options{
		Observer: NopObserver{},
	}
}

func gatherOptions(user ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range user {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
