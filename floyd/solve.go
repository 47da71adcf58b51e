// SPDX-License-Identifier: MIT

package floyd

import (
	"errors"
	"fmt"
	"math"
)

// ShortestPath is the one-call entry point: it validates rows, builds a
// Solver and answers start→end. It never returns an error; failures are
// reported through Answer.Outcome and Answer.Message.
func ShortestPath(rows [][]float64, start, end int, opts ...Option) Answer {
	g, err := NewGraph(rows)
	if err != nil {
		return failedAnswer(start, end, err)
	}

	return NewSolver(g, opts...).Solve(start, end)
}

// Solve answers the query start→end.
//
// Preconditions and checks (in order):
//  1. start != end (ErrNoPath).
//  2. start and end are nodes of the graph (ErrNoPath wrapping ErrNodeOutOfRange).
//  3. Snapshots are built (first call only).
//  4. end is reachable from start (ErrNoPath).
//
// Errors are converted into a Failed Answer; nothing escapes. Repeated calls
// with the same arguments return equal Answers.
func (s *Solver) Solve(start, end int) Answer {
	weight, paths, err := s.solve(start, end)
	switch {
	case err == nil:
		return Answer{
			Start:    start,
			End:      end,
			Outcome:  OutcomeComplete,
			Weight:   weight,
			Paths:    paths,
			MinPaths: minimalPaths(paths, s.opts.HopFiltering),
			Message:  messageDone,
		}
	default:
		return failedAnswer(start, end, err)
	}
}

func (s *Solver) solve(start, end int) (float64, []Path, error) {
	if start == end {
		return 0, nil, fmt.Errorf("%w: start and end are the same node %d", ErrNoPath, start)
	}
	if s.graph == nil {
		return 0, nil, ErrDimension
	}
	for _, v := range [...]int{start, end} {
		if !s.graph.contains(v) {
			return 0, nil, fmt.Errorf("%w: node %d of %d: %w", ErrNoPath, v, s.graph.Order(), ErrNodeOutOfRange)
		}
	}

	if err := s.build(); err != nil {
		return 0, nil, err
	}

	weight := s.at(s.Order(), start, end)
	if math.IsInf(weight, 1) {
		return 0, nil, fmt.Errorf("%w: %d is unreachable from %d", ErrNoPath, end, start)
	}

	return weight, s.shortestPaths(start, end), nil
}

// failedAnswer maps a sentinel error onto a Failed Answer.
func failedAnswer(start, end int, err error) Answer {
	outcome := OutcomeNoPath
	switch {
	case errors.Is(err, ErrDimension):
		outcome = OutcomeDimension
	case errors.Is(err, ErrNoPath):
		outcome = OutcomeNoPath
	}

	return Answer{
		Start:   start,
		End:     end,
		Outcome: outcome,
		Weight:  math.Inf(1),
		Message: err.Error(),
	}
}
