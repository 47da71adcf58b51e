// SPDX-License-Identifier: MIT

package floyd

import (
	"fmt"
	"time"

	"github.com/katalvlaran/floydpaths/matrix"
)

// Solver answers shortest-path queries on one Graph.
//
// The n+1 distance snapshots are built lazily on the first query and kept
// for the Solver's lifetime: snapshot k is the distance matrix before node k
// is eliminated, which is exactly what path reconstruction replays. The
// build runs at most once per Solver.
//
// A Solver is not safe for concurrent use. Independent Solvers may run in
// parallel.
//
// Memory: O(n³) for the retained snapshots. This is the scaling limit of
// the approach; a few thousand nodes already need gigabytes.
type Solver struct {
	graph    *Graph
	opts     Options
	computed bool            // snapshots built
	snaps    []*matrix.Dense // len n+1 once computed; never resized or mutated
}

// NewSolver binds a Solver to g. g must be non-nil.
func NewSolver(g *Graph, opts ...Option) *Solver {
	return &Solver{
		graph: g,
		opts:  gatherOptions(opts...),
	}
}

// Graph returns the Graph the Solver is bound to.
func (s *Solver) Graph() *Graph { return s.graph }

// Order returns the number of nodes of the bound Graph.
func (s *Solver) Order() int { return s.graph.Order() }

// build runs the Floyd–Warshall elimination once, retaining every snapshot.
//
// Implementation:
//   - Stage 1: snapshot 0 is the normalized graph itself (immutable, shared).
//   - Stage 2: for k = 0..n-1, snapshot k+1 = RelaxThrough(snapshot k, k);
//     notify Observer.OnStep.
//   - Stage 3: mark computed; notify Observer.OnComplete.
//
// Complexity: Time O(n³), Space O(n³).
func (s *Solver) build() error {
	if s.computed {
		return nil
	}
	if s.graph == nil {
		return fmt.Errorf("%w: %w", ErrDimension, matrix.ErrNilMatrix)
	}

	began := time.Now()
	n := s.graph.Order()
	snaps := make([]*matrix.Dense, n+1)
	snaps[0] = s.graph.dist

	var k, relaxed int
	var err error
	for k = 0; k < n; k++ {
		snaps[k+1], relaxed, err = matrix.RelaxThrough(snaps[k], k)
		if err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrDimension, k, err)
		}
		s.opts.Observer.OnStep(StepEvent{Step: k + 1, Node: k, Order: n, Relaxed: relaxed})
	}

	s.snaps = snaps
	s.computed = true
	s.opts.Observer.OnComplete(CompleteEvent{Order: n, Snapshots: len(snaps), Elapsed: time.Since(began)})

	return nil
}

// Snapshot returns a copy of snapshot k (0 ≤ k ≤ n), building the sequence
// on first use. Snapshot 0 is the normalized graph, snapshot n the final
// all-pairs distances.
func (s *Solver) Snapshot(k int) (*matrix.Dense, error) {
	if err := s.build(); err != nil {
		return nil, err
	}
	if k < 0 || k >= len(s.snaps) {
		return nil, fmt.Errorf("Snapshot(%d): %w", k, matrix.ErrOutOfRange)
	}

	return s.snaps[k].Clone(), nil
}

// Distances returns a copy of the final all-pairs distance matrix.
func (s *Solver) Distances() (*matrix.Dense, error) {
	return s.Snapshot(s.Order())
}

// Distance returns the shortest distance i→j (+Inf when unreachable).
func (s *Solver) Distance(i, j int) (float64, error) {
	if err := s.build(); err != nil {
		return 0, err
	}
	if !s.graph.contains(i) || !s.graph.contains(j) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", i, j, ErrNodeOutOfRange)
	}

	return s.at(len(s.snaps)-1, i, j), nil
}

// at reads snapshot k at (i,j). Callers guarantee the indices.
func (s *Solver) at(k, i, j int) float64 {
	v, _ := s.snaps[k].At(i, j) // safe: indices validated by the caller

	return v
}
