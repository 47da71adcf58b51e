// SPDX-License-Identifier: MIT

package floyd

import (
	"math"
	"strconv"
	"strings"
)

// pathSeparator joins node indices in a rendered Path.
const pathSeparator = " -> "

// Path is an ordered sequence of node indices from start to end.
type Path []int

// String renders the path as "0 -> 3 -> 1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, pathSeparator)
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// link is a direct hop from→to used by at least one minimum-weight path.
type link struct {
	from, to int
}

// reconstructor holds the per-query state of path reconstruction.
// It is created for one query and dropped afterwards.
type reconstructor struct {
	s        *Solver
	n        int
	explored map[link]bool // segments already decomposed
	recorded map[link]bool // hops already in links
	links    []link        // direct hops in discovery order
}

func newReconstructor(s *Solver) *reconstructor {
	return &reconstructor{
		s:        s,
		n:        s.Order(),
		explored: make(map[link]bool),
		recorded: make(map[link]bool),
	}
}

// sameWeight reports whether a candidate split weight matches the segment
// weight within the configured epsilon. +Inf never matches.
func (r *reconstructor) sameWeight(candidate, target float64) bool {
	if math.IsInf(candidate, 1) {
		return false
	}

	return math.Abs(candidate-target) <= r.s.opts.Epsilon
}

func (r *reconstructor) record(l link) {
	if r.recorded[l] {
		return
	}
	r.recorded[l] = true
	r.links = append(r.links, l)
}

// discoverLinks decomposes segment a→b into direct hops.
//
// A node k ∉ {a,b} splits the segment when, in snapshot k (the distances
// before k is eliminated), d(a,k) + d(k,b) equals the final distance a→b.
// Candidates are scanned from n-1 down to 0; every qualifying split is
// explored independently. A segment without a split is itself a hop.
//
// Each segment is decomposed once per query, so discovery is O(n³) even
// when many decompositions share sub-segments.
func (r *reconstructor) discoverLinks(a, b int) {
	seg := link{from: a, to: b}
	if r.explored[seg] {
		return
	}
	r.explored[seg] = true

	final := r.s.at(r.n, a, b)
	var splits []int
	var k int
	for k = r.n - 1; k >= 0; k-- {
		if k == a || k == b {
			continue
		}
		if r.sameWeight(r.s.at(k, a, k)+r.s.at(k, k, b), final) {
			splits = append(splits, k)
		}
	}

	if len(splits) == 0 || (r.s.opts.DirectTies && r.sameWeight(r.s.at(0, a, b), final)) {
		r.record(seg)
	}
	for _, k = range splits {
		r.discoverLinks(a, k)
		r.discoverLinks(k, b)
	}
}

// assemblePaths chains the discovered hops into every start→end path.
//
// Hops leaving the same node are followed in discovery order, so paths
// through higher split nodes come first. A node already on the current
// chain is never revisited, so every emitted path is simple.
//
// Cost is proportional to the number of emitted paths, which can grow
// exponentially on tie-heavy graphs.
func (r *reconstructor) assemblePaths(start, end int) []Path {
	next := make(map[int][]int, len(r.links))
	for _, l := range r.links {
		next[l.from] = append(next[l.from], l.to)
	}

	var (
		paths  []Path
		onPath = make([]bool, r.n)
		chain  = Path{start}
		walk   func(u int)
	)
	onPath[start] = true
	walk = func(u int) {
		if u == end {
			paths = append(paths, append(Path(nil), chain...))
			return
		}
		for _, v := range next[u] {
			if onPath[v] {
				continue
			}
			onPath[v] = true
			chain = append(chain, v)
			walk(v)
			chain = chain[:len(chain)-1]
			onPath[v] = false
		}
	}
	walk(start)

	return paths
}

// shortestPaths enumerates every minimum-weight path start→end.
// The caller guarantees start != end and a finite distance.
func (s *Solver) shortestPaths(start, end int) []Path {
	r := newReconstructor(s)
	r.discoverLinks(start, end)

	return r.assemblePaths(start, end)
}
