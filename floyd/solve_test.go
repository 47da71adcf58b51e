// SPDX-License-Identifier: MIT

package floyd_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floydpaths/floyd"
)

// pathStrings renders paths for compact comparisons.
func pathStrings(paths []floyd.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Scenarios on the basic 4-node graph.
// ------------------------------------------------------------------------

func TestSolve_Basic(t *testing.T) {
	cases := []struct {
		start, end int
		weight     float64
		paths      []string
	}{
		{0, 1, 3, []string{"0 -> 3 -> 1"}},
		{0, 2, 9, []string{"0 -> 3 -> 1 -> 2"}},
		{1, 2, 6, []string{"1 -> 2"}},
		{0, 3, 2, []string{"0 -> 3"}},
		{3, 2, 7, []string{"3 -> 1 -> 2"}},
	}
	s := mustSolver(t, basicRows())
	for _, tc := range cases {
		a := s.Solve(tc.start, tc.end)
		require.True(t, a.Complete(), "%d->%d: %s", tc.start, tc.end, a.Message)
		assert.Equal(t, floyd.OutcomeComplete, a.Outcome)
		assert.Equal(t, tc.weight, a.Weight, "%d->%d", tc.start, tc.end)
		assert.Equal(t, tc.paths, pathStrings(a.Paths), "%d->%d", tc.start, tc.end)
		assert.Equal(t, tc.paths, pathStrings(a.MinPaths), "%d->%d", tc.start, tc.end)
		assert.Equal(t, "Done", a.Message)
	}
}

func TestSolve_Unreachable(t *testing.T) {
	a := floyd.ShortestPath(basicRows(), 2, 0)
	assert.False(t, a.Complete())
	assert.Equal(t, floyd.OutcomeNoPath, a.Outcome)
	assert.Equal(t, floyd.StatusFailed, a.Status())
	assert.Equal(t, inf, a.Weight)
	assert.Empty(t, a.Paths)
	assert.Empty(t, a.MinPaths)
	assert.Contains(t, a.Message, floyd.ErrNoPath.Error())
}

func TestSolve_SelfQuery(t *testing.T) {
	a := floyd.ShortestPath(basicRows(), 1, 1)
	assert.Equal(t, floyd.OutcomeNoPath, a.Outcome)
	assert.Equal(t, inf, a.Weight)
	assert.Contains(t, a.Message, "same node")
}

func TestSolve_OutOfRange(t *testing.T) {
	for _, q := range []floyd.Query{{From: 0, To: 4}, {From: -1, To: 2}, {From: 7, To: 0}} {
		a := floyd.ShortestPath(basicRows(), q.From, q.To)
		assert.Equal(t, floyd.OutcomeNoPath, a.Outcome, "%+v", q)
		assert.Contains(t, a.Message, floyd.ErrNodeOutOfRange.Error(), "%+v", q)
	}
}

func TestSolve_NonSquare(t *testing.T) {
	a := floyd.ShortestPath([][]float64{{0, 1, 2}, {1, 0, 2}}, 0, 1)
	assert.Equal(t, floyd.OutcomeDimension, a.Outcome)
	assert.Equal(t, floyd.StatusFailed, a.Status())
	assert.Equal(t, inf, a.Weight)
	assert.Contains(t, a.Message, floyd.ErrDimension.Error())
}

func TestSolve_EmptyMatrix(t *testing.T) {
	a := floyd.ShortestPath(nil, 0, 1)
	assert.Equal(t, floyd.OutcomeNoPath, a.Outcome)
	assert.Contains(t, a.Message, floyd.ErrNodeOutOfRange.Error())
}

func TestSolve_Idempotent(t *testing.T) {
	s := mustSolver(t, sampleRows(t, "ties"))
	first := s.Solve(0, 5)
	second := s.Solve(0, 5)
	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

// ------------------------------------------------------------------------
// 2. Ties and hop counts.
// ------------------------------------------------------------------------

func TestSolve_Ties(t *testing.T) {
	a := floyd.ShortestPath(sampleRows(t, "ties"), 0, 5)
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, 40.0, a.Weight)
	assert.Equal(t, []string{"0 -> 4 -> 5", "0 -> 2 -> 5"}, pathStrings(a.Paths))
}

func TestSolve_CycleThroughStart(t *testing.T) {
	s := mustSolver(t, sampleRows(t, "ties"))
	d, err := s.Distance(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 20.0, d)
}

func TestSolve_MinPathsDefaultKeepsAll(t *testing.T) {
	a := floyd.ShortestPath(sampleRows(t, "hops"), 0, 1)
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, 3.0, a.Weight)
	want := []string{"0 -> 4 -> 1", "0 -> 3 -> 2 -> 1"}
	assert.Equal(t, want, pathStrings(a.Paths))
	// Without hop filtering the "minimal" set is the full set.
	assert.Equal(t, want, pathStrings(a.MinPaths))
}

func TestSolve_HopFiltering(t *testing.T) {
	a := floyd.ShortestPath(sampleRows(t, "hops"), 0, 1, floyd.WithHopFiltering())
	require.True(t, a.Complete(), a.Message)
	assert.Len(t, a.Paths, 2)
	assert.Equal(t, []string{"0 -> 4 -> 1"}, pathStrings(a.MinPaths))
}

func TestSolve_DirectTies(t *testing.T) {
	rows := [][]float64{
		{0, 2, 1},
		{0, 0, 0},
		{0, 1, 0},
	}

	a := floyd.ShortestPath(rows, 0, 1)
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, []string{"0 -> 2 -> 1"}, pathStrings(a.Paths))

	a = floyd.ShortestPath(rows, 0, 1, floyd.WithDirectTies())
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, 2.0, a.Weight)
	assert.Equal(t, []string{"0 -> 1", "0 -> 2 -> 1"}, pathStrings(a.Paths))
}

func TestSolve_Epsilon(t *testing.T) {
	// 0.1+0.2 misses 0.15+0.15 by one ulp.
	rows := [][]float64{
		{0, 0.1, 0.15, 0},
		{0, 0, 0, 0.2},
		{0, 0, 0, 0.15},
		{0, 0, 0, 0},
	}

	a := floyd.ShortestPath(rows, 0, 3)
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, 0.3, a.Weight)
	assert.Equal(t, []string{"0 -> 2 -> 3"}, pathStrings(a.Paths))

	a = floyd.ShortestPath(rows, 0, 3, floyd.WithEpsilon(1e-9))
	require.True(t, a.Complete(), a.Message)
	assert.Equal(t, []string{"0 -> 2 -> 3", "0 -> 1 -> 3"}, pathStrings(a.Paths))
}

// ------------------------------------------------------------------------
// 3. Property check against exhaustive enumeration of simple paths.
// ------------------------------------------------------------------------

// randomRows builds an n×n adjacency matrix with integer weights in [1,4]
// and the given edge density. Small weights make ties frequent.
func randomRows(rng *rand.Rand, n int, density float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				rows[i][j] = float64(1 + rng.Intn(4))
			}
		}
	}

	return rows
}

// bruteForce enumerates every simple path start→end and keeps the lightest.
func bruteForce(rows [][]float64, start, end int) (float64, []string) {
	n := len(rows)
	best := inf
	var found []floyd.Path

	onPath := make([]bool, n)
	chain := floyd.Path{start}
	onPath[start] = true
	var walk func(u int, w float64)
	walk = func(u int, w float64) {
		if u == end {
			switch {
			case w < best:
				best = w
				found = []floyd.Path{append(floyd.Path(nil), chain...)}
			case w == best:
				found = append(found, append(floyd.Path(nil), chain...))
			}

			return
		}
		for v := 0; v < n; v++ {
			if rows[u][v] == 0 || onPath[v] {
				continue
			}
			onPath[v] = true
			chain = append(chain, v)
			walk(v, w+rows[u][v])
			chain = chain[:len(chain)-1]
			onPath[v] = false
		}
	}
	walk(start, 0)

	out := pathStrings(found)
	sort.Strings(out)

	return best, out
}

func pathWeight(rows [][]float64, p floyd.Path) float64 {
	var w float64
	for i := 1; i < len(p); i++ {
		w += rows[p[i-1]][p[i]]
	}

	return w
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var trial, start, end int
	for trial = 0; trial < 60; trial++ {
		n := 2 + rng.Intn(5)
		rows := randomRows(rng, n, 0.3+0.5*rng.Float64())
		s := mustSolver(t, rows, floyd.WithDirectTies())
		plain := mustSolver(t, rows)

		for start = 0; start < n; start++ {
			for end = 0; end < n; end++ {
				if start == end {
					continue
				}
				wantW, wantPaths := bruteForce(rows, start, end)
				a := s.Solve(start, end)
				if len(wantPaths) == 0 {
					assert.False(t, a.Complete(), "trial %d %d->%d", trial, start, end)
					continue
				}
				require.True(t, a.Complete(), "trial %d %d->%d: %s", trial, start, end, a.Message)
				assert.Equal(t, wantW, a.Weight, "trial %d %d->%d", trial, start, end)

				got := pathStrings(a.Paths)
				sort.Strings(got)
				assert.Equal(t, wantPaths, got, "trial %d %d->%d rows=%v", trial, start, end, rows)

				// Without direct ties every reported path is still a shortest one.
				b := plain.Solve(start, end)
				require.True(t, b.Complete())
				require.NotEmpty(t, b.Paths)
				for _, p := range b.Paths {
					assert.Equal(t, wantW, pathWeight(rows, p), "trial %d path %s", trial, p)
					assert.Contains(t, wantPaths, p.String())
				}
			}
		}
	}
}
