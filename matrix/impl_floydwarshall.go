// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense Floyd–Warshall split into single elimination steps so every
//     intermediate distance matrix can be retained by the caller.
//   - Adjacency → distance normalization with the "zero means no edge" policy.
//
// Contract:
//   - Square matrix; +Inf means "no path".
//   - The diagonal is NOT forced to 0: a node is not its own neighbour, so
//     d[i,i] starts at +Inf and only becomes finite through a cycle.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opNormalizeNoEdge = "NormalizeNoEdge"
	opRelaxThrough    = "RelaxThrough"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NormalizeNoEdge converts adjacency (0 / w) into a distance matrix in-place:
//
//	every 0 -> +Inf (diagonal included); non-zero -> unchanged.
//
// Requires a square matrix. Returns ErrNonSquare otherwise.
// Complexity: O(n^2).
//
// Notes:
//   - Zero-weight self-loops are erased by this policy. Self-queries are
//     rejected upstream, so nothing observable depends on them.
func NormalizeNoEdge(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return matrixErrorf(opNormalizeNoEdge, err)
	}

	// Rewrite values in a fixed order for determinism.
	var off int
	for off = 0; off < len(d.data); off++ {
		if d.data[off] == 0.0 {
			d.data[off] = math.Inf(1)
		}
	}

	return nil
}

// RelaxThrough performs elimination step k of Floyd–Warshall on prev and
// returns the resulting snapshot as a NEW matrix; prev is left untouched.
//
//	next[i,j] = min(prev[i,j], prev[i,k] + prev[k,j])   for i≠k, j≠k
//	next[k,·] = prev[k,·], next[·,k] = prev[·,k]
//
// The second return value counts the cells that strictly improved.
//
// Loop order is fixed (i → j) and relaxation is strict (<), so ties keep the
// older value and the result is deterministic.
// Time: O(n^2); Space: O(n^2) for the new snapshot.
//
// AI-Hints:
//   - Call it for k = 0..n-1 keeping every result to obtain the n+1 snapshot
//     sequence needed for path reconstruction.
func RelaxThrough(prev *Dense, k int) (*Dense, int, error) {
	if err := ValidateSquare(prev); err != nil {
		return nil, 0, matrixErrorf(opRelaxThrough, err)
	}
	n := prev.r
	if err := ValidateIndex(k, n); err != nil {
		return nil, 0, matrixErrorf(opRelaxThrough, err)
	}

	// Start from a copy: row k and column k are thereby carried over unchanged.
	next := prev.Clone()

	var (
		i, j         int
		baseK, baseI int
		ik, kj, cand float64
		relaxed      int
	)
	src, dst := prev.data, next.data
	baseK = k * n

	for i = 0; i < n; i++ {
		if i == k {
			continue
		}
		baseI = i * n
		ik = src[baseI+k]
		if math.IsInf(ik, 1) { // i cannot reach k: nothing improves via k
			continue
		}
		for j = 0; j < n; j++ {
			if j == k {
				continue
			}
			kj = src[baseK+j]
			if math.IsInf(kj, 1) {
				continue
			}
			cand = ik + kj
			if cand < src[baseI+j] {
				dst[baseI+j] = cand
				relaxed++
			}
		}
	}

	return next, relaxed, nil
}
