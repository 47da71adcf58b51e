// SPDX-License-Identifier: MIT

package floyd

import (
	"fmt"

	"github.com/katalvlaran/floydpaths/matrix"
)

// Graph is a validated, normalized adjacency matrix.
//
// Every zero entry of the input, the diagonal included, is stored as
// +Inf. A Graph is immutable: the underlying Dense is never
// handed out by reference.
type Graph struct {
	dist *matrix.Dense // normalized distances; snapshot 0 of every Solver
}

// NewGraph validates rows and builds a Graph.
//
// Preconditions and validation (in order):
//  1. len(rows)² must equal the total number of elements (ErrDimension).
//  2. Every row must have len(rows) elements (ErrDimension wrapping matrix.ErrBadShape).
//
// Weights are not validated beyond shape: negative or NaN entries are kept
// as given and produce unspecified results.
//
// Complexity: O(n²).
func NewGraph(rows [][]float64) (*Graph, error) {
	n := len(rows)
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if n*n != total {
		return nil, fmt.Errorf("%w: %d rows hold %d elements", ErrDimension, n, total)
	}

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimension, err)
	}

	return newGraph(d)
}

// NewGraphFromMatrix builds a Graph from any square Matrix. The input is
// copied; later changes to m do not affect the Graph.
func NewGraphFromMatrix(m matrix.Matrix) (*Graph, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimension, err)
	}

	n := m.Rows()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j], _ = m.At(i, j) // safe after shape validation
		}
	}

	return NewGraph(rows)
}

func newGraph(d *matrix.Dense) (*Graph, error) {
	if err := matrix.NormalizeNoEdge(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimension, err)
	}

	return &Graph{dist: d}, nil
}

// Order returns the number of nodes n.
func (g *Graph) Order() int { return g.dist.Rows() }

// Weight returns the normalized weight of edge i→j (+Inf when absent).
func (g *Graph) Weight(i, j int) (float64, error) {
	w, err := g.dist.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: (%d,%d): %w", ErrNodeOutOfRange, i, j, err)
	}

	return w, nil
}

// Dense returns a copy of the normalized matrix.
func (g *Graph) Dense() *matrix.Dense { return g.dist.Clone() }

// contains reports whether v is a node of g.
func (g *Graph) contains(v int) bool { return v >= 0 && v < g.Order() }
