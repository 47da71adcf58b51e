// SPDX-License-Identifier: MIT

package floyd

// Query is one start→end request against a sample.
type Query struct {
	From int
	To   int
}

// Sample is a named adjacency matrix with the queries it demonstrates.
type Sample struct {
	Name    string
	Rows    [][]float64
	Queries []Query
}

// Samples returns the built-in demonstration graphs. Each call returns fresh
// slices, so callers may modify the result.
//
//   - "basic":   4 nodes, a single shortest path per pair and a sink (node 2).
//   - "ties":    8 nodes, two distinct minimum-weight routes 0→5 of weight 40.
//   - "hops":    5 nodes, two minimum-weight routes 0→1 with different hop counts.
func Samples() []Sample {
	return []Sample{
		{
			Name: "basic",
			Rows: [][]float64{
				{0, 4, 0, 2},
				{0, 0, 6, 0},
				{0, 0, 0, 0},
				{0, 1, 10, 0},
			},
			Queries: []Query{{0, 1}, {1, 2}, {0, 3}, {0, 2}},
		},
		{
			Name: "ties",
			Rows: [][]float64{
				{0, 10, 20, 0, 20, 0, 0, 0},
				{10, 0, 0, 20, 0, 0, 0, 0},
				{10, 0, 0, 0, 0, 20, 0, 0},
				{0, 10, 0, 0, 20, 0, 20, 0},
				{10, 0, 0, 20, 0, 20, 0, 0},
				{0, 0, 10, 0, 20, 0, 0, 20},
				{0, 0, 0, 10, 0, 0, 0, 20},
				{0, 0, 0, 0, 0, 20, 3, 0},
			},
			Queries: []Query{{0, 5}},
		},
		{
			Name: "hops",
			Rows: [][]float64{
				{0, 0, 0, 1, 1},
				{0, 0, 0, 0, 0},
				{0, 1, 0, 0, 0},
				{0, 0, 1, 0, 0},
				{0, 2, 0, 0, 0},
			},
			Queries: []Query{{0, 1}},
		},
	}
}
