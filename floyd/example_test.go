// SPDX-License-Identifier: MIT

// Package floyd_test provides runnable examples for the path enumerator.
package floyd_test

import (
	"fmt"

	"github.com/katalvlaran/floydpaths/floyd"
)

// ExampleShortestPath answers a single query in one call.
func ExampleShortestPath() {
	rows := [][]float64{
		{0, 4, 0, 2},
		{0, 0, 6, 0},
		{0, 0, 0, 0},
		{0, 1, 10, 0},
	}
	fmt.Println(floyd.ShortestPath(rows, 0, 2))
	// Output:
	// status - Complete
	// 0->2: weight = 9;
	// paths: ('0 -> 3 -> 1 -> 2',);
	// min_paths: ('0 -> 3 -> 1 -> 2',);
}

// ExampleSolver_Solve reuses one Solver for several queries; the snapshots
// are built on the first one.
func ExampleSolver_Solve() {
	g, err := floyd.NewGraph([][]float64{
		{0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 2, 0, 0, 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	s := floyd.NewSolver(g, floyd.WithHopFiltering())

	a := s.Solve(0, 1)
	fmt.Println(a.Weight, a.Paths, a.MinPaths)
	fmt.Println(s.Solve(1, 0).Status())
	// Output:
	// 3 [0 -> 4 -> 1 0 -> 3 -> 2 -> 1] [0 -> 4 -> 1]
	// Failed
}

// ExampleWithObserver counts the cells improved by each elimination step.
func ExampleWithObserver() {
	obs := floyd.ObserverFuncs{
		Step: func(ev floyd.StepEvent) {
			fmt.Printf("step %d/%d: %d relaxed\n", ev.Step, ev.Order, ev.Relaxed)
		},
	}
	_ = floyd.ShortestPath([][]float64{
		{0, 4, 0, 2},
		{0, 0, 6, 0},
		{0, 0, 0, 0},
		{0, 1, 10, 0},
	}, 0, 1, floyd.WithObserver(obs))
	// Output:
	// step 1/4: 0 relaxed
	// step 2/4: 2 relaxed
	// step 3/4: 0 relaxed
	// step 4/4: 2 relaxed
}
