// Package floydpaths finds the shortest-path weight between two nodes of a
// weighted directed graph, and every path that achieves it.
//
// What is floydpaths?
//
//	A small library plus CLI built around one idea: keep every intermediate
//	Floyd–Warshall distance matrix, then replay them to recover ALL
//	minimum-weight paths instead of a single predecessor chain.
//		• Dense matrices with bounds-checked access and single-step relaxation
//		• A Solver that builds the n+1 snapshots once and answers many queries
//		• Answers with status, weight, full path set and a fewest-hop subset
//		• Progress observers for logs and OpenTelemetry
//
// Under the hood, everything is organized under these packages:
//
//	matrix/             : Dense storage, NormalizeNoEdge, RelaxThrough
//	floyd/              : Graph, Solver, path reconstruction, Answer
//	observe/            : Observer implementations (charmbracelet/log, OpenTelemetry)
//	internal/config     : viper + .env configuration for the CLI
//	internal/matrixfile : YAML/JSON matrix documents
//	internal/telemetry  : OTLP tracing setup
//	cmd/floyd           : the `floyd solve` and `floyd demo` commands
//
// Quick example:
//
//	    0 ──4──> 1 ──6──> 2
//	     \       ^
//	      2      1
//	       \     │
//	        └──> 3
//
//	ans := floyd.ShortestPath(rows, 0, 2)
//	// status - Complete
//	// 0->2: weight = 9;
//	// paths: ('0 -> 3 -> 1 -> 2',);
//	// min_paths: ('0 -> 3 -> 1 -> 2',);
//
//	go install github.com/katalvlaran/floydpaths/cmd/floyd@latest
package floydpaths
