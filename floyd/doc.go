// Package floyd answers shortest-path queries on a weighted directed graph
// given as an adjacency matrix, and enumerates every path that achieves the
// minimum weight.
//
// Overview:
//
//   - Floyd–Warshall computes all-pairs shortest distances by eliminating the
//     nodes one at a time: after step k every distance may route through nodes
//     0..k. This package keeps the distance matrix produced by EVERY step
//     (n+1 snapshots) instead of only the last one.
//   - The snapshots are what make full path enumeration possible. Snapshot k
//     holds distances before node k is eliminated, so a segment a→b routes
//     through k on some shortest path exactly when
//     snapshot_k[a][k] + snapshot_k[k][b] == final[a][b].
//   - Reconstruction applies that test recursively, collects the direct hops
//     of all shortest paths, and chains them into start→end paths.
//
// When to use:
//
//   - You need ALL minimum-weight routes between two nodes, not just one.
//   - The graph is small or dense (hundreds of nodes), and O(n³) memory for
//     the snapshots is acceptable.
//   - Many queries are answered on the same graph: the snapshots are built once
//     per Solver and shared by every query.
//
// Input contract:
//
//   - The matrix must be square (n rows of n elements). Otherwise every query
//     fails with a dimension error.
//   - A zero entry means "no edge". The diagonal is treated the same way, so a
//     node is not its own neighbour and d[i][i] is finite only through a cycle.
//   - Weights are expected to be positive. Negative weights and NaN are not
//     validated and produce unspecified results.
//
// Key features:
//
//   - ShortestPath(rows, start, end): one-call validation, build and query.
//   - Solver: binds a Graph and answers any number of queries; exposes every
//     snapshot via Snapshot(k) for inspection.
//   - Observer: step-by-step progress (cells relaxed per elimination step) and
//     a completion event with the build duration.
//   - WithEpsilon: tolerant weight matching for non-integer inputs.
//   - WithHopFiltering: restrict Answer.MinPaths to the fewest-node paths.
//   - WithDirectTies: report a direct edge that ties with a multi-hop route.
//
// Answer:
//
//   - Status "Complete" or "Failed"; Weight (+Inf on failure); Paths and
//     MinPaths; Message ("Done" or the error text).
//   - String renders four lines:
//
//     status - Complete
//     0->1: weight = 3;
//     paths: ('0 -> 3 -> 1',);
//     min_paths: ('0 -> 3 -> 1',);
//
// Error handling (sentinel errors):
//
//   - ErrDimension: the input matrix is not square.
//   - ErrNoPath: start == end, end unreachable, or a node index out of range.
//   - ErrNodeOutOfRange: always wrapped inside ErrNoPath by Solve.
//
// Solve and ShortestPath never return an error: every failure is reported as
// a Failed Answer whose Message carries the error text. Constructors
// (NewGraph, Solver.Snapshot, Solver.Distance) return wrapped sentinels that
// can be matched with errors.Is.
//
// Performance and complexity:
//
//   - Build: Time O(n³), Space O(n³) (n+1 snapshots of n² cells each).
//   - Discovery of the hops of one query: O(n³) (each of the n² segments is
//     decomposed at most once, testing n candidate splits).
//   - Path assembly: proportional to the number of paths emitted, which can be
//     exponential on graphs with many equal-weight routes.
//
// Determinism:
//
//   - Relaxation uses a fixed loop order and strict improvement.
//   - Split nodes are tried from n-1 down to 0, so paths are emitted in a
//     stable order: routes through higher-numbered split nodes first.
//
// Concurrency:
//
//   - A Solver is not safe for concurrent use; build one Solver per goroutine.
//   - Graph is immutable and may be shared.
//
// See example_test.go for runnable examples.
package floyd
