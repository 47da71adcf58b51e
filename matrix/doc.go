// Package matrix offers the dense storage and kernels behind floydpaths.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - NewDenseFromRows to ingest a [][]float64 literal (ragged rows rejected).
//   - NormalizeNoEdge to turn an adjacency matrix (0 = no edge) into a
//     distance matrix where every zero, the diagonal included, becomes +Inf.
//   - RelaxThrough, a single Floyd–Warshall elimination step that returns a
//     fresh snapshot instead of mutating its input, so callers can retain the
//     whole sequence of intermediate distance matrices.
//
// Matrices are best for dense or small graphs where O(V²) memory per matrix
// is acceptable. Retaining all V+1 snapshots costs O(V³) memory.
//
// ExampleRelaxThrough and the floyd package show typical usage.
package matrix
