// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file intentionally contains ONLY the public Matrix interface.
// Errors live in errors.go, validators in validators.go.
//
// "No edge / no path" is always math.Inf(1); it is never stored in a
// package variable, so no importer can change what every comparison means.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
