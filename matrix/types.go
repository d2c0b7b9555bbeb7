// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract consumed by tsp.NewDistances.
package matrix

// Matrix is a rectangular float64 table addressed by (row, col).
// Every accessor is O(1) except Clone, which copies all r*c cells.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads cell (row, col); ErrOutOfRange outside [0,Rows())×[0,Cols()).
	At(row, col int) (float64, error)

	// Set writes v into cell (row, col) with the same bounds rule as At.
	Set(row, col int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
