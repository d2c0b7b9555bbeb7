// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used for travel-cost tables.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone) that
//     loaders may implement directly when they already own a table.
//   - Dense, a row-major implementation with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) shared by
//     the tsp package when it ingests a cost table.
//
// Public accessors never panic on user input; they return the sentinels from
// errors.go wrapped with call-site context, so callers match with errors.Is.
package matrix
