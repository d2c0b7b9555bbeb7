// Package tsp - the Distance Model.
//
// Distances copies a matrix.Matrix once into a flat row-major buffer so the
// hot loops (cost evaluation, neighbourhood deltas) index a slice directly and
// no caller can mutate the table behind a running search.
//
// Design:
//   - NaN and −Inf entries are rejected on ingestion; symmetry and non-negativity are
//     trusted to the loader.
//   - Tour costs are stabilised to 1e-9 so that equal tours compare equal
//     regardless of summation order.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/memetic/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Distances is an immutable n×n table of travel costs indexed by city position.
// It is safe for concurrent readers.
type Distances struct {
	n int
	w []float64 // w[i*n+j] = cost i→j
}

// NewDistances copies m into an immutable Distances.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare from shape validation,
//   - ErrEmptyInstance for a 0×0 matrix,
//   - matrix.ErrNaNInf when an entry is NaN or −Inf (+Inf is accepted as "no edge").
//
// Complexity: O(n²).
func NewDistances(m matrix.Matrix) (*Distances, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("tsp: distances: %w", err)
	}
	if m.Rows() == 0 && m.Cols() == 0 {
		return nil, ErrEmptyInstance
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("tsp: distances: %w", err)
	}
	if err := matrix.ValidateFinite(m, true); err != nil {
		return nil, fmt.Errorf("tsp: distances: %w", err)
	}

	var (
		n    = m.Rows()
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("tsp: distances: %w", err)
			}
			if math.IsInf(x, -1) {
				return nil, fmt.Errorf("tsp: distances (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			w[i*n+j] = x
		}
	}

	return &Distances{n: n, w: w}, nil
}

// NewDistancesFromRows builds Distances straight from a [][]float64 table.
// Unlike matrix.NewDenseFromRows it keeps +Inf entries ("no edge").
//
// Errors: ErrEmptyInstance, matrix.ErrNonSquare, matrix.ErrRaggedRows,
// matrix.ErrNaNInf on NaN or −Inf.
func NewDistancesFromRows(rows [][]float64) (*Distances, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyInstance
	}

	var (
		w    = make([]float64, n*n)
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("tsp: distances row %d: %w", i, matrix.ErrRaggedRows)
		}
		if len(rows[i]) != n {
			return nil, fmt.Errorf("tsp: distances %dx%d: %w", n, len(rows[i]), matrix.ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if math.IsNaN(x) || math.IsInf(x, -1) {
				return nil, fmt.Errorf("tsp: distances (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			w[i*n+j] = x
		}
	}

	return &Distances{n: n, w: w}, nil
}

// N returns the number of cities.
func (d *Distances) N() int { return d.n }

// At returns the cost i→j, or ErrInvalidIndex.
// Complexity: O(1).
func (d *Distances) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("tsp: At(%d,%d) with n=%d: %w", i, j, d.n, ErrInvalidIndex)
	}

	return d.w[i*d.n+j], nil
}

// at is the unchecked hot-path accessor.
func (d *Distances) at(i, j int) float64 { return d.w[i*d.n+j] }

// TourCost returns the closed-tour cost of perm: the sum over consecutive
// pairs plus the edge from the last element back to the first.
//
// Contract:
//   - len(perm) ≥ 1, otherwise ErrDimensionMismatch.
//   - every index within [0, n), otherwise ErrInvalidIndex.
//   - perm is not required to be a full permutation; TourCost is the pure
//     edge-sum. Use ValidatePermutation for the bijection check.
//
// Complexity: O(len(perm)).
func (d *Distances) TourCost(perm []int) (float64, error) {
	if len(perm) == 0 {
		return 0, ErrDimensionMismatch
	}
	var (
		i int
		v int
	)
	for i = 0; i < len(perm); i++ {
		v = perm[i]
		if v < 0 || v >= d.n {
			return 0, fmt.Errorf("tsp: TourCost position %d holds %d with n=%d: %w", i, v, d.n, ErrInvalidIndex)
		}
	}

	return d.tourCost(perm), nil
}

// tourCost is TourCost without index checks. Callers guarantee perm is in range.
func (d *Distances) tourCost(perm []int) float64 {
	var (
		sum  float64
		prev = perm[len(perm)-1]
		i    int
	)
	for i = 0; i < len(perm); i++ {
		sum += d.at(prev, perm[i])
		prev = perm[i]
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
