// Package tsp - the Tour value type and permutation helpers.
//
// A Tour is an immutable permutation of 0..n-1 paired with its closed-tour
// cost. Values may be copied freely: no exported method mutates the backing
// slice, and every edit (Mutate, Swap) builds a new Tour whose cost is
// recomputed before it is returned. Cost therefore never goes stale.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyPerm: independent copy of an index slice.
//   - EqualModuloRotation: equality of two cyclic orders under rotation.
package tsp

import (
	"fmt"
	"strings"
)

// Tour is a closed tour: a permutation of city indices plus its cached cost.
// The zero value is an empty tour with cost 0 and is only useful as "no tour".
type Tour struct {
	perm []int
	cost float64
}

// NewTour validates perm as a permutation of 0..d.N()-1 and computes its cost.
// perm is copied; the caller keeps ownership of its slice.
//
// Errors: ErrNilDistances, ErrInvalidIndex, ErrNotPermutation.
//
// Complexity: O(n) time, O(n) space.
func NewTour(d *Distances, perm []int) (Tour, error) {
	if d == nil {
		return Tour{}, ErrNilDistances
	}
	if err := ValidatePermutation(perm, d.n); err != nil {
		return Tour{}, err
	}
	own := CopyPerm(perm)

	return Tour{perm: own, cost: d.tourCost(own)}, nil
}

// newTourOwned wraps a slice already known to be a valid permutation for d.
// Ownership of perm moves into the Tour.
func newTourOwned(d *Distances, perm []int) Tour {
	return Tour{perm: perm, cost: d.tourCost(perm)}
}

// Len returns the number of cities in the tour.
func (t Tour) Len() int { return len(t.perm) }

// Cost returns the cached closed-tour cost.
func (t Tour) Cost() float64 { return t.cost }

// At returns the city at position i. It panics on an out-of-range position,
// like slice indexing.
func (t Tour) At(i int) int { return t.perm[i] }

// Perm returns a copy of the permutation.
func (t Tour) Perm() []int { return CopyPerm(t.perm) }

// IsZero reports whether t is the zero Tour.
func (t Tour) IsZero() bool { return t.perm == nil }

// Clone returns a Tour backed by its own slice.
func (t Tour) Clone() Tour {
	return Tour{perm: CopyPerm(t.perm), cost: t.cost}
}

// Mutate applies edit to a private copy of the permutation, then revalidates
// it and recomputes the cost against d. The receiver is left untouched.
//
// Errors: ErrNilDistances, ErrInvalidIndex or ErrNotPermutation if edit broke
// the bijection.
func (t Tour) Mutate(d *Distances, edit func(perm []int)) (Tour, error) {
	if d == nil {
		return Tour{}, ErrNilDistances
	}
	if len(t.perm) != d.n {
		return Tour{}, ErrDimensionMismatch
	}
	cp := CopyPerm(t.perm)
	edit(cp)
	if err := ValidatePermutation(cp, d.n); err != nil {
		return Tour{}, err
	}

	return newTourOwned(d, cp), nil
}

// Swap returns the tour with positions i and j exchanged.
func (t Tour) Swap(d *Distances, i, j int) (Tour, error) {
	if i < 0 || i >= len(t.perm) || j < 0 || j >= len(t.perm) {
		return Tour{}, fmt.Errorf("tsp: Swap(%d,%d) on %d positions: %w", i, j, len(t.perm), ErrInvalidIndex)
	}

	return t.Mutate(d, func(p []int) { p[i], p[j] = p[j], p[i] })
}

// String renders the tour as "[0 3 1 2 | 0] cost=12.5", the bar marking closure.
func (t Tour) String() string {
	if len(t.perm) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range t.perm {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	fmt.Fprintf(&sb, " | %d] cost=%g", t.perm[0], t.cost)

	return sb.String()
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Errors:
//   - ErrEmptyInstance when n <= 0,
//   - ErrInvalidIndex when an element lies outside [0, n),
//   - ErrNotPermutation on a length mismatch or a repeated element.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 {
		return ErrEmptyInstance
	}
	if len(perm) != n {
		return fmt.Errorf("tsp: permutation of length %d, want %d: %w", len(perm), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: position %d holds %d with n=%d: %w", i, v, n, ErrInvalidIndex)
		}
		if seen[v] {
			return fmt.Errorf("tsp: city %d repeated at position %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// CopyPerm returns an independent copy of perm (nil stays nil).
func CopyPerm(perm []int) []int {
	if perm == nil {
		return nil
	}
	out := make([]int, len(perm))
	copy(out, perm)

	return out
}

// EqualModuloRotation reports whether a and b describe the same cyclic order
// in the same direction, regardless of which city is listed first.
//
// Complexity: O(n).
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	var (
		n = len(a)
		p = -1
		i int
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
