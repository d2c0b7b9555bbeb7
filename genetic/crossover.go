package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/memetic/tsp"
)

// PMX performs partially-mapped crossover of parents a and b over the window
// [start, stop) and returns one child.
//
// The child takes a[start:stop] verbatim. Each value of b[start:stop] not yet
// placed follows the mapping chain j ← pos_b(a[j]) from its own position
// until it reaches a free slot. Remaining slots are filled from b at the same
// index. The result is always a permutation.
//
// Errors: tsp.ErrDimensionMismatch for parents of different length,
// ErrInvalidWindow, and the errors of tsp.ValidatePermutation for a parent
// that is not a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func PMX(a, b []int, start, stop int) ([]int, error) {
	n := len(a)
	if len(b) != n {
		return nil, fmt.Errorf("genetic: PMX parents of length %d and %d: %w", n, len(b), tsp.ErrDimensionMismatch)
	}
	if start < 0 || stop > n || start > stop {
		return nil, fmt.Errorf("genetic: PMX window [%d,%d) for n=%d: %w", start, stop, n, ErrInvalidWindow)
	}
	if n == 0 {
		return []int{}, nil
	}
	if err := tsp.ValidatePermutation(a, n); err != nil {
		return nil, fmt.Errorf("genetic: PMX first parent: %w", err)
	}
	if err := tsp.ValidatePermutation(b, n); err != nil {
		return nil, fmt.Errorf("genetic: PMX second parent: %w", err)
	}

	var (
		child  = make([]int, n)
		filled = make([]bool, n) // by position
		placed = make([]bool, n) // by value
		posB   = make([]int, n)  // value → index in b
		i, j   int
		x      int
	)
	for i = 0; i < n; i++ {
		posB[b[i]] = i
	}
	for i = start; i < stop; i++ {
		child[i] = a[i]
		filled[i] = true
		placed[a[i]] = true
	}
	for i = start; i < stop; i++ {
		x = b[i]
		if placed[x] {
			continue
		}
		j = i
		for filled[j] {
			j = posB[a[j]]
		}
		child[j] = x
		filled[j] = true
		placed[x] = true
	}
	for i = 0; i < n; i++ {
		if !filled[i] {
			child[i] = b[i]
		}
	}

	return child, nil
}

// PMXPair draws one half-length window, start uniform in [0, n/2) and
// stop = start + n/2, and returns PMX(a, b) and PMX(b, a) over it.
// For n < 2 the children are copies of the parents and rng is not consulted.
func PMXPair(a, b []int, rng *rand.Rand) ([]int, []int, error) {
	n := len(a)
	if len(b) != n {
		return nil, nil, fmt.Errorf("genetic: PMX parents of length %d and %d: %w", n, len(b), tsp.ErrDimensionMismatch)
	}
	if n < 2 {
		return tsp.CopyPerm(a), tsp.CopyPerm(b), nil
	}

	half := n / 2
	start := rng.Intn(half)
	stop := start + half

	c1, err := PMX(a, b, start, stop)
	if err != nil {
		return nil, nil, err
	}
	c2, err := PMX(b, a, start, stop)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}
