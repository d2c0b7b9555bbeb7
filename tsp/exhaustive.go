// Package tsp - exhaustive enumeration of closed tours.
//
// A closed tour has n equivalent rotations, so city 0 is pinned to position 0
// and only the (n−1)! orderings of the remaining cities are enumerated, with
// Heap's algorithm (one swap per successive permutation).
//
// Complexity: O(n·(n−1)!) time, O(n) space. Guarded by MaxExhaustiveCities.
package tsp

import "fmt"

// MaxExhaustiveCities bounds Exhaustive: 11! ≈ 4·10⁷ orderings.
const MaxExhaustiveCities = 12

// Exhaustive returns a minimum-cost tour starting at city 0. Among equal-cost
// tours the first one enumerated wins, so the result is deterministic.
//
// Errors: ErrNilDistances, ErrEmptyInstance, ErrTooLarge.
func Exhaustive(d *Distances) (Tour, error) {
	if d == nil {
		return Tour{}, ErrNilDistances
	}
	n := d.n
	if n == 0 {
		return Tour{}, ErrEmptyInstance
	}
	if n > MaxExhaustiveCities {
		return Tour{}, fmt.Errorf("tsp: exhaustive search over %d cities (max %d): %w", n, MaxExhaustiveCities, ErrTooLarge)
	}

	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	var (
		best     = CopyPerm(cur)
		bestCost = d.tourCost(cur)
		rest     = cur[1:]
		m        = len(rest)
		c        = make([]int, m) // Heap's algorithm control stack
		i        int
		cost     float64
	)
	for i < m {
		if c[i] < i {
			if i%2 == 0 {
				rest[0], rest[i] = rest[i], rest[0]
			} else {
				rest[c[i]], rest[i] = rest[i], rest[c[i]]
			}
			cost = d.tourCost(cur)
			if cost < bestCost {
				bestCost = cost
				copy(best, cur)
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return Tour{perm: best, cost: bestCost}, nil
}
