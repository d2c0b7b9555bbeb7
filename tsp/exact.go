package tsp

import (
	"fmt"
	"math"
)

// MaxHeldKarpCities bounds HeldKarp: the DP table holds n·2ⁿ entries.
const MaxHeldKarpCities = 16

// HeldKarp solves the instance exactly with the Held–Karp dynamic program and
// returns an optimal tour starting at city 0. A +Inf entry means "no edge".
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the cities in mask
// (which always contains 0), and end at j. The tour is closed by adding j→0.
//
// Errors: ErrNilDistances, ErrEmptyInstance, ErrTooLarge, ErrIncompleteGraph.
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func HeldKarp(d *Distances) (Tour, error) {
	if d == nil {
		return Tour{}, ErrNilDistances
	}
	n := d.n
	if n == 0 {
		return Tour{}, ErrEmptyInstance
	}
	if n > MaxHeldKarpCities {
		return Tour{}, fmt.Errorf("tsp: Held-Karp over %d cities (max %d): %w", n, MaxHeldKarpCities, ErrTooLarge)
	}
	if n == 1 {
		return newTourOwned(d, []int{0}), nil
	}

	var (
		full   = 1 << n
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
		mask   int
		j, k   int
	)
	for mask = 0; mask < full; mask++ {
		for j = 0; j < n; j++ {
			dp[mask*n+j] = math.Inf(1)
			parent[mask*n+j] = -1
		}
	}
	dp[1*n+0] = 0

	var (
		prev int
		w    float64
		cand float64
	)
	for mask = 1; mask < full; mask += 2 { // odd masks contain city 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				w = d.at(k, j)
				if math.IsInf(w, 1) {
					continue
				}
				cand = dp[prev*n+k] + w
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	var (
		all      = full - 1
		bestCost = math.Inf(1)
		last     = -1
	)
	for j = 1; j < n; j++ {
		w = d.at(j, 0)
		if math.IsInf(w, 1) {
			continue
		}
		if cand = dp[all*n+j] + w; cand < bestCost {
			bestCost = cand
			last = j
		}
	}
	if last < 0 {
		return Tour{}, ErrIncompleteGraph
	}

	perm := make([]int, n)
	mask = all
	j = last
	for pos := n - 1; pos >= 1; pos-- {
		perm[pos] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}
	perm[0] = 0

	return newTourOwned(d, perm), nil
}
