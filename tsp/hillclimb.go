// Package tsp - steepest-ascent hill climbing over the swap neighbourhood.
//
// The neighbourhood of a tour is every tour obtained by exchanging the cities
// at one unordered pair of positions {i, j}: n(n-1)/2 neighbours.
//
// One sweep scores every neighbour with an O(1) delta (only the ≤4 edges
// touching positions i and j change), picks the single best one (first in
// (i, j) lexicographic order on ties), recomputes its full cost, and moves
// there only if that cost is strictly lower. Otherwise the current tour is a
// swap-local optimum and the climb stops.
//
// Termination: every accepted move strictly lowers the recomputed cost, so no
// tour is visited twice and the finite permutation space bounds the climb.
//
// Complexity: O(n²) per sweep, O(n) extra space. No randomness.
package tsp

import (
	"math"
	"math/rand"
)

// HillClimb runs steepest-ascent hill climbing from start and returns the
// local optimum together with the number of accepted moves.
// start's cached cost is ignored and recomputed, so any Tour over d is accepted.
//
// Errors: ErrNilDistances, ErrDimensionMismatch, ErrInvalidIndex.
func HillClimb(d *Distances, start Tour) (Tour, int, error) {
	if err := validateStart(d, start); err != nil {
		return Tour{}, 0, err
	}
	var (
		n   = d.n
		cur = CopyPerm(start.perm)
	)
	curCost, err := d.TourCost(cur)
	if err != nil {
		return Tour{}, 0, err
	}

	var (
		steps     int
		i, j      int
		bi, bj    int
		delta     float64
		bestDelta float64
		cand      float64
	)
	for {
		bi, bj = -1, -1
		bestDelta = math.Inf(1)
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				delta = swapDelta(d, cur, i, j)
				if delta < bestDelta {
					bestDelta = delta
					bi, bj = i, j
				}
			}
		}
		if bi < 0 {
			break
		}

		cur[bi], cur[bj] = cur[bj], cur[bi]
		cand = d.tourCost(cur)
		if !(cand < curCost) {
			cur[bi], cur[bj] = cur[bj], cur[bi]
			break
		}
		curCost = cand
		steps++
	}

	return Tour{perm: cur, cost: curCost}, steps, nil
}

// HillClimbFromRandom draws a uniformly random starting tour from rng and
// climbs from it.
func HillClimbFromRandom(d *Distances, rng *rand.Rand) (Tour, int, error) {
	start, err := RandomTour(d, rng)
	if err != nil {
		return Tour{}, 0, err
	}

	return HillClimb(d, start)
}

// swapDelta returns cost(after swapping p[i], p[j]) − cost(p) by re-summing
// only the edges incident to positions i and j. Edge k joins p[k] and
// p[(k+1)%n]; the affected edges are k ∈ {i-1, i, j-1, j} (mod n), deduplicated
// so adjacent positions are not counted twice. p is restored before returning.
//
// Complexity: O(1).
func swapDelta(d *Distances, p []int, i, j int) float64 {
	var (
		n     = len(p)
		edges [4]int
		cnt   int
		k, e  int
		dup   bool
	)
	for _, e = range [4]int{i - 1, i, j - 1, j} {
		e = (e + n) % n
		dup = false
		for k = 0; k < cnt; k++ {
			if edges[k] == e {
				dup = true
				break
			}
		}
		if !dup {
			edges[cnt] = e
			cnt++
		}
	}

	var before, after float64
	for k = 0; k < cnt; k++ {
		e = edges[k]
		before += d.at(p[e], p[(e+1)%n])
	}
	p[i], p[j] = p[j], p[i]
	for k = 0; k < cnt; k++ {
		e = edges[k]
		after += d.at(p[e], p[(e+1)%n])
	}
	p[i], p[j] = p[j], p[i]

	return after - before
}
