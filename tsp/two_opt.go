// Package tsp - steepest-descent 2-opt local search.
//
// A 2-opt move (i, k), 0 ≤ i < k ≤ n−1, reverses the segment p[i..k] of the
// cyclic permutation p. With a = p[i−1] and d = p[k+1] (indices mod n):
//
//	Δ = w(a,c) + rev(i..k) + w(b,d) − w(a,b) − fwd(i..k) − w(c,d),  b=p[i], c=p[k]
//
// fwd/rev are the forward and reversed inner path costs. They are read from
// prefix sums rebuilt once per sweep, so each candidate is O(1) and the
// asymmetric case is scored exactly (no symmetry assumption).
//
// The move (0, n−1) only flips orientation and is skipped. Like HillClimb the
// search is steepest-descent: the best candidate of a full sweep is applied
// iff its recomputed full cost is strictly lower.
//
// Complexity: O(n²) per sweep, O(n) extra space. No randomness.
package tsp

import "math"

// TwoOpt runs steepest-descent 2-opt from start and returns the local optimum
// and the number of accepted moves.
//
// Errors: ErrNilDistances, ErrDimensionMismatch, ErrInvalidIndex.
func TwoOpt(d *Distances, start Tour) (Tour, int, error) {
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
	if n < 4 {
		// Every reversal of a triangle or a pair is a rotation or a reflection.
		return Tour{perm: cur, cost: curCost}, 0, nil
	}

	var (
		fwd       = make([]float64, n) // fwd[t] = Σ_{s<t} w(p[s], p[s+1])
		rev       = make([]float64, n) // rev[t] = Σ_{s<t} w(p[s+1], p[s])
		steps     int
		i, k, t   int
		a, b      int
		c, e      int
		bi, bk    int
		delta     float64
		bestDelta float64
		cand      float64
	)
	for {
		for t = 1; t < n; t++ {
			fwd[t] = fwd[t-1] + d.at(cur[t-1], cur[t])
			rev[t] = rev[t-1] + d.at(cur[t], cur[t-1])
		}

		bi, bk = -1, -1
		bestDelta = math.Inf(1)
		for i = 0; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				if i == 0 && k == n-1 {
					continue
				}
				a = cur[(i-1+n)%n]
				b = cur[i]
				c = cur[k]
				e = cur[(k+1)%n]
				delta = d.at(a, c) + (rev[k] - rev[i]) + d.at(b, e) -
					d.at(a, b) - (fwd[k] - fwd[i]) - d.at(c, e)
				if delta < bestDelta {
					bestDelta = delta
					bi, bk = i, k
				}
			}
		}
		if bi < 0 {
			break
		}

		reverseInPlace(cur, bi, bk)
		cand = d.tourCost(cur)
		if !(cand < curCost) {
			reverseInPlace(cur, bi, bk)
			break
		}
		curCost = cand
		steps++
	}

	return Tour{perm: cur, cost: curCost}, steps, nil
}

// reverseInPlace reverses p[i..k] inclusive.
func reverseInPlace(p []int, i, k int) {
	for i < k {
		p[i], p[k] = p[k], p[i]
		i++
		k--
	}
}
