// Package tsp provides the Travelling Salesman building blocks used by the
// memetic optimizer in package genetic.
//
// It includes:
//
//   - Distances - an immutable n×n travel-cost table built from any
//     matrix.Matrix. Symmetry is never assumed; the wrap-around edge
//     last→first is always part of a tour's cost.
//
//   - Tour - a permutation of 0..n-1 with its cached closed-tour cost. Tours
//     are immutable values: every edit goes through a constructor that
//     revalidates the permutation and recomputes the cost.
//
//   - Local search - steepest-ascent hill climbing over the swap
//     neighbourhood (HillClimb) and steepest 2-opt (TwoOpt), both behind the
//     LocalSearch interface.
//
//   - Exact solvers - Exhaustive (city 0 fixed, n ≤ 12) and HeldKarp
//     (O(n²·2ⁿ), n ≤ 16), used as reference optima.
//
// All randomness is injected as *rand.Rand (see NewRand); nothing in this
// package reads a global or time-based source. Functions return the sentinels
// declared in types.go and never log.
package tsp
