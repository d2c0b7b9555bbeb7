// SPDX-License-Identifier: MIT

// Package builder generates TSP instances for examples, benchmarks and
// tests: cities from planar points, cities on a circle, ring tables with a
// known optimum, and seeded random tables.
//
// Every constructor returns a *tsp.Instance whose city names come from the
// configured IDFn (decimal by default). Stochastic constructors require an
// explicit source via WithSeed or WithRand and return ErrNeedRandSource
// otherwise.
//
// Known optima, useful as fixtures:
//
//	Ring(n, near, far)  n·near, the identity tour
//	Circle(n)           2·n·r·sin(π/n), the identity tour
package builder
