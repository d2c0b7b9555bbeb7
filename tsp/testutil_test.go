// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for RNG-based helpers.
	seedDet = int64(7)

	// epsCost is the tolerance for comparing recomputed sums against cached costs.
	epsCost = 1e-9
)

// euclid builds a symmetric table from 2D points with zero diagonal.
func euclid(t testing.TB, pts [][2]float64) *tsp.Distances {
	t.Helper()
	n := len(pts)
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			}
		}
	}
	d, err := tsp.NewDistancesFromRows(rows)
	require.NoError(t, err)

	return d
}

// randomTable builds an n×n asymmetric table with integer weights in [1, 100].
func randomTable(t testing.TB, n int, seed int64) *tsp.Distances {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(100))
			}
		}
	}
	d, err := tsp.NewDistancesFromRows(rows)
	require.NoError(t, err)

	return d
}

// lineTable places n cities on a line at positions 0..n-1 (w = |i−j|).
func lineTable(t testing.TB, n int) *tsp.Distances {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Abs(float64(i - j))
		}
	}
	d, err := tsp.NewDistancesFromRows(rows)
	require.NoError(t, err)

	return d
}

// manualCost re-derives the closed-tour cost edge by edge through At.
func manualCost(t testing.TB, d *tsp.Distances, perm []int) float64 {
	t.Helper()
	var sum float64
	for i := range perm {
		w, err := d.At(perm[i], perm[(i+1)%len(perm)])
		require.NoError(t, err)
		sum += w
	}

	return sum
}

// mustTour builds a Tour or fails the test.
func mustTour(t testing.TB, d *tsp.Distances, perm []int) tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(d, perm)
	require.NoError(t, err)

	return tour
}

// isPermutation reports whether p is a permutation of 0..n-1.
func isPermutation(p []int, n int) bool {
	return tsp.ValidatePermutation(p, n) == nil
}
