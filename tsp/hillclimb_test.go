package tsp_test

import (
	"testing"

	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

// requireSwapOptimal asserts that no single swap of got lowers its cost.
func requireSwapOptimal(t *testing.T, d *tsp.Distances, got tsp.Tour) {
	t.Helper()
	n := got.Len()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			nb, err := got.Swap(d, i, j)
			require.NoError(t, err)
			require.GreaterOrEqualf(t, nb.Cost(), got.Cost(),
				"swap(%d,%d) improves %v to %v", i, j, got, nb)
		}
	}
}

func TestHillClimb_LineInstance(t *testing.T) {
	d := lineTable(t, 4)
	start := mustTour(t, d, []int{0, 2, 1, 3})
	require.Equal(t, 8.0, start.Cost())

	got, steps, err := tsp.HillClimb(d, start)
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	require.Equal(t, 6.0, got.Cost())
	// (0,1) and (1,2) tie; the lexicographically first swap wins.
	require.Equal(t, []int{2, 0, 1, 3}, got.Perm())
	require.Equal(t, []int{0, 2, 1, 3}, start.Perm(), "start must be untouched")
}

func TestHillClimb_LocalOptimumAndMonotone(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 12} {
		d := randomTable(t, n, int64(100+n))
		rng := tsp.NewRand(seedDet)
		for trial := 0; trial < 10; trial++ {
			start, err := tsp.RandomTour(d, rng)
			require.NoError(t, err)

			got, steps, err := tsp.HillClimb(d, start)
			require.NoError(t, err)
			require.True(t, isPermutation(got.Perm(), n))
			require.LessOrEqual(t, got.Cost(), start.Cost())
			require.GreaterOrEqual(t, steps, 0)
			require.LessOrEqual(t, steps, n*(n-1)/2)
			if steps == 0 {
				require.Equal(t, start.Perm(), got.Perm())
			}
			require.InDelta(t, manualCost(t, d, got.Perm()), got.Cost(), epsCost)
			requireSwapOptimal(t, d, got)
		}
	}
}

func TestHillClimb_Idempotent(t *testing.T) {
	d := randomTable(t, 9, 5)
	start, err := tsp.RandomTour(d, tsp.NewRand(seedDet))
	require.NoError(t, err)

	once, _, err := tsp.HillClimb(d, start)
	require.NoError(t, err)
	twice, steps, err := tsp.HillClimb(d, once)
	require.NoError(t, err)
	require.Zero(t, steps)
	require.Equal(t, once.Perm(), twice.Perm())
}

func TestHillClimb_Errors(t *testing.T) {
	d := lineTable(t, 4)
	_, _, err := tsp.HillClimb(nil, mustTour(t, d, []int{0, 1, 2, 3}))
	require.ErrorIs(t, err, tsp.ErrNilDistances)

	_, _, err = tsp.HillClimb(d, mustTour(t, lineTable(t, 3), []int{0, 1, 2}))
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestHillClimbFromRandom_Deterministic(t *testing.T) {
	d := randomTable(t, 10, 11)
	a, sa, err := tsp.HillClimbFromRandom(d, tsp.NewRand(seedDet))
	require.NoError(t, err)
	b, sb, err := tsp.HillClimbFromRandom(d, tsp.NewRand(seedDet))
	require.NoError(t, err)
	require.Equal(t, a.Perm(), b.Perm())
	require.Equal(t, sa, sb)
}
