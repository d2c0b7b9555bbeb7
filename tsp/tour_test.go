package tsp_test

import (
	"testing"

	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

func TestNewTour_Validation(t *testing.T) {
	d := lineTable(t, 4)

	cases := []struct {
		name string
		perm []int
		want error
	}{
		{"short", []int{0, 1, 2}, tsp.ErrNotPermutation},
		{"duplicate", []int{0, 1, 1, 3}, tsp.ErrNotPermutation},
		{"out of range", []int{0, 1, 2, 9}, tsp.ErrInvalidIndex},
		{"negative", []int{0, -1, 2, 3}, tsp.ErrInvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewTour(d, tc.perm)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := tsp.NewTour(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrNilDistances)
}

func TestNewTour_CopiesAndCachesCost(t *testing.T) {
	d := lineTable(t, 4)
	perm := []int{0, 2, 1, 3}
	tour := mustTour(t, d, perm)

	perm[0] = 3
	require.Equal(t, []int{0, 2, 1, 3}, tour.Perm())
	require.Equal(t, 8.0, tour.Cost())
	require.Equal(t, 4, tour.Len())
	require.Equal(t, 2, tour.At(1))

	out := tour.Perm()
	out[0] = 99
	require.Equal(t, 0, tour.At(0), "Perm must return a copy")
}

func TestTour_MutateRecomputesCost(t *testing.T) {
	d := lineTable(t, 5)
	tour := mustTour(t, d, []int{0, 1, 2, 3, 4})

	moved, err := tour.Mutate(d, func(p []int) { p[1], p[3] = p[3], p[1] })
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2, 1, 4}, moved.Perm())
	require.InDelta(t, manualCost(t, d, moved.Perm()), moved.Cost(), epsCost)
	require.Equal(t, []int{0, 1, 2, 3, 4}, tour.Perm(), "receiver must be untouched")

	_, err = tour.Mutate(d, func(p []int) { p[0] = p[1] })
	require.ErrorIs(t, err, tsp.ErrNotPermutation)
}

func TestTour_Swap(t *testing.T) {
	d := lineTable(t, 4)
	tour := mustTour(t, d, []int{0, 2, 1, 3})

	swapped, err := tour.Swap(d, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, swapped.Perm())
	require.Equal(t, 6.0, swapped.Cost())

	_, err = tour.Swap(d, 0, 4)
	require.ErrorIs(t, err, tsp.ErrInvalidIndex)
}

func TestTour_CloneAndString(t *testing.T) {
	d := lineTable(t, 3)
	tour := mustTour(t, d, []int{2, 0, 1})
	cp := tour.Clone()
	require.Equal(t, tour.Perm(), cp.Perm())
	require.Equal(t, tour.Cost(), cp.Cost())
	require.Equal(t, "[2 0 1 | 2] cost=4", tour.String())

	var zero tsp.Tour
	require.True(t, zero.IsZero())
	require.Equal(t, "[]", zero.String())
}

func TestEqualModuloRotation(t *testing.T) {
	require.True(t, tsp.EqualModuloRotation([]int{0, 1, 2, 3}, []int{2, 3, 0, 1}))
	require.False(t, tsp.EqualModuloRotation([]int{0, 1, 2, 3}, []int{0, 3, 2, 1}))
	require.False(t, tsp.EqualModuloRotation([]int{0, 1}, []int{0, 1, 2}))
	require.True(t, tsp.EqualModuloRotation(nil, nil))
}
