package genetic_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/memetic/genetic"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

// insertAfter removes p[j] and reinserts it at index i+1 of the shortened
// slice, appending past the end.
func insertAfter(p []int, i, j int) []int {
	q := slices.Clone(p)
	v := q[j]
	q = slices.Delete(q, j, j+1)

	return slices.Insert(q, min(i+1, len(q)), v)
}

func TestInsertAfter_Reference(t *testing.T) {
	p := []int{0, 1, 2, 3, 4}
	require.Equal(t, []int{0, 4, 1, 2, 3}, insertAfter(p, 0, 4))
	require.Equal(t, []int{1, 2, 3, 0, 4}, insertAfter(p, 2, 0))
	require.Equal(t, []int{0, 2, 3, 4, 1}, insertAfter(p, 4, 1))
}

func TestInsertionMutation_MatchesSomeMove(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	for _, n := range []int{2, 3, 6, 11} {
		for trial := 0; trial < 100; trial++ {
			orig, err := tsp.RandomPermutation(n, rng)
			require.NoError(t, err)
			got := slices.Clone(orig)
			genetic.InsertionMutation(got, rng)
			require.NoError(t, tsp.ValidatePermutation(got, n))

			found := false
			for i := 0; i < n && !found; i++ {
				for j := 0; j < n && !found; j++ {
					if i != j && slices.Equal(insertAfter(orig, i, j), got) {
						found = true
					}
				}
			}
			require.Truef(t, found, "%v → %v is not an insertion move", orig, got)
		}
	}
}

func TestInsertionMutation_ShortSlices(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	genetic.InsertionMutation(nil, rng)
	one := []int{0}
	genetic.InsertionMutation(one, rng)
	require.Equal(t, []int{0}, one)
}

func TestInsertionMutation_CostRecomputed(t *testing.T) {
	d := lineDistances(t, 9)
	rng := tsp.NewRand(seedDet)
	tour := mustTour(t, d, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})

	for trial := 0; trial < 50; trial++ {
		next, err := tour.Mutate(d, func(p []int) { genetic.InsertionMutation(p, rng) })
		require.NoError(t, err)
		want, err := d.TourCost(next.Perm())
		require.NoError(t, err)
		require.Equal(t, want, next.Cost())
		tour = next
	}
}
