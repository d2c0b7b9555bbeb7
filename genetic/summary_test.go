package genetic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/memetic/genetic"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

func TestRunMany(t *testing.T) {
	d := randomTable(t, 9, 21)
	o := smallOptions(99)
	o.Generations = 4

	sum, err := genetic.RunMany(testContext(t), d, o, 4)
	require.NoError(t, err)
	require.Equal(t, 4, sum.Runs)
	require.Len(t, sum.Seeds, 4)
	require.Len(t, sum.MeanHistory, 4)

	seen := map[int64]bool{}
	for r, s := range sum.Seeds {
		require.Equal(t, tsp.DeriveSeed(99, uint64(r)), s)
		require.False(t, seen[s])
		seen[s] = true
	}

	require.LessOrEqual(t, sum.Best.Cost(), sum.Mean)
	require.LessOrEqual(t, sum.Mean, sum.Worst.Cost())
	require.GreaterOrEqual(t, sum.StdDev, 0.0)
	require.LessOrEqual(t, sum.MeanHistory[3], sum.MeanHistory[0])

	// Each run is reproducible on its own from the recorded seed.
	single := o
	single.Seed = sum.Seeds[0]
	eng, err := genetic.New(d, single)
	require.NoError(t, err)
	res, err := eng.Run(testContext(t))
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Best.Cost(), sum.Best.Cost())
	require.LessOrEqual(t, res.Best.Cost(), sum.Worst.Cost())
}

func TestRunMany_Errors(t *testing.T) {
	d := fiveCities(t)

	_, err := genetic.RunMany(context.Background(), d, smallOptions(1), 0)
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)

	bad := smallOptions(1)
	bad.PopulationSize = 7
	_, err = genetic.RunMany(context.Background(), d, bad, 2)
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = genetic.RunMany(ctx, d, smallOptions(1), 2)
	require.ErrorIs(t, err, context.Canceled)
}
