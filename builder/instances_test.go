package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/memetic/builder"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func identity(t *testing.T, inst *tsp.Instance) tsp.Tour {
	t.Helper()
	perm := make([]int, inst.N())
	for i := range perm {
		perm[i] = i
	}
	tour, err := tsp.NewTour(inst.Distances(), perm)
	require.NoError(t, err)

	return tour
}

func TestEuclidean(t *testing.T) {
	inst, err := builder.Euclidean([]builder.Point{{0, 0}, {3, 0}, {3, 4}}, builder.WithExcelColumnIDs())
	require.NoError(t, err)
	require.Equal(t, 3, inst.N())

	d := inst.Distances()
	ab, err := d.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, ab)
	ac, err := d.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, ac)
	require.Equal(t, 12.0, identity(t, inst).Cost())

	route, err := inst.Route(identity(t, inst))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, route)
}

func TestEuclidean_Errors(t *testing.T) {
	_, err := builder.Euclidean(nil)
	require.ErrorIs(t, err, tsp.ErrEmptyInstance)

	_, err = builder.Euclidean([]builder.Point{{0, 0}, {math.NaN(), 1}})
	require.ErrorIs(t, err, builder.ErrInvalidPoint)

	_, err = builder.Euclidean([]builder.Point{{math.Inf(1), 0}})
	require.ErrorIs(t, err, builder.ErrInvalidPoint)
}

func TestCircle_IdentityIsOptimal(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		inst, err := builder.Circle(n, builder.WithRadius(10))
		require.NoError(t, err)

		best, err := tsp.HeldKarp(inst.Distances())
		require.NoError(t, err)
		require.InDelta(t, builder.CircleOptimum(n, 10), best.Cost(), eps, "n=%d", n)
		require.InDelta(t, best.Cost(), identity(t, inst).Cost(), eps, "n=%d", n)
	}

	_, err := builder.Circle(2)
	require.ErrorIs(t, err, builder.ErrTooFewCities)
}

func TestRing(t *testing.T) {
	inst, err := builder.Ring(6, 1, 10, builder.WithPrefixIDs("c"))
	require.NoError(t, err)
	require.Equal(t, "c5", inst.Cities()[5].Name)

	best, err := tsp.Exhaustive(inst.Distances())
	require.NoError(t, err)
	require.Equal(t, 6.0, best.Cost())
	require.Equal(t, 6.0, identity(t, inst).Cost())

	_, err = builder.Ring(0, 1, 10)
	require.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.Ring(4, 5, 1)
	require.ErrorIs(t, err, builder.ErrInvalidRange)
	_, err = builder.Ring(4, -1, 1)
	require.ErrorIs(t, err, builder.ErrInvalidRange)
}

func TestRandomTable_Seeded(t *testing.T) {
	a, err := builder.RandomTable(7, 1, 20, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.RandomTable(7, 1, 20, builder.WithRand(tsp.NewRand(11)))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			x, err := a.Distances().At(i, j)
			require.NoError(t, err)
			y, err := b.Distances().At(i, j)
			require.NoError(t, err)
			require.Equal(t, x, y)
			if i == j {
				require.Zero(t, x)
				continue
			}
			require.GreaterOrEqual(t, x, 1.0)
			require.LessOrEqual(t, x, 20.0)
			require.Equal(t, math.Trunc(x), x)
		}
	}

	_, err = builder.RandomTable(5, 1, 20)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomTable(5, 9, 2, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidRange)
}

func TestRandomEuclidean(t *testing.T) {
	inst, err := builder.RandomEuclidean(12, builder.WithRand(rand.New(rand.NewSource(5))), builder.WithRadius(1))
	require.NoError(t, err)
	require.Equal(t, 12, inst.N())

	d := inst.Distances()
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			x, err := d.At(i, j)
			require.NoError(t, err)
			y, err := d.At(j, i)
			require.NoError(t, err)
			require.Equal(t, x, y)
			require.LessOrEqual(t, x, 2*math.Sqrt2+eps)
		}
	}

	_, err = builder.RandomEuclidean(4)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomEuclidean(0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewCities)
}

func TestIDFns(t *testing.T) {
	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "A", builder.ExcelColumnIDFn(0))
	require.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	require.Equal(t, "v3", builder.PrefixIDFn("v")(3))
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithRadius(0) })
	require.Panics(t, func() { builder.WithRadius(math.NaN()) })
}
