package genetic_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/memetic/genetic"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/stretchr/testify/require"
)

const seedDet = int64(7)

// lineDistances places n cities on a line: w(i,j) = |i−j|.
func lineDistances(t testing.TB, n int) *tsp.Distances {
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

// ringDistances makes the cycle 0→1→…→n-1→0 cost 1 per edge and every other
// edge cost 10, so the ring (either direction) is a single dominant optimum.
func ringDistances(t testing.TB, n int) *tsp.Distances {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			switch {
			case i == j:
			case (i+1)%n == j || (j+1)%n == i:
				rows[i][j] = 1
			default:
				rows[i][j] = 10
			}
		}
	}
	d, err := tsp.NewDistancesFromRows(rows)
	require.NoError(t, err)

	return d
}

// fiveCities is a hand-built asymmetric table used for reproducibility checks.
func fiveCities(t testing.TB) *tsp.Distances {
	t.Helper()
	d, err := tsp.NewDistancesFromRows([][]float64{
		{0, 3, 7, 2, 9},
		{4, 0, 6, 8, 1},
		{7, 5, 0, 3, 6},
		{2, 9, 4, 0, 5},
		{8, 1, 6, 7, 0},
	})
	require.NoError(t, err)

	return d
}

func mustTour(t testing.TB, d *tsp.Distances, perm []int) tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(d, perm)
	require.NoError(t, err)

	return tour
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu      sync.Mutex
	phases  []genetic.Phase
	reports []genetic.GenerationReport
}

func (r *recordingObserver) OnPhase(_ int, p genetic.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, p)
}

func (r *recordingObserver) OnGeneration(rep genetic.GenerationReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}

func (r *recordingObserver) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.phases) + len(r.reports)
}
