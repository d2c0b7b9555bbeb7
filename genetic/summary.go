package genetic

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/memetic/tsp"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"
)

// Summary aggregates independent runs of the same configuration.
type Summary struct {
	Runs int

	// Best and Worst are the cheapest and most expensive final tours.
	Best  tsp.Tour
	Worst tsp.Tour

	// Mean and StdDev describe the final costs (population standard deviation).
	Mean   float64
	StdDev float64

	// MeanHistory[g] is the average over runs of History[g].
	MeanHistory []float64

	// Seeds lists the seed used by each run, in run order.
	Seeds []int64

	// Duration is the wall-clock time of all runs together.
	Duration time.Duration
}

// RunMany runs the engine runs times on d. Run r uses the seed
// tsp.DeriveSeed(opts.Seed, r); opts.Rand is ignored so that runs are
// independent and individually reproducible.
//
// Errors: ErrInvalidConfiguration for runs < 1 or invalid opts, and the first
// error returned by a run.
func RunMany(ctx context.Context, d *tsp.Distances, opts Options, runs int) (Summary, error) {
	if runs < 1 {
		return Summary{}, fmt.Errorf("%w: runs %d < 1", ErrInvalidConfiguration, runs)
	}
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	logger := klog.FromContext(ctx).WithValues("component", "genetic", "runs", runs)

	var (
		started = time.Now()
		sum     = Summary{
			Runs:        runs,
			MeanHistory: make([]float64, opts.Generations),
			Seeds:       make([]int64, runs),
		}
		costs = make([]float64, runs)
	)
	for r := 0; r < runs; r++ {
		o := opts
		o.Rand = nil
		o.Seed = tsp.DeriveSeed(opts.Seed, uint64(r))
		sum.Seeds[r] = o.Seed

		eng, err := New(d, o)
		if err != nil {
			return Summary{}, err
		}
		res, err := eng.Run(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("genetic: run %d: %w", r, err)
		}

		costs[r] = res.Best.Cost()
		if r == 0 || res.Best.Cost() < sum.Best.Cost() {
			sum.Best = res.Best
		}
		if r == 0 || res.Best.Cost() > sum.Worst.Cost() {
			sum.Worst = res.Best
		}
		for g, c := range res.History {
			sum.MeanHistory[g] += c / float64(runs)
		}
		logger.V(1).Info("Run complete", "run", r, "seed", o.Seed, "bestCost", res.Best.Cost())
	}

	sum.Mean, sum.StdDev = stat.PopMeanStdDev(costs, nil)
	sum.Duration = time.Since(started)

	return sum, nil
}
