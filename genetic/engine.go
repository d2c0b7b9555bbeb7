package genetic

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

const tracerName = "github.com/katalvlaran/memetic/genetic"

// Engine runs the memetic loop over one distance table.
// An Engine is not safe for concurrent use; each Run continues its random stream.
type Engine struct {
	dist     *tsp.Distances
	opts     Options
	rng      *rand.Rand
	selector Selector
	search   tsp.LocalSearch
	observer Observer
}

// Result is the outcome of Run.
type Result struct {
	// Best is the cheapest tour of the final population.
	Best tsp.Tour

	// History holds the best cost of each generation, recorded after local
	// search. len(History) == Generations.
	History []float64

	// Generations is the number of completed generations.
	Generations int

	// LocalSearchSteps totals the accepted local-search moves of the run.
	LocalSearchSteps int
}

// New validates opts against d and prepares an Engine. Nothing random happens
// until Run.
//
// Errors: every error wraps ErrInvalidConfiguration.
func New(d *tsp.Distances, opts Options) (*Engine, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, tsp.ErrNilDistances)
	}
	if d.N() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, tsp.ErrEmptyInstance)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sel, err := NewSelector(opts.Selection, opts.TournamentSize)
	if err != nil {
		return nil, err
	}
	obs := opts.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	return &Engine{
		dist:     d,
		opts:     opts,
		rng:      opts.newRand(),
		selector: sel,
		search:   opts.localSearch(),
		observer: obs,
	}, nil
}

// Run executes the full generation budget and returns the best tour of the
// final population with the per-generation history.
//
// The logger is taken from ctx (klog.FromContext). ctx is checked between
// generations; on cancellation the partial Result is returned together with
// the wrapped ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	logger := klog.FromContext(ctx).WithValues("component", "genetic")
	ctx, span := otel.Tracer(tracerName).Start(ctx, "genetic.Run", trace.WithAttributes(
		attribute.Int("tsp.cities", e.dist.N()),
		attribute.Int("genetic.population_size", e.opts.PopulationSize),
		attribute.Int("genetic.generations", e.opts.Generations),
		attribute.String("genetic.selection", e.opts.Selection.String()),
		attribute.String("genetic.local_search", e.search.Name()),
	))
	defer span.End()

	res, err := e.run(ctx, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.Float64("genetic.best_cost", res.Best.Cost()),
		attribute.Int("genetic.local_search_steps", res.LocalSearchSteps),
	)

	return res, nil
}

func (e *Engine) run(ctx context.Context, logger logr.Logger) (Result, error) {
	var (
		size    = e.opts.PopulationSize
		gens    = e.opts.Generations
		started = time.Now()
		res     = Result{History: make([]float64, 0, gens)}
	)
	logger.Info("Starting memetic search",
		"cities", e.dist.N(),
		"populationSize", size,
		"generations", gens,
		"selection", e.opts.Selection,
		"localSearch", e.search.Name(),
		"workers", e.opts.Workers,
	)

	pop, err := NewRandomPopulation(e.dist, size, e.rng)
	if err != nil {
		return res, fmt.Errorf("genetic: initial population: %w", err)
	}
	e.observer.OnPhase(0, PhaseInitialized)

	for g := 0; g < gens; g++ {
		if err = ctx.Err(); err != nil {
			res.Best = pop.Best()
			return res, fmt.Errorf("genetic: stopped before generation %d: %w", g, err)
		}
		if pop, err = e.generation(ctx, logger, g, pop, &res); err != nil {
			res.Best = pop.Best()
			return res, fmt.Errorf("genetic: generation %d: %w", g, err)
		}
	}
	e.observer.OnPhase(gens, PhaseTerminated)

	res.Best = pop.Best()
	logger.Info("Memetic search finished",
		"bestCost", res.Best.Cost(),
		"generations", res.Generations,
		"localSearchSteps", res.LocalSearchSteps,
		"duration", time.Since(started),
	)

	return res, nil
}

// generation runs one LOCAL_SEARCH → SURVIVE cycle and returns the survivors.
// On error the population passed in is returned unchanged.
func (e *Engine) generation(ctx context.Context, logger logr.Logger, g int, pop *Population, res *Result) (*Population, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "genetic.Generation",
		trace.WithAttributes(attribute.Int("genetic.generation", g)))
	defer span.End()

	var (
		size  = e.opts.PopulationSize
		start = time.Now()
	)

	e.observer.OnPhase(g, PhaseLocalSearch)
	steps, err := e.improve(pop)
	if err != nil {
		return pop, err
	}
	stats := pop.Stats()
	res.History = append(res.History, stats.Best)
	res.LocalSearchSteps += steps

	e.observer.OnPhase(g, PhaseSelect)
	parents := e.selector.Select(pop, size, e.rng)

	e.observer.OnPhase(g, PhaseCrossover)
	children, err := e.crossover(parents)
	if err != nil {
		return pop, err
	}

	e.observer.OnPhase(g, PhaseMutate)
	offspring, err := e.mutate(children)
	if err != nil {
		return pop, err
	}

	e.observer.OnPhase(g, PhaseSurvive)
	next := &Population{tours: Truncate(append(pop.Tours(), offspring...), size)}
	res.Generations = g + 1

	span.SetAttributes(attribute.Float64("genetic.best_cost", stats.Best))
	report := GenerationReport{
		Generation:       g,
		Stats:            stats,
		LocalSearchSteps: steps,
		Duration:         time.Since(start),
	}
	e.observer.OnGeneration(report)
	logger.V(2).Info("Generation complete",
		"generation", g,
		"best", stats.Best,
		"mean", stats.Mean,
		"worst", stats.Worst,
		"localSearchSteps", steps,
		"duration", report.Duration,
	)

	return next, nil
}

// improve replaces every individual by its local-search result and returns
// the total number of accepted moves. With more than one worker the
// individuals are refined on a bounded pool; each goroutine writes only its
// own slot.
func (e *Engine) improve(pop *Population) (int, error) {
	steps := make([]int, pop.Len())

	if e.opts.Workers <= 1 {
		for i := range pop.tours {
			t, s, err := e.search.Improve(e.dist, pop.tours[i])
			if err != nil {
				return 0, fmt.Errorf("%s on individual %d: %w", e.search.Name(), i, err)
			}
			pop.tours[i], steps[i] = t, s
		}
	} else {
		p := pool.New().WithMaxGoroutines(e.opts.Workers).WithErrors()
		for i := range pop.tours {
			i := i // per-iteration copy; module targets go 1.21 loop semantics
			p.Go(func() error {
				t, s, err := e.search.Improve(e.dist, pop.tours[i])
				if err != nil {
					return fmt.Errorf("%s on individual %d: %w", e.search.Name(), i, err)
				}
				pop.tours[i], steps[i] = t, s
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return 0, err
		}
	}

	total := 0
	for _, s := range steps {
		total += s
	}

	return total, nil
}

// crossover pairs consecutive parents and returns two PMX children per pair.
func (e *Engine) crossover(parents []tsp.Tour) ([][]int, error) {
	children := make([][]int, 0, len(parents))
	for i := 0; i+1 < len(parents); i += 2 {
		c1, c2, err := PMXPair(parents[i].Perm(), parents[i+1].Perm(), e.rng)
		if err != nil {
			return nil, err
		}
		children = append(children, c1, c2)
	}

	return children, nil
}

// mutate turns children into tours, applying InsertionMutation to each with
// probability MutationProbability. Every child is revalidated here.
func (e *Engine) mutate(children [][]int) ([]tsp.Tour, error) {
	out := make([]tsp.Tour, len(children))
	for i, child := range children {
		t, err := tsp.NewTour(e.dist, child)
		if err != nil {
			return nil, fmt.Errorf("offspring %d: %w", i, err)
		}
		if e.rng.Float64() < e.opts.MutationProbability {
			if t, err = t.Mutate(e.dist, func(p []int) { InsertionMutation(p, e.rng) }); err != nil {
				return nil, fmt.Errorf("offspring %d mutation: %w", i, err)
			}
		}
		out[i] = t
	}

	return out, nil
}
