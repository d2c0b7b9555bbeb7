// Package genetic implements a memetic optimizer for closed tours: a genetic
// algorithm over permutations whose individuals are refined by a local search
// every generation, with the refined genome written back into the population.
//
// Building blocks (usable on their own):
//   - Population: a fixed-size collection of tsp.Tour with cost statistics.
//   - Selector: ranked or tournament mating-pool selection.
//   - PMX / PMXPair: partially-mapped crossover.
//   - InsertionMutation: move one city to just after another position.
//   - Truncate: (μ+λ) survivor selection.
//
// Engine wires them together:
//
//	INITIALIZED → (LOCAL_SEARCH → SELECT → CROSSOVER → MUTATE → SURVIVE)* → TERMINATED
//
// Determinism: every random draw comes from a single *rand.Rand owned by the
// Engine and used only on the goroutine that calls Run. Local search is
// deterministic and may fan out over Options.Workers goroutines without
// changing the result, so a fixed seed reproduces a run exactly.
//
// Typical use:
//
//	opts := genetic.DefaultOptions()
//	opts.Seed = 42
//	eng, err := genetic.New(dist, opts)
//	if err != nil { ... }
//	res, err := eng.Run(ctx)
//	route, _ := instance.Route(res.Best)
package genetic
