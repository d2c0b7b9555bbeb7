package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/memetic/tsp"
)

// SelectionStrategy picks the mating-pool selector.
type SelectionStrategy int

const (
	// SelectionRanked draws parents with probability proportional to rank,
	// the worst individual having rank 0.
	SelectionRanked SelectionStrategy = iota

	// SelectionTournament keeps the cheapest of TournamentSize uniform draws.
	SelectionTournament
)

// String returns the configuration name of s.
func (s SelectionStrategy) String() string {
	switch s {
	case SelectionRanked:
		return "ranked"
	case SelectionTournament:
		return "tournament"
	default:
		return fmt.Sprintf("SelectionStrategy(%d)", int(s))
	}
}

// ParseSelectionStrategy maps "ranked" or "tournament" (case-insensitive) to
// a strategy. An empty string selects SelectionRanked.
func ParseSelectionStrategy(s string) (SelectionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ranked":
		return SelectionRanked, nil
	case "tournament":
		return SelectionTournament, nil
	default:
		return 0, fmt.Errorf("%w: unknown selection strategy %q", ErrInvalidConfiguration, s)
	}
}

// Options configures an Engine.
type Options struct {
	// PopulationSize is μ, and also the number of offspring λ per generation.
	// It must be even and at least 2.
	PopulationSize int

	// MutationProbability is the per-offspring chance of an insertion mutation.
	MutationProbability float64

	// Generations is the fixed generation budget. There is no early stop.
	Generations int

	// Selection chooses the mating-pool selector.
	Selection SelectionStrategy

	// TournamentSize is used by SelectionTournament only. Zero means
	// PopulationSize/5, raised to 1.
	TournamentSize int

	// Seed feeds tsp.NewRand when Rand is nil. Seed 0 maps to a fixed stream.
	Seed int64

	// Rand, when set, is used instead of Seed. The Engine takes exclusive
	// ownership of it for the duration of Run.
	Rand *rand.Rand

	// LocalSearch refines every individual each generation. Nil means
	// tsp.SwapHillClimber; tsp.NoLocalSearch gives a plain genetic algorithm.
	LocalSearch tsp.LocalSearch

	// Workers bounds the goroutines used for local search. Values ≤ 1 run it
	// on the calling goroutine.
	Workers int

	// Observer receives phase and generation events. Nil means no events.
	Observer Observer
}

// DefaultOptions returns the configuration used when nothing is overridden:
// 50 individuals, mutation probability 0.5, 80 generations, ranked selection,
// swap hill climbing, sequential local search.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      50,
		MutationProbability: 0.5,
		Generations:         80,
		Selection:           SelectionRanked,
		LocalSearch:         tsp.SwapHillClimber{},
		Workers:             1,
	}
}

// Validate reports the first problem that prevents a run from starting.
// Every error wraps ErrInvalidConfiguration.
func (o Options) Validate() error {
	switch {
	case o.PopulationSize < 2:
		return fmt.Errorf("%w: population size %d < 2", ErrInvalidConfiguration, o.PopulationSize)
	case o.PopulationSize%2 != 0:
		return fmt.Errorf("%w: population size %d is odd", ErrInvalidConfiguration, o.PopulationSize)
	case math.IsNaN(o.MutationProbability) || o.MutationProbability < 0 || o.MutationProbability > 1:
		return fmt.Errorf("%w: mutation probability %v outside [0,1]", ErrInvalidConfiguration, o.MutationProbability)
	case o.Generations < 1:
		return fmt.Errorf("%w: generations %d < 1", ErrInvalidConfiguration, o.Generations)
	case o.TournamentSize < 0:
		return fmt.Errorf("%w: tournament size %d < 0", ErrInvalidConfiguration, o.TournamentSize)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfiguration, o.Workers)
	}
	if o.Selection != SelectionRanked && o.Selection != SelectionTournament {
		return fmt.Errorf("%w: unknown selection strategy %v", ErrInvalidConfiguration, o.Selection)
	}

	return nil
}

// localSearch resolves the nil default.
func (o Options) localSearch() tsp.LocalSearch {
	if o.LocalSearch == nil {
		return tsp.SwapHillClimber{}
	}

	return o.LocalSearch
}

// newRand resolves the RNG: the injected one, or a fresh stream from Seed.
func (o Options) newRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return tsp.NewRand(o.Seed)
}
