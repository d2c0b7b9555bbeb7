package genetic

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/memetic/tsp"
)

// Selector builds a mating pool of exactly size individuals drawn from pop.
// Returned tours are clones; nothing aliases the population.
type Selector interface {
	Select(pop *Population, size int, rng *rand.Rand) []tsp.Tour
}

// NewSelector returns the Selector for strategy. tournamentSize is ignored by
// ranked selection.
func NewSelector(strategy SelectionStrategy, tournamentSize int) (Selector, error) {
	switch strategy {
	case SelectionRanked:
		return RankedSelector{}, nil
	case SelectionTournament:
		return TournamentSelector{Size: tournamentSize}, nil
	default:
		return nil, fmt.Errorf("%w: unknown selection strategy %v", ErrInvalidConfiguration, strategy)
	}
}

// TournamentSelector repeats size times: draw Size members uniformly with
// replacement and keep the cheapest. The first drawn wins a tie.
type TournamentSelector struct {
	// Size is the tournament size. Zero means size/5, raised to 1.
	Size int
}

// Select implements Selector.
func (s TournamentSelector) Select(pop *Population, size int, rng *rand.Rand) []tsp.Tour {
	n := pop.Len()
	if n == 0 || size <= 0 {
		return nil
	}
	k := s.Size
	if k <= 0 {
		k = size / 5
	}
	if k < 1 {
		k = 1
	}

	var (
		out  = make([]tsp.Tour, size)
		best tsp.Tour
		c    tsp.Tour
		i, r int
	)
	for i = 0; i < size; i++ {
		best = pop.tours[rng.Intn(n)]
		for r = 1; r < k; r++ {
			c = pop.tours[rng.Intn(n)]
			if c.Cost() < best.Cost() {
				best = c
			}
		}
		out[i] = best.Clone()
	}

	return out
}

// RankedSelector orders the population worst first (stable on ties) and gives
// position i the weight i. Draws are with replacement. The worst individual
// has weight 0 and is never drawn unless the population has a single member.
type RankedSelector struct{}

// Select implements Selector.
func (RankedSelector) Select(pop *Population, size int, rng *rand.Rand) []tsp.Tour {
	n := pop.Len()
	if n == 0 || size <= 0 {
		return nil
	}
	ranked := pop.Tours()
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Cost() > ranked[j].Cost() })

	out := make([]tsp.Tour, size)
	if n == 1 {
		for i := range out {
			out[i] = ranked[0].Clone()
		}
		return out
	}

	// cum[i] = 0+1+…+i; rank i owns the draws in [cum[i-1], cum[i]).
	cum := make([]int64, n)
	for i := 1; i < n; i++ {
		cum[i] = cum[i-1] + int64(i)
	}
	total := cum[n-1]

	var r int64
	for i := range out {
		r = rng.Int63n(total)
		k := sort.Search(n, func(j int) bool { return cum[j] > r })
		out[i] = ranked[k].Clone()
	}

	return out
}
