package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/memetic/tsp"
	"gonum.org/v1/gonum/stat"
)

// Population is an ordered collection of tours. Tours are immutable values,
// so the slice is the only state; it is replaced wholesale by survivor
// selection and slot-wise by local search.
type Population struct {
	tours []tsp.Tour
}

// Stats summarises the costs of a population.
type Stats struct {
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64 // population standard deviation
}

// NewPopulation wraps tours. The slice is copied.
func NewPopulation(tours []tsp.Tour) *Population {
	own := make([]tsp.Tour, len(tours))
	copy(own, tours)

	return &Population{tours: own}
}

// NewRandomPopulation draws size independent uniform permutations from rng.
// Duplicates are kept.
//
// Errors: tsp.ErrNilDistances, tsp.ErrEmptyInstance, ErrInvalidConfiguration
// for a negative size.
func NewRandomPopulation(d *tsp.Distances, size int, rng *rand.Rand) (*Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: population size %d < 0", ErrInvalidConfiguration, size)
	}
	tours := make([]tsp.Tour, size)

	var err error
	for i := range tours {
		if tours[i], err = tsp.RandomTour(d, rng); err != nil {
			return nil, err
		}
	}

	return &Population{tours: tours}, nil
}

// Len returns the number of individuals.
func (p *Population) Len() int { return len(p.tours) }

// At returns individual i.
func (p *Population) At(i int) tsp.Tour { return p.tours[i] }

// Tours returns a copy of the member slice.
func (p *Population) Tours() []tsp.Tour {
	out := make([]tsp.Tour, len(p.tours))
	copy(out, p.tours)

	return out
}

// Costs returns the cost of every individual in order.
func (p *Population) Costs() []float64 {
	out := make([]float64, len(p.tours))
	for i := range p.tours {
		out[i] = p.tours[i].Cost()
	}

	return out
}

// Best returns the cheapest individual, the first one on ties.
// An empty population yields the zero Tour.
func (p *Population) Best() tsp.Tour {
	if len(p.tours) == 0 {
		return tsp.Tour{}
	}
	best := p.tours[0]
	for _, t := range p.tours[1:] {
		if t.Cost() < best.Cost() {
			best = t
		}
	}

	return best
}

// Worst returns the most expensive individual, the first one on ties.
func (p *Population) Worst() tsp.Tour {
	if len(p.tours) == 0 {
		return tsp.Tour{}
	}
	worst := p.tours[0]
	for _, t := range p.tours[1:] {
		if t.Cost() > worst.Cost() {
			worst = t
		}
	}

	return worst
}

// Mean returns the average cost (0 for an empty population).
func (p *Population) Mean() float64 {
	if len(p.tours) == 0 {
		return 0
	}

	return stat.Mean(p.Costs(), nil)
}

// StdDev returns the population standard deviation of the costs.
func (p *Population) StdDev() float64 {
	if len(p.tours) == 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(p.Costs(), nil)

	return std
}

// Stats computes every summary in one pass over the costs.
func (p *Population) Stats() Stats {
	if len(p.tours) == 0 {
		return Stats{}
	}
	mean, std := stat.PopMeanStdDev(p.Costs(), nil)

	return Stats{
		Best:   p.Best().Cost(),
		Worst:  p.Worst().Cost(),
		Mean:   mean,
		StdDev: std,
	}
}
