package tsp

// LocalSearch refines a tour to a local optimum of some neighbourhood.
// Implementations must be deterministic and must only read d, so that a
// population can be refined concurrently with identical results.
type LocalSearch interface {
	// Improve returns the refined tour and the number of accepted moves.
	Improve(d *Distances, t Tour) (Tour, int, error)

	// Name is a short stable identifier used in logs and configuration.
	Name() string
}

// SwapHillClimber is steepest-ascent hill climbing over single swaps (HillClimb).
type SwapHillClimber struct{}

// Improve implements LocalSearch.
func (SwapHillClimber) Improve(d *Distances, t Tour) (Tour, int, error) { return HillClimb(d, t) }

// Name implements LocalSearch.
func (SwapHillClimber) Name() string { return "swap" }

// TwoOptClimber is steepest-descent 2-opt (TwoOpt).
type TwoOptClimber struct{}

// Improve implements LocalSearch.
func (TwoOptClimber) Improve(d *Distances, t Tour) (Tour, int, error) { return TwoOpt(d, t) }

// Name implements LocalSearch.
func (TwoOptClimber) Name() string { return "two_opt" }

// NoLocalSearch returns tours unchanged. It turns the memetic loop into a
// plain genetic algorithm.
type NoLocalSearch struct{}

// Improve implements LocalSearch.
func (NoLocalSearch) Improve(d *Distances, t Tour) (Tour, int, error) {
	if err := validateStart(d, t); err != nil {
		return Tour{}, 0, err
	}

	return t, 0, nil
}

// Name implements LocalSearch.
func (NoLocalSearch) Name() string { return "none" }

// LocalSearchByName resolves the identifiers returned by Name.
// The boolean is false for an unknown name.
func LocalSearchByName(name string) (LocalSearch, bool) {
	switch name {
	case "swap", "":
		return SwapHillClimber{}, true
	case "two_opt":
		return TwoOptClimber{}, true
	case "none":
		return NoLocalSearch{}, true
	default:
		return nil, false
	}
}
