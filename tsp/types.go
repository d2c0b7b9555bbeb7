package tsp

import "errors"

// Sentinel errors. Callers match them with errors.Is; context is attached with
// %w at the boundary that detects the condition.
var (
	// ErrInvalidIndex is returned when a permutation references a city index
	// outside the distance table. It indicates a corrupted tour.
	ErrInvalidIndex = errors.New("tsp: city index out of range")

	// ErrNotPermutation is returned when a sequence repeats or omits a city.
	ErrNotPermutation = errors.New("tsp: sequence is not a permutation")

	// ErrDimensionMismatch is returned when two inputs disagree in size
	// (tour vs. table, names vs. table, parent vs. parent).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrEmptyInstance is returned for a distance table or city set with no cities.
	ErrEmptyInstance = errors.New("tsp: empty instance")

	// ErrNilDistances is returned when a nil *Distances is passed to a solver.
	ErrNilDistances = errors.New("tsp: nil distances")

	// ErrTooLarge is returned by exact solvers when n exceeds their size guard.
	ErrTooLarge = errors.New("tsp: instance too large for exact search")

	// ErrIncompleteGraph is returned when no finite Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrDuplicateName is returned when two cities share a name.
	ErrDuplicateName = errors.New("tsp: duplicate city name")
)
