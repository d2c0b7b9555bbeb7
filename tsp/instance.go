// Package tsp - cities and the Instance that binds them to a cost table.
package tsp

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/memetic/matrix"
)

// City identifies one stop by its position in the cost table and an optional name.
type City struct {
	Index int
	Name  string
}

// Instance is an ordered city list plus its Distances. Both are read-only for
// the lifetime of the Instance.
type Instance struct {
	cities []City
	dist   *Distances
}

// NewInstance pairs names with the cost table m. names may be nil, in which
// case every city is named by its index. Empty names are replaced the same way.
//
// Errors: those of NewDistances, ErrDimensionMismatch, ErrDuplicateName.
func NewInstance(names []string, m matrix.Matrix) (*Instance, error) {
	d, err := NewDistances(m)
	if err != nil {
		return nil, err
	}
	if names != nil {
		if err = validateNames(names, d.n); err != nil {
			return nil, err
		}
	}

	cities := make([]City, d.n)
	for i := range cities {
		cities[i].Index = i
		if names != nil && names[i] != "" {
			cities[i].Name = names[i]
		} else {
			cities[i].Name = strconv.Itoa(i)
		}
	}

	return &Instance{cities: cities, dist: d}, nil
}

// N returns the number of cities.
func (in *Instance) N() int { return len(in.cities) }

// Distances returns the shared, immutable cost table.
func (in *Instance) Distances() *Distances { return in.dist }

// Cities returns a copy of the city list.
func (in *Instance) Cities() []City {
	out := make([]City, len(in.cities))
	copy(out, in.cities)

	return out
}

// Route maps a tour to the ordered city names the reporting side consumes.
func (in *Instance) Route(t Tour) ([]string, error) {
	if t.Len() != len(in.cities) {
		return nil, fmt.Errorf("tsp: route of %d cities for instance of %d: %w", t.Len(), len(in.cities), ErrDimensionMismatch)
	}
	out := make([]string, t.Len())
	for i := range out {
		out[i] = in.cities[t.perm[i]].Name
	}

	return out, nil
}

// Subset returns the instance restricted to its first k cities, the way small
// exact baselines are carved out of a larger table.
func (in *Instance) Subset(k int) (*Instance, error) {
	if k <= 0 {
		return nil, ErrEmptyInstance
	}
	if k > len(in.cities) {
		return nil, fmt.Errorf("tsp: subset of %d from %d cities: %w", k, len(in.cities), ErrDimensionMismatch)
	}

	var (
		n    = in.dist.n
		w    = make([]float64, k*k)
		i, j int
	)
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			w[i*k+j] = in.dist.w[i*n+j]
		}
	}
	cities := make([]City, k)
	copy(cities, in.cities[:k])

	return &Instance{cities: cities, dist: &Distances{n: k, w: w}}, nil
}
