// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/memetic/matrix"
	"github.com/katalvlaran/memetic/tsp"
)

const (
	methodEuclidean       = "Euclidean"
	methodRandomEuclidean = "RandomEuclidean"
	methodCircle          = "Circle"
	methodRing            = "Ring"
	methodRandomTable     = "RandomTable"

	minCircleCities = 3
)

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}

// Euclidean builds the symmetric instance whose costs are straight-line
// distances between points.
//
// Complexity: O(n²) time and space.
func Euclidean(points []Point, opts ...Option) (*tsp.Instance, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%s: %w", methodEuclidean, tsp.ErrEmptyInstance)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%s: point %d (%v, %v): %w", methodEuclidean, i, p.X, p.Y, ErrInvalidPoint)
		}
	}

	return fromPoints(methodEuclidean, points, newConfig(opts...))
}

// RandomEuclidean places n cities uniformly in the square
// [0, 2·radius)² and returns their Euclidean instance.
func RandomEuclidean(n int, opts ...Option) (*tsp.Instance, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomEuclidean, n, ErrTooFewCities)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomEuclidean, ErrNeedRandSource)
	}

	side := 2 * cfg.radius
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: cfg.rng.Float64() * side, Y: cfg.rng.Float64() * side}
	}

	return fromPoints(methodRandomEuclidean, points, cfg)
}

// Circle places n ≥ 3 cities evenly on a circle of the configured radius,
// in index order. The identity tour is optimal with cost 2·n·r·sin(π/n).
func Circle(n int, opts ...Option) (*tsp.Instance, error) {
	if n < minCircleCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minCircleCities, ErrTooFewCities)
	}
	cfg := newConfig(opts...)

	points := make([]Point, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: cfg.radius * math.Cos(theta), Y: cfg.radius * math.Sin(theta)}
	}

	return fromPoints(methodCircle, points, cfg)
}

// CircleOptimum is the optimal closed-tour cost of Circle(n, WithRadius(r)).
func CircleOptimum(n int, r float64) float64 {
	return 2 * float64(n) * r * math.Sin(math.Pi/float64(n))
}

// Ring builds n cities where consecutive indices (cyclically) cost near and
// every other pair costs far. With 0 ≤ near < far the identity tour is
// optimal with cost n·near.
func Ring(n int, near, far float64, opts ...Option) (*tsp.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRing, n, ErrTooFewCities)
	}
	if !finite(near) || !finite(far) || near < 0 || far < near {
		return nil, fmt.Errorf("%s: near=%v far=%v: %w", methodRing, near, far, ErrInvalidRange)
	}
	cfg := newConfig(opts...)

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			switch {
			case i == j:
			case (i+1)%n == j || (j+1)%n == i:
				rows[i][j] = near
			default:
				rows[i][j] = far
			}
		}
	}

	return fromRows(methodRing, rows, cfg)
}

// RandomTable builds an asymmetric n×n table with off-diagonal costs drawn
// uniformly from the integers in [lo, hi].
func RandomTable(n int, lo, hi int, opts ...Option) (*tsp.Instance, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomTable, n, ErrTooFewCities)
	}
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("%s: [%d, %d]: %w", methodRandomTable, lo, hi, ErrInvalidRange)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTable, ErrNeedRandSource)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(lo + cfg.rng.Intn(hi-lo+1))
			}
		}
	}

	return fromRows(methodRandomTable, rows, cfg)
}

func fromPoints(method string, points []Point, cfg config) (*tsp.Instance, error) {
	n := len(points)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			rows[i][j], rows[j][i] = d, d
		}
	}

	return fromRows(method, rows, cfg)
}

func fromRows(method string, rows [][]float64, cfg config) (*tsp.Instance, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	inst, err := tsp.NewInstance(names(cfg.idFn, len(rows)), m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return inst, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
