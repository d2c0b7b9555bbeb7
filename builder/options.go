// SPDX-License-Identifier: MIT
//
// Option constructors validate their arguments and panic on meaningless
// input; the constructors themselves only return errors.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/memetic/tsp"
)

// Option customizes a constructor.
type Option func(*config)

type config struct {
	idFn   IDFn
	rng    *rand.Rand
	radius float64 // Circle radius and half the RandomEuclidean square side
}

const defaultRadius = 100.0

func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn, radius: defaultRadius}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the city naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithExcelColumnIDs names cities "A", "B", ..., "AA", ...
func WithExcelColumnIDs() Option { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs names cities prefix+index.
func WithPrefixIDs(prefix string) Option { return WithIDScheme(PrefixIDFn(prefix)) }

// WithSeed uses tsp.NewRand(seed) as the random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = tsp.NewRand(seed) }
}

// WithRand uses rng as the random source. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = rng }
}

// WithRadius sets the geometric scale. Panics unless r is finite and > 0.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 1) {
		panic("builder: WithRadius requires a finite r > 0")
	}
	return func(c *config) { c.radius = r }
}
