// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewCities is returned when a size parameter is below the
	// constructor's minimum.
	ErrTooFewCities = errors.New("builder: too few cities")

	// ErrNeedRandSource is returned by a stochastic constructor built without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrInvalidPoint is returned for a point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("builder: invalid point")

	// ErrInvalidRange is returned when a cost range is empty, negative or not finite.
	ErrInvalidRange = errors.New("builder: invalid cost range")
)
