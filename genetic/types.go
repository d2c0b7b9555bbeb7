package genetic

import "errors"

var (
	// ErrInvalidConfiguration is returned by Options.Validate and New when a
	// run cannot start. No generation has executed when it is returned.
	ErrInvalidConfiguration = errors.New("genetic: invalid configuration")

	// ErrInvalidWindow is returned by PMX for a window outside [0, n] or with
	// start > stop.
	ErrInvalidWindow = errors.New("genetic: invalid crossover window")
)
