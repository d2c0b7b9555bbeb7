// Package tsp - validation utilities shared by constructors and solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import "fmt"

// validateNames enforces len(names)==n and uniqueness of non-empty names.
// Empty names are allowed; Instance substitutes the city index for them.
//
// Complexity: O(n) time and O(n) extra space.
func validateNames(names []string, n int) error {
	if len(names) != n {
		return fmt.Errorf("tsp: %d names for %d cities: %w", len(names), n, ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, n)

	var (
		i    int
		name string
		ok   bool
	)
	for i = 0; i < n; i++ {
		name = names[i]
		if name == "" {
			continue
		}
		if _, ok = seen[name]; ok {
			return fmt.Errorf("tsp: %q at position %d: %w", name, i, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// validateStart checks that d is usable and start matches it in size.
func validateStart(d *Distances, start Tour) error {
	if d == nil {
		return ErrNilDistances
	}
	if start.Len() != d.n {
		return fmt.Errorf("tsp: tour of %d cities for table of %d: %w", start.Len(), d.n, ErrDimensionMismatch)
	}

	return nil
}
