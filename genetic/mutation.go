package genetic

import "math/rand"

// InsertionMutation picks two distinct positions i and j uniformly, removes
// the element at j and reinserts it at index i+1 of the shortened slice
// (appending when that is past the end). perm is edited in place and stays a
// permutation. Slices shorter than 2 are left alone.
//
// Complexity: O(n).
func InsertionMutation(perm []int, rng *rand.Rand) {
	n := len(perm)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	v := perm[j]
	copy(perm[j:], perm[j+1:])

	k := i + 1
	if k > n-1 {
		k = n - 1
	}
	copy(perm[k+1:], perm[k:n-1])
	perm[k] = v
}
