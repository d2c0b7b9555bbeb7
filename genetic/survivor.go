package genetic

import (
	"sort"

	"github.com/katalvlaran/memetic/tsp"
)

// Truncate implements (μ+λ) survivor selection: the pool is stably sorted by
// ascending cost and the first size tours are kept, so the cheapest tour of
// the pool always survives. pool itself is not reordered. A size larger than
// the pool keeps everything.
func Truncate(pool []tsp.Tour, size int) []tsp.Tour {
	sorted := make([]tsp.Tour, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Cost() < sorted[j].Cost() })

	if size < 0 {
		size = 0
	}
	if size < len(sorted) {
		sorted = sorted[:size]
	}

	return sorted
}
