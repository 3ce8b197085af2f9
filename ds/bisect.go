package ds

import (
	"sort"
)

// BisectRight returns the number of elements of xs that are less than or
// equal to x; xs must be sorted ascending. The result is the right-hand
// insertion point: xs[BisectRight(xs, x)-1] <= x < xs[BisectRight(xs, x)].
func BisectRight(xs []float64, x float64) int {
	return sort.Search(len(xs), func(i int) bool { return xs[i] > x })
}
