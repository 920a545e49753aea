package smoothsort

import (
	"golang.org/x/exp/constraints"

	"github.com/richiks/go-sorting/leonardo"
)

// Sort sorts data in ascending order. It is not stable.
func Sort[E constraints.Ordered](data []E) {
	SortFunc(data, func(a, b E) bool { return a < b })
}

// SortFunc sorts data in ascending order as determined by the less
// function, which must define a strict weak ordering. It is not stable:
// elements that compare equal may not keep their original order.
func SortFunc[E any](data []E, less func(a, b E) bool) {
	if len(data) < 2 {
		return
	}

	var shape leonardo.Shape

	// Grow the forest across the whole slice, then consume it. The
	// maximum of the forest is always its rightmost root, so each
	// removal deposits one element at its final position, largest last.
	for next := range data {
		leonardo.Add(data, next, &shape, less)
	}
	for end := len(data); end > 0; end-- {
		leonardo.Remove(data, end, &shape, less)
	}
}
