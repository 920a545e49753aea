package introsort

import "golang.org/x/exp/constraints"

// Sort sorts data in ascending order. It is not stable.
func Sort[E constraints.Ordered](data []E) {
	SortFunc(data, func(a, b E) bool { return a < b })
}

// SortFunc sorts data in ascending order as determined by the less
// function, which must define a strict weak ordering. It is not stable.
func SortFunc[E any](data []E, less func(a, b E) bool) {
	quickSort(data, 0, len(data), maxDepth(len(data)), less)
}

func quickSort[E any](data []E, a, b, depth int, less func(a, b E) bool) {
	for b-a > 12 {
		if depth == 0 {
			heapSort(data, a, b, less)
			return
		}
		depth--
		mlo, mhi := doPivot(data, a, b, less)
		// Recurse on the smaller half and loop on the larger, which bounds
		// the stack at lg(b-a) frames.
		if mlo-a < b-mhi {
			quickSort(data, a, mlo, depth, less)
			a = mhi
		} else {
			quickSort(data, mhi, b, depth, less)
			b = mlo
		}
	}
	if b-a > 1 {
		// One shell pass with gap six before the insertion sort; a single
		// pass is all a range of at most twelve needs.
		for i := a + 6; i < b; i++ {
			if less(data[i], data[i-6]) {
				data[i], data[i-6] = data[i-6], data[i]
			}
		}
		insertionSort(data, a, b, less)
	}
}

// maxDepth returns the partition depth at which quickSort gives up and
// switches to heapsort, 2*ceil(lg(n+1)).
func maxDepth(n int) int {
	var depth int
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	return depth * 2
}
