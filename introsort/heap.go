package introsort

// siftDown restores the max-heap property for the binary heap living in
// data[first:first+hi], rooted at offset lo. This is the classic 2i+1/2i+2
// implicit layout, nothing to do with the Leonardo structure elsewhere in
// the module.
func siftDown[E any](data []E, lo, hi, first int, less func(a, b E) bool) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && less(data[first+child], data[first+child+1]) {
			child++
		}
		if !less(data[first+root], data[first+child]) {
			return
		}
		data[first+root], data[first+child] = data[first+child], data[first+root]
		root = child
	}
}

// heapSort sorts data[a:b]. quickSort falls back to it when the partition
// depth limit runs out, so it carries the worst case guarantee for the
// whole package.
func heapSort[E any](data []E, a, b int, less func(a, b E) bool) {
	first := a
	lo := 0
	hi := b - a

	// Build the heap with the greatest element at the top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(data, i, hi, first, less)
	}

	// Pop elements, largest first, into the end of data.
	for i := hi - 1; i >= 0; i-- {
		data[first], data[first+i] = data[first+i], data[first]
		siftDown(data, lo, i, first, less)
	}
}
