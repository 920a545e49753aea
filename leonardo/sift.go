package leonardo

// SiftDown restores the max-heap property of a single order k tree rooted at
// root, assuming both subtrees are already heap ordered. The root value is
// repeatedly swapped with its larger child until neither child exceeds it,
// shrinking the working order as it descends: stepping into the first child
// drops the order by one, into the second child by two. Trees of order 0
// and 1 are single elements, so for those this is a no-op.
func SiftDown[E any](data []E, root, k int, less func(a, b E) bool) {
	for k > 1 {
		child, childOrder := LargerChild(data, root, k, less)
		if !less(data[root], data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root, k = child, childOrder
	}
}
