package leonardo

// rectify repairs a forest spanning data[:end] whose rightmost root at
// end-1 may be out of place, by walking the new value left along the run of
// roots until it reaches the tree it belongs on, then sifting it down into
// that tree.
//
// A root is moved left past a prior root only when the prior root is
// strictly greater than both the current root and its children. Comparing
// against the larger child too is what guarantees the eventual sift cannot
// push the swapped-in value below a root further right, so a single sift at
// the landing tree suffices.
//
// The shape is taken by value: the walk consumes it to find each prior
// tree, and the caller's view of the forest must not change.
func rectify[E any](data []E, end int, shape Shape, less func(a, b E) bool) {
	root := end - 1

	// Order of the tree the walk most recently stood on, remembered so the
	// final sift knows how big its tree is.
	var k int

	for {
		k = shape.smallest

		// The leftmost tree's root sits exactly L(k)-1 from the start of
		// the range, and there is nothing further left to compare with.
		if root == Number(k)-1 {
			break
		}

		// The value the prior root must beat: the current root, or its
		// larger child if that is bigger still. Order 0 and 1 trees have no
		// children to consider.
		toCompare := root
		if k > 1 {
			if child, _ := LargerChild(data, root, k, less); less(data[toCompare], data[child]) {
				toCompare = child
			}
		}

		prior := root - Number(k)
		if !less(data[toCompare], data[prior]) {
			break
		}

		data[root], data[prior] = data[prior], data[root]
		root = prior

		// Scan up to the next tree actually present in the forest.
		for {
			shape.shiftDown(1)
			shape.smallest++
			if shape.test(0) {
				break
			}
		}
	}

	SiftDown(data, root, k, less)
}
