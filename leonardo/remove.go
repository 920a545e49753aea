package leonardo

// Remove shrinks the forest spanning data[:end] by one element, updating
// the shape in place. The forest keeps its roots in ascending order, so the
// maximum of the whole structure is always the rightmost root at end-1;
// removal simply leaves it where it is and repairs what its departure
// exposes.
//
// Two cases:
//
//	Case 1: the rightmost tree has order 0 or 1. It is a bare singleton,
//	        dropping it exposes nothing, only the shape changes.
//	Case 2: the rightmost tree has order k >= 2. Removing its root exposes
//	        its two children, order k-1 and k-2 trees already sitting in
//	        place. Both become forest roots and each must be walked into
//	        position, left child first.
//
// The left child is rectified against a view of the shape that excludes
// the right child, since the right child's root is not yet known to be in
// its sorted position at that point.
func Remove[E any](data []E, end int, s *Shape, less func(a, b E) bool) {
	// Case 1: scan up to the next tree, or to the empty shape if this was
	// the last one.
	if s.smallest <= 1 {
		for {
			s.shiftDown(1)
			s.smallest++
			if s.Empty() || s.test(0) {
				break
			}
		}
		return
	}

	// Case 2: break the rightmost tree open, mapping the encoding
	// (W1, k) to (W011, k-2).
	k := s.smallest
	s.clear(0)
	s.shiftUp(2)
	s.set(0)
	s.set(1)
	s.smallest -= 2

	leftHeap := FirstChild(end-1, k)
	rightHeap := SecondChild(end - 1)

	// For the left child's walk, pretend the forest stops at the left
	// child.
	allButLast := *s
	allButLast.shiftDown(1)
	allButLast.smallest++

	// rectify takes an exclusive end bound, hence the +1 on the roots.
	rectify(data, leftHeap+1, allButLast, less)
	rectify(data, rightHeap+1, *s, less)
}
