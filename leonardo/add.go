package leonardo

// Add grows the forest spanning data[:next] to cover the element at
// data[next], updating the shape in place. data must be the full slice that
// will eventually be covered: how much room remains after next decides how
// much rebalancing the new element gets, see below.
//
// Appending one slot changes the run of tree sizes in one of four ways:
//
//	Case 0: the forest is empty, the element becomes an order 1 singleton.
//	Case 1: the two rightmost trees have consecutive orders k and k+1, so
//	        the new element merges them into a single order k+2 tree by
//	        becoming its root.
//	Case 2: the rightmost tree has order 1, the element becomes an order 0
//	        singleton alongside it.
//	Case 3: anything else, the element becomes an order 1 singleton.
//
// The merge case is the reason this data structure works at all: the two
// children are already in place, so an order k+2 tree materializes from a
// shape update and a sift, no elements move.
//
// A tree that later additions will merge away is not worth fully
// rectifying. The new root is walked left along the forest only when the
// tree it tops has reached its final order, meaning no future addition can
// absorb it; otherwise a sift restoring the tree's own heap property is
// enough. That deferral is where the linear best case comes from.
func Add[E any](data []E, next int, s *Shape, less func(a, b E) bool) {
	switch {
	// Case 0: the empty forest has no bit 0 set.
	case !s.test(0):
		s.set(0)
		s.smallest = 1

	// Case 1: bits 0 and 1 set means two trees of consecutive order. Drop
	// them both off the vector and record the merged tree, whose order is
	// one above the larger of the pair.
	case s.test(1):
		s.shiftDown(2)
		s.set(0)
		s.smallest += 2

	// Case 2: the rightmost tree is an order 1 singleton, so the new order
	// 0 singleton opens a spot below it.
	case s.smallest == 1:
		s.shiftUp(1)
		s.set(0)
		s.smallest = 0

	// Case 3: re-anchor the vector at order 1 and record the singleton.
	default:
		s.shiftUp(s.smallest - 1)
		s.set(0)
		s.smallest = 1
	}

	// Decide whether the tree just formed is at its final order. An order 0
	// tree is final only as the very last element. An order 1 tree is final
	// as the last element, or as the penultimate one when no merge is
	// coming. A bigger tree is final when the slots remaining can no longer
	// supply a sibling of the next order down plus the root that would
	// merge them.
	isLast := false
	switch s.smallest {
	case 0:
		isLast = next+1 == len(data)
	case 1:
		isLast = next+1 == len(data) || (next+2 == len(data) && !s.test(1))
	default:
		isLast = len(data)-(next+1) < Number(s.smallest-1)+1
	}

	if !isLast {
		SiftDown(data, next, s.smallest, less)
		return
	}
	rectify(data, next+1, *s, less)
}
