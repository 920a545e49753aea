package leonardo

// Note: the expectation is that once we are satisfied with the deferred
// rectify in Add we will delete this file. A reason to keep it around is
// that testing benefits from having multiple implementations of key
// algorithms.

// AddOld is deprecated and retained only for reference and testing.
//
// It grows the forest exactly as Add does but performs the full rectify
// walk after every addition, never deferring to a plain sift. The result
// is a forest whose root run is ascending at every intermediate size, not
// just for trees at their final order. That is a strictly stronger
// invariant than the sort needs, bought with extra comparisons on every
// add; the deferral in Add is where the linear best case on sorted input
// comes from.
func AddOld[E any](data []E, next int, s *Shape, less func(a, b E) bool) {
	switch {
	case !s.test(0):
		s.set(0)
		s.smallest = 1
	case s.test(1):
		s.shiftDown(2)
		s.set(0)
		s.smallest += 2
	case s.smallest == 1:
		s.shiftUp(1)
		s.set(0)
		s.smallest = 0
	default:
		s.shiftUp(s.smallest - 1)
		s.set(0)
		s.smallest = 1
	}

	rectify(data, next+1, *s, less)
}
