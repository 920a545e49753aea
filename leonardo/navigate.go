package leonardo

// The navigation primitives place a burden of knowledge on the caller, in
// the interests of simplicity and efficiency: asking for the children of an
// order 0 or order 1 root yields nonsense rather than an error. Callers
// always know the order of the tree they are standing on, so the checks
// would be pure waste on the hot path.

// SecondChild returns the index of the root of the second (rightmost) child
// of the order k tree rooted at root. The layout stores a tree as its first
// child, then its second child, then the root, so the second child's root
// always sits immediately before the root. Requires k > 1.
//
// For the order 3 tree below, laid out in slice positions 0..4,
//
//	      4
//	    /   \
//	   2     3
//	  / \
//	 0   1
//
// SecondChild(4) is 3, the root of the order 1 subtree.
func SecondChild(root int) int {
	return root - 1
}

// FirstChild returns the index of the root of the first (leftmost) child of
// the order k tree rooted at root. The first child has order k-1 and its
// subtree ends where the second child's L(k-2) elements begin, so it is
// found by stepping over the second child. Requires k > 1.
//
// In the order 3 tree above, FirstChild(4, 3) is 3 - L(1) = 2, the root of
// the order 2 subtree spanning positions 0..2.
func FirstChild(root, k int) int {
	return SecondChild(root) - Number(k-2)
}

// LargerChild returns the index of the larger of the two children of the
// order k tree rooted at root, along with the order of that child's
// subtree. Ties go to the first child, which keeps the whole sift
// deterministic. Requires k > 1.
func LargerChild[E any](data []E, root, k int, less func(a, b E) bool) (int, int) {
	first := FirstChild(root, k)
	second := SecondChild(root)

	if less(data[first], data[second]) {
		return second, k - 2
	}
	return first, k - 1
}
