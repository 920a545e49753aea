package leonardo

import (
	"errors"
	"fmt"
)

var (
	ErrShapeSize    = errors.New("leonardo: shape size does not match range")
	ErrHeapOrder    = errors.New("leonardo: tree root smaller than a descendant")
	ErrRootsOrdered = errors.New("leonardo: forest roots not in ascending order")
)

// Verify checks the two structural invariants of a fully built forest over
// data[:end]: every tree is max-heap ordered, and the roots ascend from
// left to right so the global maximum is the rightmost root. The shape is
// checked against end first, since a mismatched shape would send the walk
// to nonsense positions.
//
// Mid-construction forests only promise the heap invariant for trees that
// have reached their final order, so Verify is for completed builds and for
// tests; the sort itself never needs it.
func Verify[E any](data []E, end int, s Shape, less func(a, b E) bool) error {
	if got := s.Size(); got != end {
		return fmt.Errorf("%w: shape covers %d elements, range has %d", ErrShapeSize, got, end)
	}

	// Walk the trees right to left, which is ascending order of order. The
	// size check above guarantees the present orders consume exactly end
	// elements, so the walk bottoms out at root == -1.
	root := end - 1
	prior := -1
	order := s.smallest
	for root >= 0 {
		for !s.Has(order) {
			order++
		}
		if prior >= 0 && less(data[prior], data[root]) {
			return fmt.Errorf(
				"%w: order %d root at index %d exceeds the root at index %d", ErrRootsOrdered, order, root, prior)
		}
		if err := verifyTree(data, root, order, less); err != nil {
			return err
		}
		prior = root
		root -= Number(order)
		order++
	}
	return nil
}

func verifyTree[E any](data []E, root, order int, less func(a, b E) bool) error {
	if order <= 1 {
		return nil
	}
	first := FirstChild(root, order)
	second := SecondChild(root)
	if less(data[root], data[first]) {
		return fmt.Errorf("%w: index %d < first child %d", ErrHeapOrder, root, first)
	}
	if less(data[root], data[second]) {
		return fmt.Errorf("%w: index %d < second child %d", ErrHeapOrder, root, second)
	}
	if err := verifyTree(data, first, order-1, less); err != nil {
		return err
	}
	return verifyTree(data, second, order-2, less)
}
