package leonardo

import (
	"fmt"
	"math/bits"
	"strings"
)

// Shape is a bitvector encoding of the trees making up a Leonardo forest.
//
// The forest is a run of heap ordered trees whose sizes are distinct
// Leonardo numbers, packed left to right in strictly decreasing order. Only
// which orders are present needs recording, so the whole structure fits in a
// handful of words: bit i of trees records whether a tree of order
// smallest+i is present, with bit 0 always set while the forest is
// non-empty. Keeping the vector shifted down against the smallest order
// means the add and remove bookkeeping is a couple of shifts, whatever the
// orders involved.
//
// So the forest over 13 elements
//
//	[ order 4 (9 elements) | order 2 (3 elements) | order 1 (1 element) ]
//
// is encoded as trees = 0b1011 with smallest = 1: reading up from bit 0,
// orders 1 and 2 are present, 3 is absent, 4 is present.
//
// Orders run to MaxOrder() which exceeds 64 on a 64 bit platform, hence the
// two word vector.
//
// The zero value describes the empty forest and is ready to use.
type Shape struct {
	trees    [2]uint64
	smallest int
}

// Empty reports whether the shape describes a forest with no trees.
func (s *Shape) Empty() bool {
	return s.trees[0]|s.trees[1] == 0
}

// Smallest returns the order of the rightmost (and therefore smallest) tree
// in the forest. The result is meaningless for an empty shape.
func (s *Shape) Smallest() int {
	return s.smallest
}

// Has reports whether a tree of the given order is present in the forest.
func (s *Shape) Has(order int) bool {
	i := order - s.smallest
	if i < 0 || i >= 128 {
		return false
	}
	return s.test(i)
}

// Orders returns the orders of the trees in the forest from left to right,
// which is to say in decreasing order. It returns nil for an empty shape.
func (s *Shape) Orders() []int {
	var orders []int
	for i := 127; i >= 0; i-- {
		if s.test(i) {
			orders = append(orders, s.smallest+i)
		}
	}
	return orders
}

// Size returns the total number of elements covered by the forest, the sum
// of the Leonardo numbers of the orders present.
func (s *Shape) Size() int {
	n := 0
	for i := 0; i < 128; i++ {
		if s.test(i) {
			n += Number(s.smallest + i)
		}
	}
	return n
}

// String renders the shape in the form used throughout the tests, eg
// "L4+L2+L1" for the 13 element forest. The empty shape renders as "empty".
func (s *Shape) String() string {
	if s.Empty() {
		return "empty"
	}
	parts := make([]string, 0, bits.OnesCount64(s.trees[0])+bits.OnesCount64(s.trees[1]))
	for _, order := range s.Orders() {
		parts = append(parts, fmt.Sprintf("L%d", order))
	}
	return strings.Join(parts, "+")
}

// The helpers below treat trees as a single 128 bit vector with bit 0 in
// trees[0]. Bit indices outside [0, 128) are never generated: the largest
// order is MaxOrder() = 89 and the vector is always kept shifted down
// against the smallest present order.

func (s *Shape) test(i int) bool {
	return s.trees[i>>6]&(1<<(i&63)) != 0
}

func (s *Shape) set(i int) {
	s.trees[i>>6] |= 1 << (i & 63)
}

func (s *Shape) clear(i int) {
	s.trees[i>>6] &^= 1 << (i & 63)
}

func (s *Shape) shiftUp(n int) {
	switch {
	case n == 0:
	case n < 64:
		s.trees[1] = s.trees[1]<<n | s.trees[0]>>(64-n)
		s.trees[0] <<= n
	case n < 128:
		s.trees[1] = s.trees[0] << (n - 64)
		s.trees[0] = 0
	default:
		s.trees[0], s.trees[1] = 0, 0
	}
}

func (s *Shape) shiftDown(n int) {
	switch {
	case n == 0:
	case n < 64:
		s.trees[0] = s.trees[0]>>n | s.trees[1]<<(64-n)
		s.trees[1] >>= n
	case n < 128:
		s.trees[0] = s.trees[1] >> (n - 64)
		s.trees[1] = 0
	default:
		s.trees[0], s.trees[1] = 0, 0
	}
}
