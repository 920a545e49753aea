package binaryquicksort

import (
	"golang.org/x/exp/constraints"
)

// Sort sorts data in place into ascending numeric order.
//
// Elements are ordered by value, not by a comparator: the sort partitions on
// one bit per round from the type's most significant bit down, then repairs
// the placement of the sign-bit block for signed types. It is not stable,
// runs in O(n * w) for w-bit elements, and needs no memory beyond the slice
// and O(w + lg n) stack.
func Sort[E constraints.Integer](data []E) {
	sortAtBit(data, width[E]()-1)

	// A bit pass orders by raw bit pattern, which for signed types leaves
	// the negative block (sign bit set) after the non-negative one.
	if signed[E]() {
		rotateNegatives(data)
	}
}

// sortAtBit sorts data by the bits at positions bit..0, most significant
// first. The loop iterates on the larger of the two blocks each round and
// recurses only on the smaller, so the recursion never exceeds lg(len(data))
// frames even though there is one round per remaining bit.
func sortAtBit[E constraints.Integer](data []E, bit int) {
	for bit >= 0 && len(data) > 1 {
		p := partitionAtBit(data, bit)
		bit--

		if p < len(data)-p {
			sortAtBit(data[:p], bit)
			data = data[p:]
		} else {
			sortAtBit(data[p:], bit)
			data = data[:p]
		}
	}
}

// width returns the bit width of E. Left shifts truncate to the width of the
// type, so a walking set bit reaches zero after exactly width steps.
func width[E constraints.Integer]() int {
	w := 0
	for v := E(1); v != 0; v <<= 1 {
		w++
	}
	return w
}

// signed reports whether E is a signed type: only there does decrementing
// zero produce a value below zero.
func signed[E constraints.Integer]() bool {
	return E(0)-1 < E(0)
}
