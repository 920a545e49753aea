package binaryquicksort

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// partitionAtBit rearranges data so that every element with the given bit
// clear precedes every element with it set, and returns the index of the
// first element of the set block (len(data) when the bit is clear
// everywhere). Order within the two blocks is not preserved.
//
// lo sits one past the prefix known to have the bit clear, hi on the suffix
// known to have it set. The bounds march toward each other until they meet,
// swapping whenever both scans stall on a mismatched pair.
func partitionAtBit[E constraints.Integer](data []E, bit int) int {
	mask := E(1) << bit

	lo, hi := 0, len(data)
	for {
		for lo < hi && data[lo]&mask == 0 {
			lo++
		}
		if lo == hi {
			return lo
		}

		// hi is an exclusive bound, so it steps before it reads.
		hi--
		for lo < hi && data[hi]&mask != 0 {
			hi--
		}
		if lo == hi {
			return lo
		}

		data[lo], data[hi] = data[hi], data[lo]
	}
}

// rotateNegatives rotates the trailing block of negative values, if any, to
// the front of data. The rotation preserves the order inside both blocks,
// so after a full most-significant-bit-first pass over a signed type it is
// the only repair needed: the sign bit mis-sorts negatives after the
// non-negatives, but every block is internally ascending already.
func rotateNegatives[E constraints.Integer](data []E) {
	for i, v := range data {
		if v < 0 {
			slices.Reverse(data[:i])
			slices.Reverse(data[i:])
			slices.Reverse(data)
			return
		}
	}
}
