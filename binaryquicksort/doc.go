package binaryquicksort

/*

# Binary quicksort (radix exchange)

Most significant digit radix sort with one-bit digits. Each round partitions
the range in place around a single bit position, elements with the bit clear
to the front and elements with it set to the back, using the same two-pointer
exchange scan quicksort runs around a pivot. The two blocks are then sorted
independently on the next bit down, and a range is finished when it runs out
of bits or holds fewer than two elements.

There are no comparisons anywhere. Ordering falls out of the positional
meaning of the bits, which is why the element type is constrained to the
fixed-width integers rather than to a comparator.

## Cost shape

Every element is inspected at most once per bit, so the whole sort is
O(n * w) for w-bit elements. Each round iterates on the larger block and
recurses only on the smaller, so at most lg(n) frames are live at once.
Unlike pivot quicksort there is no adversarial input: the split points are
dictated by the data's bits, not by a pivot guess, and the bound holds
unconditionally.

## Signed inputs

Two's complement puts the sign bit at the top, so a pure bit pass leaves
negative values correctly ordered among themselves but parked after the
non-negatives. A single rotation afterwards swings the negative block to the
front. Width and signedness of the element type are discovered
arithmetically, so one code path serves all the sized integer kinds plus
int, uint and uintptr.

Like the rest of the module's sorts this one is not stable, though with
integer elements equal values are indistinguishable anyway.

*/
