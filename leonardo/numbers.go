package leonardo

// References:
// * https://oeis.org/A001595
// * E. W. Dijkstra, "Smoothsort, an alternative for sorting in situ", EWD796a

import "math"

// numbers holds every Leonardo number representable as a non-negative int,
// precomputed once at init. The sequence is
//
//	L(0) = 1, L(1) = 1, L(k) = L(k-1) + L(k-2) + 1
//
// giving 1, 1, 3, 5, 9, 15, 25, 41, 67, 109, ...
//
// On a 64 bit platform the table has 90 entries, the largest being
// L(89) = 5760134388741632239. Any slice addressable by an int therefore
// decomposes into trees drawn from this table with room to spare.
var numbers = leonardoNumbers()

func leonardoNumbers() []int {
	nums := []int{1, 1}
	for {
		a, b := nums[len(nums)-2], nums[len(nums)-1]
		// the +1 in the recurrence is what breaks the Fibonacci analogy, and
		// also what forces the explicit overflow guard here.
		if a+1 > math.MaxInt-b {
			return nums
		}
		nums = append(nums, a+b+1)
	}
}

// Number returns the k'th Leonardo number L(k). k must be in
// [0, MaxOrder()], out of range panics.
func Number(k int) int {
	return numbers[k]
}

// MaxOrder returns the largest k for which Number(k) does not overflow an
// int on this platform.
func MaxOrder() int {
	return len(numbers) - 1
}
