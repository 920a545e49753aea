package introsort

// Partitioning loosely follows Bentley and McIlroy, "Engineering a Sort
// Function", SP&E November 1993.

// medianOfThree moves the median of data[m0], data[m1], data[m2] into
// data[m1].
func medianOfThree[E any](data []E, m1, m0, m2 int, less func(a, b E) bool) {
	if less(data[m1], data[m0]) {
		data[m1], data[m0] = data[m0], data[m1]
	}
	// data[m0] <= data[m1]
	if less(data[m2], data[m1]) {
		data[m2], data[m1] = data[m1], data[m2]
		// data[m0] <= data[m2] && data[m1] < data[m2]
		if less(data[m1], data[m0]) {
			data[m1], data[m0] = data[m0], data[m1]
		}
	}
	// now data[m0] <= data[m1] <= data[m2]
}

// doPivot partitions data[lo:hi] around a pivot chosen by median of three,
// or the Tukey ninther over nine samples for ranges above forty elements.
// It returns midlo, midhi such that data[lo:midlo] <= pivot,
// data[midlo:midhi] == pivot and data[midhi:hi] >= pivot, with the equal
// run never empty; carving that run out is what keeps heavily duplicated
// input from going quadratic.
func doPivot[E any](data []E, lo, hi int, less func(a, b E) bool) (midlo, midhi int) {
	m := int(uint(lo+hi) >> 1) // written this way to avoid overflow
	if hi-lo > 40 {
		s := (hi - lo) / 8
		medianOfThree(data, lo, lo+s, lo+2*s, less)
		medianOfThree(data, m, m-s, m+s, less)
		medianOfThree(data, hi-1, hi-1-s, hi-1-2*s, less)
	}
	medianOfThree(data, lo, m, hi-1, less)

	// Invariants are:
	//	data[lo] = pivot
	//	data[lo < i < a] < pivot
	//	data[a <= i < b] <= pivot
	//	data[b <= i < c] unexamined
	//	data[c <= i < hi-1] > pivot
	//	data[hi-1] >= pivot
	pivot := lo
	a, c := lo+1, hi-1

	for ; a < c && less(data[a], data[pivot]); a++ {
	}
	b := a
	for {
		for ; b < c && !less(data[pivot], data[b]); b++ { // data[b] <= pivot
		}
		for ; b < c && less(data[pivot], data[c-1]); c-- { // data[c-1] > pivot
		}
		if b >= c {
			break
		}
		// data[b] > pivot; data[c-1] <= pivot
		data[b], data[c-1] = data[c-1], data[b]
		b++
		c--
	}
	// If hi-c < 3 then there are duplicates (by property of median of
	// nine). Be a bit more conservative and set the border to 5.
	protect := hi-c < 5
	if !protect && hi-c < (hi-lo)/4 {
		// Test some points for equality to the pivot.
		dups := 0
		if !less(data[pivot], data[hi-1]) { // data[hi-1] = pivot
			data[c], data[hi-1] = data[hi-1], data[c]
			c++
			dups++
		}
		if !less(data[b-1], data[pivot]) { // data[b-1] = pivot
			b--
			dups++
		}
		// m-lo = (hi-lo)/2 > 6
		// b-lo > (hi-lo)*3/4-1 > 8
		// ==> m < b ==> data[m] <= pivot
		if !less(data[m], data[pivot]) { // data[m] = pivot
			data[m], data[b-1] = data[b-1], data[m]
			b--
			dups++
		}
		// If at least 2 points are equal to the pivot, assume a skewed
		// distribution with many duplicates.
		protect = dups > 1
	}
	if protect {
		// Add invariant:
		//	data[a <= i < b] unexamined
		//	data[b <= i < c] = pivot
		for {
			for ; a < b && !less(data[b-1], data[pivot]); b-- { // data[b] == pivot
			}
			for ; a < b && less(data[a], data[pivot]); a++ { // data[a] < pivot
			}
			if a >= b {
				break
			}
			// data[a] == pivot; data[b-1] < pivot
			data[a], data[b-1] = data[b-1], data[a]
			a++
			b--
		}
	}
	// Swap the pivot into the middle.
	data[pivot], data[b-1] = data[b-1], data[pivot]
	return b - 1, c
}
