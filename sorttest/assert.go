package sorttest

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSorted fails the test unless data is in ascending order under
// less, reporting the first out of order pair.
func RequireSorted[E any](t testing.TB, data []E, less func(a, b E) bool) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			t.Fatalf("data not sorted: element %d (%v) < element %d (%v)", i, data[i], i-1, data[i-1])
		}
	}
}

// RequireMatchesReference fails the test unless got is exactly the input
// sorted by the standard library under the same ordering. This checks both
// the ordering and that no element was lost, duplicated or altered. Only
// meaningful when elements that compare equal are interchangeable, which
// holds for all the generators in this package except name-keyed Records;
// sort those by a total order.
func RequireMatchesReference[E any](t testing.TB, got, input []E, less func(a, b E) bool) {
	t.Helper()
	want := append([]E(nil), input...)
	slices.SortStableFunc(want, func(a, b E) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
	require.Equal(t, want, got)
}
