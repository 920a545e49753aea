package leonardo

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemoveKAT25Shapes tests that shrinking the forest walks the known
// decomposition sequence backwards: after removing down to m elements the
// shape is the same one the build phase had at m elements.
func TestRemoveKAT25Shapes(t *testing.T) {
	n := len(KAT25Shapes)
	r := rand.New(rand.NewSource(52))
	data := r.Perm(n)

	var s Shape
	for next := range data {
		Add(data, next, &s, intLess)
	}

	for end := n; end > 1; end-- {
		Remove(data, end, &s, intLess)
		assert.Equal(t, KAT25Shapes[end-2], s.String(), "after shrinking to %d elements", end-1)
		assert.Equal(t, end-1, s.Size())
	}
	Remove(data, 1, &s, intLess)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Size())
}

// TestRemoveKeepsInvariants tests that every dequeue leaves the remaining
// forest verifiable and the removed element both at its final position and
// no smaller than everything still in the forest.
func TestRemoveKeepsInvariants(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 13, 15, 25, 60} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(n)))
			data := r.Perm(n)

			var s Shape
			for next := range data {
				Add(data, next, &s, intLess)
			}

			for end := n; end > 0; end-- {
				Remove(data, end, &s, intLess)
				require.NoError(t, Verify(data, end-1, s, intLess),
					"forest after shrinking to %d:\n%s", end-1, forestStringer(data, end-1, s))
				for i := 0; i < end-1; i++ {
					require.LessOrEqual(t, data[i], data[end-1],
						"element %d left behind exceeds dequeued max", i)
				}
			}
		})
	}
}

// TestAddRemoveSorts drives the full engine cycle, n additions then n
// removals, and checks the result against the standard library sort of the
// same input.
func TestAddRemoveSorts(t *testing.T) {
	type args struct {
		data []int
	}
	r := rand.New(rand.NewSource(3))
	dups := make([]int, 100)
	for i := range dups {
		dups[i] = r.Intn(10)
	}
	tests := []struct {
		name string
		args args
	}{
		{"empty", args{nil}},
		{"single", args{[]int{1}}},
		{"two unsorted", args{[]int{2, 1}}},
		{"thirteen shuffled", args{r.Perm(13)}},
		{"twenty five shuffled", args{r.Perm(25)}},
		{"already sorted", args{ascendingInts(50)}},
		{"reverse sorted", args{descendingInts(50)}},
		{"many duplicates", args{dups}},
		{"large shuffled", args{r.Perm(1000)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]int(nil), tt.args.data...)
			want := append([]int(nil), tt.args.data...)
			sort.Ints(want)

			var s Shape
			for next := range data {
				Add(data, next, &s, intLess)
			}
			for end := len(data); end > 0; end-- {
				Remove(data, end, &s, intLess)
			}
			assert.Equal(t, want, data)
		})
	}
}
