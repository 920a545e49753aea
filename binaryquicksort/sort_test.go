package binaryquicksort

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/richiks/go-sorting/sorttest"
)

func TestSortDegenerateRanges(t *testing.T) {
	type args struct {
		data []int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"nil slice", args{nil}, nil},
		{"empty slice", args{[]int{}}, []int{}},
		{"single element", args{[]int{3}}, []int{3}},
		{"swapped pair", args{[]int{2, 1}}, []int{1, 2}},
		{"negative pair", args{[]int{1, -1}}, []int{-1, 1}},
		{"equal pair", args{[]int{7, 7}}, []int{7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.args.data)
			assert.Equal(t, tt.want, tt.args.data)
		})
	}
}

func TestSortPinnedValues(t *testing.T) {
	t.Run("five element scramble", func(t *testing.T) {
		data := []int{5, 3, 4, 1, 2}
		Sort(data)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
	})
	t.Run("all equal", func(t *testing.T) {
		data := []int{1, 1, 1, 1}
		Sort(data)
		assert.Equal(t, []int{1, 1, 1, 1}, data)
	})
	t.Run("int8 extremes", func(t *testing.T) {
		data := []int8{math.MaxInt8, math.MinInt8, 0, -1, 1, math.MinInt8, math.MaxInt8}
		Sort(data)
		assert.Equal(t, []int8{math.MinInt8, math.MinInt8, -1, 0, 1, math.MaxInt8, math.MaxInt8}, data)
	})
	t.Run("int64 extremes", func(t *testing.T) {
		data := []int64{math.MaxInt64, math.MinInt64, 0, -1, 1}
		Sort(data)
		assert.Equal(t, []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}, data)
	})
	t.Run("uint8 extremes", func(t *testing.T) {
		data := []uint8{math.MaxUint8, 0, 128, 127, 1}
		Sort(data)
		assert.Equal(t, []uint8{0, 1, 127, 128, math.MaxUint8}, data)
	})
	t.Run("uint64 extremes", func(t *testing.T) {
		data := []uint64{math.MaxUint64, 0, 1 << 63, (1 << 63) - 1, 1}
		Sort(data)
		assert.Equal(t, []uint64{0, 1, (1 << 63) - 1, 1 << 63, math.MaxUint64}, data)
	})
	t.Run("all negative", func(t *testing.T) {
		data := []int32{-1, -100, -7}
		Sort(data)
		assert.Equal(t, []int32{-100, -7, -1}, data)
	})
}

func TestSortMatchesReference(t *testing.T) {
	c := sorttest.NewTestContext(t, sorttest.TestConfig{Seed: 812})

	inputs := map[string][]int{
		"ascending":        c.Ascending(500),
		"descending":       c.Descending(500),
		"shuffled":         c.Perm(500),
		"nearly sorted":    c.NearlySorted(500, 16),
		"heavy duplicates": c.Ints(500, 7),
		"all equal":        c.Ints(500, 1),
		"sawtooth":         c.Sawtooth(500, 31),
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			data := append([]int(nil), input...)
			Sort(data)
			sorttest.RequireMatchesReference(t, data, input, func(a, b int) bool { return a < b })
		})
	}
}

// testSortFullRange drives Sort over n values drawn uniformly from E's whole
// range, truncated from 64 random bits, so signed types see plenty of
// negatives and every width sees its top bit set.
func testSortFullRange[E constraints.Integer](t *testing.T, c sorttest.TestContext, n int) {
	t.Helper()
	input := make([]E, n)
	for i := range input {
		input[i] = E(c.Rand.Uint64())
	}
	data := append([]E(nil), input...)
	Sort(data)
	sorttest.RequireMatchesReference(t, data, input, func(a, b E) bool { return a < b })
}

func TestSortAllWidths(t *testing.T) {
	c := sorttest.NewTestContext(t, sorttest.TestConfig{Seed: 813})

	const n = 400
	t.Run("int8", func(t *testing.T) { testSortFullRange[int8](t, c, n) })
	t.Run("int16", func(t *testing.T) { testSortFullRange[int16](t, c, n) })
	t.Run("int32", func(t *testing.T) { testSortFullRange[int32](t, c, n) })
	t.Run("int64", func(t *testing.T) { testSortFullRange[int64](t, c, n) })
	t.Run("int", func(t *testing.T) { testSortFullRange[int](t, c, n) })
	t.Run("uint8", func(t *testing.T) { testSortFullRange[uint8](t, c, n) })
	t.Run("uint16", func(t *testing.T) { testSortFullRange[uint16](t, c, n) })
	t.Run("uint32", func(t *testing.T) { testSortFullRange[uint32](t, c, n) })
	t.Run("uint64", func(t *testing.T) { testSortFullRange[uint64](t, c, n) })
	t.Run("uint", func(t *testing.T) { testSortFullRange[uint](t, c, n) })
	t.Run("uintptr", func(t *testing.T) { testSortFullRange[uintptr](t, c, n) })
}

func TestSortLengthSweep(t *testing.T) {
	c := sorttest.NewTestContext(t, sorttest.TestConfig{Seed: 814})

	for n := 0; n <= 64; n++ {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			testSortFullRange[int16](t, c, n)
		})
	}
}

func TestPartitionAtBit(t *testing.T) {
	type args struct {
		data []uint8
		bit  int
	}
	tests := []struct {
		name     string
		args     args
		want     int
		wantData []uint8
	}{
		{"splits on bit 1", args{[]uint8{2, 1, 3, 0}, 1}, 2, []uint8{0, 1, 3, 2}},
		{"bit clear everywhere", args{[]uint8{1, 0, 1, 0}, 3}, 4, []uint8{1, 0, 1, 0}},
		{"bit set everywhere", args{[]uint8{8, 9, 12}, 3}, 0, []uint8{8, 9, 12}},
		{"empty", args{[]uint8{}, 0}, 0, []uint8{}},
		{"single clear", args{[]uint8{4}, 0}, 1, []uint8{4}},
		{"single set", args{[]uint8{5}, 0}, 0, []uint8{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partitionAtBit(tt.args.data, tt.args.bit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantData, tt.args.data)
		})
	}

	t.Run("random block properties", func(t *testing.T) {
		c := sorttest.NewTestContext(t, sorttest.TestConfig{Seed: 815})

		input := make([]uint16, 300)
		for i := range input {
			input[i] = uint16(c.Rand.Uint64())
		}
		data := append([]uint16(nil), input...)

		const bit = 7
		p := partitionAtBit(data, bit)
		for i, v := range data {
			if i < p {
				require.Zero(t, v&(1<<bit), "element %d (%#x) before the pivot has bit %d set", i, v, bit)
			} else {
				require.NotZero(t, v&(1<<bit), "element %d (%#x) after the pivot has bit %d clear", i, v, bit)
			}
		}

		// Same multiset, just rearranged.
		wantSorted := append([]uint16(nil), input...)
		gotSorted := append([]uint16(nil), data...)
		slices.Sort(wantSorted)
		slices.Sort(gotSorted)
		require.Equal(t, wantSorted, gotSorted)
	})
}

func TestRotateNegatives(t *testing.T) {
	type args struct {
		data []int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"negatives trail", args{[]int{5, 7, 9, -3, -1}}, []int{-3, -1, 5, 7, 9}},
		{"no negatives", args{[]int{1, 2, 3}}, []int{1, 2, 3}},
		{"all negative", args{[]int{-5, -2, -1}}, []int{-5, -2, -1}},
		{"single negative at end", args{[]int{0, -1}}, []int{-1, 0}},
		{"empty", args{[]int{}}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rotateNegatives(tt.args.data)
			assert.Equal(t, tt.want, tt.args.data)
		})
	}
}

func TestWidthAndSigned(t *testing.T) {
	assert.Equal(t, 8, width[int8]())
	assert.Equal(t, 16, width[int16]())
	assert.Equal(t, 32, width[int32]())
	assert.Equal(t, 64, width[int64]())
	assert.Equal(t, 8, width[uint8]())
	assert.Equal(t, 16, width[uint16]())
	assert.Equal(t, 32, width[uint32]())
	assert.Equal(t, 64, width[uint64]())
	assert.Equal(t, bits.UintSize, width[int]())
	assert.Equal(t, bits.UintSize, width[uint]())

	assert.True(t, signed[int8]())
	assert.True(t, signed[int16]())
	assert.True(t, signed[int32]())
	assert.True(t, signed[int64]())
	assert.True(t, signed[int]())
	assert.False(t, signed[uint8]())
	assert.False(t, signed[uint16]())
	assert.False(t, signed[uint32]())
	assert.False(t, signed[uint64]())
	assert.False(t, signed[uint]())
	assert.False(t, signed[uintptr]())
}

func BenchmarkSort(b *testing.B) {
	c := sorttest.NewTestContext(b, sorttest.TestConfig{Seed: 3})

	const n = 1 << 12
	patterns := map[string][]uint64{
		"shuffled": c.Uint64s(n),
	}
	ascending := make([]uint64, n)
	for i := range ascending {
		ascending[i] = uint64(i)
	}
	patterns["ascending"] = ascending
	descending := make([]uint64, n)
	for i := range descending {
		descending[i] = uint64(n - 1 - i)
	}
	patterns["descending"] = descending

	for name, input := range patterns {
		b.Run(name, func(b *testing.B) {
			data := make([]uint64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, input)
				Sort(data)
			}
		})
	}
}
