package sorttest

import (
	"github.com/google/uuid"
)

// Record is a realistic composite element for exercising the SortFunc
// surfaces: a payload that moves with the key, and an ID that makes every
// element distinguishable even when keys collide.
type Record struct {
	ID   uuid.UUID
	Name string
	Size int64
}

// Ascending returns 0..n-1, the best case for any adaptive sort.
func (c *TestContext) Ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Descending returns n-1..0.
func (c *TestContext) Descending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - 1 - i
	}
	return data
}

// Perm returns a shuffled permutation of 0..n-1. Every element is distinct,
// so the fully sorted result is exactly Ascending(n).
func (c *TestContext) Perm(n int) []int {
	return c.Rand.Perm(n)
}

// Ints returns n values drawn uniformly from [0, bound), so duplicates are
// expected for bound < n.
func (c *TestContext) Ints(n, bound int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = c.Rand.Intn(bound)
	}
	return data
}

// Uint64s returns n uniform values over the full uint64 range, which
// exercises values with the top bit set.
func (c *TestContext) Uint64s(n int) []uint64 {
	data := make([]uint64, n)
	for i := range data {
		data[i] = c.Rand.Uint64()
	}
	return data
}

// NearlySorted returns 0..n-1 with the given number of random adjacent
// transpositions applied, the standard model for almost-ordered input.
func (c *TestContext) NearlySorted(n, swaps int) []int {
	data := c.Ascending(n)
	if n < 2 {
		return data
	}
	for s := 0; s < swaps; s++ {
		i := c.Rand.Intn(n - 1)
		data[i], data[i+1] = data[i+1], data[i]
	}
	return data
}

// Sawtooth returns n values cycling 0..period-1, a pattern with long
// pre-sorted runs and heavy duplication.
func (c *TestContext) Sawtooth(n, period int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i % period
	}
	return data
}

// Words returns n fake words; string comparisons route through the same
// generic machinery as ints but cost more, and collide often.
func (c *TestContext) Words(n int) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = c.Faker.Word()
	}
	return data
}

// Records returns n fake records with distinct IDs and colliding names.
func (c *TestContext) Records(n int) []Record {
	data := make([]Record, n)
	for i := range data {
		id, err := uuid.NewRandomFromReader(c.Rand)
		if err != nil {
			c.T.Fatalf("failed to generate record id: %v", err)
		}
		data[i] = Record{
			ID:   id,
			Name: c.Faker.FirstName(),
			Size: int64(c.Rand.Intn(1 << 20)),
		}
	}
	return data
}
