package sorttest

// Counter wraps a comparator and counts how many times it is consulted.
// The adaptivity claims of the sorts are statements about comparison
// counts, so the tests measure them rather than wall time.
type Counter[E any] struct {
	N    int64
	less func(a, b E) bool
}

func NewCounter[E any](less func(a, b E) bool) *Counter[E] {
	return &Counter[E]{less: less}
}

// Less is the counting comparator; pass it where a less function is
// expected and read N afterwards.
func (c *Counter[E]) Less(a, b E) bool {
	c.N++
	return c.less(a, b)
}

// Reset zeroes the count so one counter can serve several measurements.
func (c *Counter[E]) Reset() {
	c.N = 0
}
