package cartesiantreesort

// minHeap is a slice-backed binary min-heap: items[0] is the minimum and the
// children of i sit at 2i+1 and 2i+2. Only the two operations the extraction
// walk needs are provided.
type minHeap[E any] struct {
	items []E
	less  func(a, b E) bool
}

func newMinHeap[E any](capacity int, less func(a, b E) bool) *minHeap[E] {
	return &minHeap[E]{items: make([]E, 0, capacity), less: less}
}

func (h *minHeap[E]) Len() int { return len(h.items) }

// Push adds x, O(log n).
func (h *minHeap[E]) Push(x E) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum, O(log n). The heap must not be empty.
func (h *minHeap[E]) Pop() E {
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	h.down(0, n)
	x := h.items[n]
	h.items = h.items[:n]
	return x
}

func (h *minHeap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

func (h *minHeap[E]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2], h.items[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
