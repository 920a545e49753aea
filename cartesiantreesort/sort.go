package cartesiantreesort

import (
	"golang.org/x/exp/constraints"
)

// Sort sorts data into ascending natural order.
func Sort[E constraints.Ordered](data []E) {
	SortFunc(data, func(a, b E) bool { return a < b })
}

// SortFunc sorts data into ascending order under less, which must be a
// strict weak ordering. It is not stable, and unlike the module's other
// sorts it allocates O(n) working memory for the tree.
func SortFunc[E any](data []E, less func(a, b E) bool) {
	if len(data) < 2 {
		return
	}

	nodes, root := buildTree(data, less)

	// The ready set: nodes whose ancestors have all been emitted, ordered by
	// value. The subtrees queued here are disjoint and cover everything not
	// yet emitted, so the heap never outgrows (n+1)/2 entries and its top is
	// always the global minimum of what remains.
	pq := newMinHeap((len(data)+1)/2, func(a, b int) bool {
		return less(nodes[a].value, nodes[b].value)
	})
	pq.Push(root)

	for i := range data {
		curr := pq.Pop()
		data[i] = nodes[curr].value
		if l := nodes[curr].left; l >= 0 {
			pq.Push(l)
		}
		if r := nodes[curr].right; r >= 0 {
			pq.Push(r)
		}
	}
}
