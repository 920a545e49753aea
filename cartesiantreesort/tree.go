package cartesiantreesort

// node is one element of a Cartesian tree. Nodes live in a flat arena
// indexed by input position and link to each other by index, with -1 for an
// absent child. Each node owns a copy of its value: extraction writes back
// into the input slice while nodes are still queued, so the tree cannot
// alias it.
type node[E any] struct {
	value E
	left  int
	right int
}

// buildTree constructs the min-Cartesian tree of data under less and returns
// the node arena and the root's index, -1 when data is empty. The tree's
// inorder walk reproduces data and every node's value is less than or equal
// to the values in its subtrees.
//
// One pass, with a stack of the indices on the tree's right spine, deepest
// at the top. Each new element pops the spine until the top is strictly
// smaller, adopts the popped chain as its left child (the chain's top links
// to the rest through right pointers, so one link suffices), and hangs off
// the surviving top as its right child. An element that empties the spine is
// the minimum so far and becomes the root, with the old tree to its left.
func buildTree[E any](data []E, less func(a, b E) bool) ([]node[E], int) {
	nodes := make([]node[E], len(data))
	root := -1

	var spine []int
	for i, v := range data {
		nodes[i] = node[E]{value: v, left: -1, right: -1}

		for len(spine) > 0 && !less(nodes[spine[len(spine)-1]].value, v) {
			spine = spine[:len(spine)-1]
		}

		if len(spine) == 0 {
			nodes[i].left = root
			root = i
		} else {
			parent := spine[len(spine)-1]
			nodes[i].left = nodes[parent].right
			nodes[parent].right = i
		}
		spine = append(spine, i)
	}
	return nodes, root
}
