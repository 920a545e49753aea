package leonardo

import (
	"fmt"
	"strings"
)

// debug utilities

// forestStringer renders the forest over data[:end] one tree per line,
// largest first, eg for a 13 element forest:
//
//	L4[0:9) root=8 value=20
//	L2[9:12) root=11 value=22
//	L1[12:13) root=12 value=25
func forestStringer[E any](data []E, end int, s Shape) string {
	var lines []string

	root := end - 1
	order := s.smallest
	remaining := s.Size()
	for remaining > 0 {
		for !s.Has(order) {
			order++
		}
		n := Number(order)
		lines = append(lines, fmt.Sprintf("L%d[%d:%d) root=%d value=%v", order, root-n+1, root+1, root, data[root]))
		root -= n
		remaining -= n
		order++
	}

	// The walk produced the trees right to left; the printed form reads
	// better left to right.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

// treeStringer renders a single order k tree rooted at root with one node
// per line, children indented beneath their parent.
func treeStringer[E any](data []E, root, k int, depth int) string {
	line := fmt.Sprintf("%s%d: %v", strings.Repeat("  ", depth), root, data[root])
	if k <= 1 {
		return line
	}
	return strings.Join([]string{
		line,
		treeStringer(data, FirstChild(root, k), k-1, depth+1),
		treeStringer(data, SecondChild(root), k-2, depth+1),
	}, "\n")
}
