package leonardo

// Known answer data for the forest shapes. Growing a forest one element at
// a time visits a fixed sequence of tree decompositions, whatever the
// element values; shrinking it visits the same sequence in reverse. The
// table below is that sequence for sizes 1 through 25, written in the
// Shape.String() form, largest tree first.
//
// A few worked entries:
//
//	size 13 = 9+3+1   -> L4+L2+L1
//	size 15 = 15      -> L5, adding the 15th element merges L4+L3
//	size 25 = 25      -> L6, the perfect tree spanning the whole range
var KAT25Shapes = []string{
	"L1",          // 1
	"L1+L0",       // 2
	"L2",          // 3
	"L2+L1",       // 4
	"L3",          // 5
	"L3+L1",       // 6
	"L3+L1+L0",    // 7
	"L3+L2",       // 8
	"L4",          // 9
	"L4+L1",       // 10
	"L4+L1+L0",    // 11
	"L4+L2",       // 12
	"L4+L2+L1",    // 13
	"L4+L3",       // 14
	"L5",          // 15
	"L5+L1",       // 16
	"L5+L1+L0",    // 17
	"L5+L2",       // 18
	"L5+L2+L1",    // 19
	"L5+L3",       // 20
	"L5+L3+L1",    // 21
	"L5+L3+L1+L0", // 22
	"L5+L3+L2",    // 23
	"L5+L4",       // 24
	"L6",          // 25
}
