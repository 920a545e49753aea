package cartesiantreesort

/*

# Cartesian tree sort

Two phases: build the min-Cartesian tree of the input, then stream it back
out in heap order.

The Cartesian tree of a sequence is the unique binary tree whose inorder
walk reproduces the sequence and whose values are min-heap ordered. It is
built in one left-to-right pass with a stack of the tree's right spine: a
new element pops the spine until it finds a strictly smaller value to hang
from, and adopts the popped chain as its left subtree. Every node enters
and leaves the spine at most once, so construction is O(n) with at most
two comparisons per element amortized.

Extraction keeps a binary min-heap of the ready nodes, the ones whose
ancestors have all been emitted. The remaining elements always partition
into the subtrees queued there, and each subtree's minimum is its root by
the heap order of the tree, so popping the heap always yields the global
minimum of what is left. Emitting a node makes its children ready.

## Why bother with the tree

The heap never outgrows the widest frontier the extraction walk exposes,
and on orderly input that frontier is tiny: sorted input builds a pure
right path and reverse-sorted input a pure left path, both of which keep
the heap at exactly one entry and the whole sort at O(n). Fully shuffled
input degrades gracefully to the usual O(n log n). The price is the O(n)
node arena, which makes this the one sort in the module that is not in
place; it earns its keep as the adaptive baseline the in-place sorts are
compared against.

Not stable: the heap reorders equal elements on their way through.

*/
