package leonardo

/*

# Motivation for the choice of Leonardo heaps

A binary max-heap gives an in-place priority queue, but it is oblivious to
any order already present in its input: heapsort does Theta(n log n)
comparisons on sorted data just as it does on random data. The Leonardo
heap is the structure Dijkstra designed for smoothsort to fix exactly that.
It has the properties we need for an adaptive in-place sort:

 1. It is a flat, implicit structure. The heap is a reordering of the input
    slice plus a few words of bookkeeping; there are no nodes, pointers or
    auxiliary arrays, so the sort built on it is genuinely in place.
 2. It grows and shrinks at the right hand end only, one element at a time,
    in amortised constant shape bookkeeping. Growing the heap across the
    whole slice and then shrinking it back again is the entire sort.
 3. Its maximum is always the last element of the covered range. Dequeuing
    the maximum into its final position is therefore free; only the repair
    of what it leaves behind costs anything.
 4. On input that is already ordered, both the grow and the shrink phases
    degenerate to a linear scan. The closer the input is to sorted, the
    closer the whole sort gets to O(n).

All of this is achieved mostly due to one simple property of the Leonardo
numbers: any positive n can be written as a sum of O(log n) distinct
Leonardo numbers. The forest of trees with exactly those sizes, packed left
to right in decreasing size order, tiles the slice perfectly no matter how
it grows or shrinks.

# Structure

The Leonardo numbers follow a Fibonacci-like recurrence with a +1 term:

	L(0) = 1, L(1) = 1, L(k) = L(k-1) + L(k-2) + 1

giving 1, 1, 3, 5, 9, 15, 25, 41, 67, 109, ... An order k tree has exactly
L(k) nodes: a root on top of an order k-1 first child and an order k-2
second child. Orders 0 and 1 are singletons. The +1 in the recurrence is
the root, and it is what makes the merge step of the grow phase work: two
adjacent trees of consecutive orders plus one new element are exactly an
order k+2 tree.

A tree is stored in its slice range as first child, then second child, then
root. An order 3 tree spanning positions 0..4 looks like

	      4
	    /   \
	   2     3
	  / \
	 0   1

with the order 2 first child in 0..2 and the order 1 second child at 3.
From the root, the second child is always at root-1 and the first child at
root-1-L(k-2). As with any implicit layout, navigation is pure index
arithmetic: nothing is materialized, and the same couple of subtractions
work at every scale.

A forest over 13 elements decomposes as 13 = 9+3+1, so it carries an order
4 tree, an order 2 tree, and an order 1 singleton:

	        8
	     /     \
	    4       7        11
	  /   \    / \      /  \     12
	 2     3  5   6    9    10
	/ \
	0  1

The roots 8, 11, 12 form a chain that the rest of the package calls the
root run. Two invariants hold between operations: every tree is max-heap
ordered within itself, and the roots in the run ascend left to right. The
second invariant is what pins the global maximum to the rightmost position.
During the grow phase the second invariant is deliberately allowed to lapse
for trees that are not yet at their final size, see add.go.

# Shape encoding

Which orders are present is all the bookkeeping the forest needs, and it
lives in a Shape: a bitvector of present orders kept shifted down against
the smallest order, plus that smallest order. Growing and shrinking the
forest are then a handful of bit operations, see shape.go. The vector is
two words because orders run to MaxOrder() = 89 on a 64 bit platform.

# Approach, Sources & Background

The implementation follows Dijkstra's description of smoothsort, with the
bitvector encoding of the tree run rather than his running concatenation of
order codes.

* E. W. Dijkstra, "Smoothsort, an alternative for sorting in situ", EWD796a,
  https://www.cs.utexas.edu/users/EWD/ewd07xx/EWD796a.PDF
* Hertel, "Smoothsort's behavior on presorted sequences", Information
  Processing Letters 16, for the adaptivity analysis
* https://oeis.org/A001595 for the Leonardo numbers themselves

The functions in this package are the primitive layer: they maintain and
repair the forest but impose no policy about when to grow or shrink it.
The smoothsort package composes them into the actual sort. The primitives
place a burden of knowledge on the caller, in the interests of simplicity
and efficiency; see the remarks on navigate.go. The opinionated, safe
surface is the sort itself.

*/
