package smoothsort

/*

# Smoothsort over the leonardo primitives

This package is the thin, opinionated surface over the leonardo package: it
composes the forest primitives into Dijkstra's smoothsort, an in-place
comparison sort that is O(n log n) in the worst case and approaches O(n) as
the input approaches being sorted.

It follows the same split as the rest of the module:

- the leonardo package owns the structure and its invariants
- this package owns policy: when to grow, when to shrink, nothing else
- no allocation beyond a few words of shape bookkeeping on the stack

## How the sort falls out of the structure

The whole algorithm is two sweeps over the slice:

 1. Grow a Leonardo forest rightwards across the slice, one element per
    step. After step i the prefix data[:i+1] is a forest whose rightmost
    root is its maximum.
 2. Shrink it back to nothing. The forest's maximum is already sitting at
    the end of the covered range, so each step just excludes it and
    repairs the trees its removal exposes.

Every element is dequeued exactly at its final position, largest last, so
when the forest is gone the slice is sorted.

On sorted input the grow sweep never moves an element and the shrink sweep
finds every exposed root already in place, which is where the linear best
case comes from. The price relative to heapsort's simpler binary structure
is heavier constant-factor bookkeeping; see the benchmarks.

Smoothsort is not stable: the forest reorders equal elements on their way
through, as any heap based sort does.

*/
