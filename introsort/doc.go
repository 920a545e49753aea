package introsort

/*

# Introsort

Depth-limited quicksort with two escape hatches: ranges of twelve or fewer
elements go to insertion sort (after a single shell pass with gap six), and
any partition chain that exceeds 2*ceil(lg(n+1)) levels finishes under
heapsort. The depth bound is what turns quicksort's O(n^2) adversarial
worst case into a hard O(n log n) guarantee while keeping quicksort's
constants on everything ordinary.

Pivot selection follows Bentley & McIlroy, "Engineering a Sort Function":
median of three for modest ranges, the Tukey ninther (median of three
medians of three) above forty elements, plus the skewed-distribution
handling that keeps runs of duplicates from degrading the partition.

This is the module's general-purpose workhorse and the baseline the other
sorts are measured against. It is not stable and it is not adaptive: sorted
input gets no discount beyond what the pivot heuristics happen to find.

*/
