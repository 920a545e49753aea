package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/richiks/go-sorting/binaryquicksort"
	"github.com/richiks/go-sorting/cartesiantreesort"
	"github.com/richiks/go-sorting/introsort"
	"github.com/richiks/go-sorting/leonardo"
	"github.com/richiks/go-sorting/smoothsort"
)

// algorithm is one sort behind the uniform comparator calling convention.
// The radix sort takes no comparator, so its wrapper ignores the less
// function and its runStrings is nil.
type algorithm struct {
	name       string
	comparison bool
	run        func(data []int, less func(a, b int) bool)
	runStrings func(data []string, less func(a, b string) bool)
}

var algorithms = []algorithm{
	{"smoothsort", true, smoothsort.SortFunc[int], smoothsort.SortFunc[string]},
	{"introsort", true, introsort.SortFunc[int], introsort.SortFunc[string]},
	{"cartesiantreesort", true, cartesiantreesort.SortFunc[int], cartesiantreesort.SortFunc[string]},
	{"binaryquicksort", false, func(data []int, _ func(a, b int) bool) { binaryquicksort.Sort(data) }, nil},
}

func findAlgorithm(name string) (algorithm, error) {
	for _, alg := range algorithms {
		if alg.name == name {
			return alg, nil
		}
	}
	names := make([]string, len(algorithms))
	for i, alg := range algorithms {
		names[i] = alg.name
	}
	return algorithm{}, fmt.Errorf("unknown algorithm %q (have %s)", name, strings.Join(names, ", "))
}

// measurement is one timed sort. comparisons is -1 when the algorithm does
// not consult a comparator.
type measurement struct {
	algorithm   string
	pattern     string
	n           int
	elapsed     time.Duration
	comparisons int64
}

// measure runs alg against copies of input the given number of times and
// keeps the fastest run. The comparison count is identical across runs, only
// the clock varies.
func measure(alg algorithm, pattern string, input []int, runs int) (measurement, error) {
	if runs < 1 {
		runs = 1
	}
	best := measurement{algorithm: alg.name, pattern: pattern, n: len(input), comparisons: -1}

	data := make([]int, len(input))
	for i := 0; i < runs; i++ {
		copy(data, input)
		var comparisons int64
		less := func(a, b int) bool {
			comparisons++
			return a < b
		}

		start := time.Now()
		alg.run(data, less)
		elapsed := time.Since(start)

		if i == 0 || elapsed < best.elapsed {
			best.elapsed = elapsed
			if alg.comparison {
				best.comparisons = comparisons
			}
		}
	}

	if !slices.IsSorted(data) {
		return measurement{}, fmt.Errorf("%s left the data unsorted", alg.name)
	}
	return best, nil
}

func printMeasurements(w io.Writer, ms []measurement) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tPATTERN\tN\tELAPSED\tNS/ELEM\tCOMPARISONS")
	for _, m := range ms {
		perElem := 0.0
		if m.n > 0 {
			perElem = float64(m.elapsed.Nanoseconds()) / float64(m.n)
		}
		comparisons := "-"
		if m.comparisons >= 0 {
			comparisons = humanize.Comma(m.comparisons)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			m.algorithm, m.pattern, humanize.Comma(int64(m.n)),
			m.elapsed.Round(time.Microsecond), perElem, comparisons)
	}
	tw.Flush()
}

// verifyGrowPhase builds the Leonardo forest over a copy of input exactly as
// smoothsort's grow sweep does, then checks the forest invariants before any
// element is dequeued.
func verifyGrowPhase(input []int) error {
	data := append([]int(nil), input...)
	less := func(a, b int) bool { return a < b }

	var shape leonardo.Shape
	for next := range data {
		leonardo.Add(data, next, &shape, less)
	}
	return leonardo.Verify(data, len(data), shape, less)
}
