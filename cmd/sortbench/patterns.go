package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/richiks/go-sorting/introsort"
)

// patterns are the input distributions the measurement commands can
// generate. The names follow the sorttest generator catalogue so command
// line results read against the package benchmarks directly.
var patterns = map[string]func(r *rand.Rand, n int) []int{
	"ascending": func(r *rand.Rand, n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		return data
	},
	"descending": func(r *rand.Rand, n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = n - 1 - i
		}
		return data
	},
	"shuffled": func(r *rand.Rand, n int) []int {
		return r.Perm(n)
	},
	"nearly-sorted": func(r *rand.Rand, n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		for s := 0; s < n/100+1; s++ {
			if n < 2 {
				break
			}
			i := r.Intn(n - 1)
			data[i], data[i+1] = data[i+1], data[i]
		}
		return data
	},
	"sawtooth": func(r *rand.Rand, n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = i % 43
		}
		return data
	},
	"duplicates": func(r *rand.Rand, n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(7)
		}
		return data
	},
}

func generate(pattern string, seed int64, n int) ([]int, error) {
	gen, ok := patterns[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %s)", pattern, strings.Join(patternNames(), ", "))
	}
	return gen(rand.New(rand.NewSource(seed)), n), nil
}

func patternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	introsort.Sort(names)
	return names
}
