// Copyright 2026 go-classicsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench times the classic sorting algorithms on caller-supplied
// input and verifies each result is sorted. It is purely observational:
// every algorithm runs on its own copy of the input, and the input slice
// itself is never mutated.
package bench

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-classicsort/sort"
)

// Algorithm is a named sort entry point.
type Algorithm[T constraints.Ordered] struct {
	Name string
	Sort func([]T)
}

// Result is the outcome of timing one algorithm on one input.
type Result struct {
	Name    string
	N       int
	Elapsed time.Duration
	Sorted  bool
}

// Algorithms returns the five classic algorithms in a fixed order.
func Algorithms[T constraints.Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "quicksort", Sort: sort.Quicksort[T]},
		{Name: "heapsort", Sort: sort.Heapsort[T]},
		{Name: "merge sort", Sort: sort.MergeSort[T]},
		{Name: "tree sort", Sort: sort.TreeSort[T]},
		{Name: "block sort", Sort: sort.BlockSort[T]},
	}
}

// Run times each algorithm once on a copy of input and verifies the result.
func Run[T constraints.Ordered](algos []Algorithm[T], input []T) []Result {
	results := make([]Result, 0, len(algos))
	data := make([]T, len(input))

	for _, alg := range algos {
		copy(data, input)

		start := time.Now()
		alg.Sort(data)
		elapsed := time.Since(start)

		results = append(results, Result{
			Name:    alg.Name,
			N:       len(data),
			Elapsed: elapsed,
			Sorted:  sort.IsSorted(data),
		})
	}

	return results
}

// RunBest runs each algorithm `runs` times and keeps the best wall-clock
// time per algorithm. A result counts as sorted only if every run verified.
func RunBest[T constraints.Ordered](algos []Algorithm[T], input []T, runs int) []Result {
	if runs < 1 {
		runs = 1
	}

	best := Run(algos, input)
	for r := 1; r < runs; r++ {
		next := Run(algos, input)
		for i := range best {
			if next[i].Elapsed < best[i].Elapsed {
				best[i].Elapsed = next[i].Elapsed
			}
			best[i].Sorted = best[i].Sorted && next[i].Sorted
		}
	}

	return best
}
