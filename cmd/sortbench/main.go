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

// sortbench times each classic sorting algorithm on the same randomly
// generated input and verifies every result is sorted.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-classicsort/bench"
)

var (
	flagSize  int
	flagBound int64
	flagSeed  int64
	flagRuns  int
)

func main() {
	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark the classic sorting algorithms on random input",
		Long: `sortbench generates a slice of uniformly random integers, runs each of
the five classic sorting algorithms (quicksort, heapsort, merge sort,
tree sort, block sort) on its own copy, reports the best wall-clock time
over --runs repetitions, and verifies every result is sorted.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().IntVar(&flagSize, "size", 20000, "number of elements to sort")
	root.Flags().Int64Var(&flagBound, "bound", 100000, "exclusive upper bound for generated values")
	root.Flags().Int64Var(&flagSeed, "seed", 1, "random seed for input generation")
	root.Flags().IntVar(&flagRuns, "runs", 3, "repetitions per algorithm; best time is reported")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sortbench:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagSize < 0 {
		return fmt.Errorf("--size must be >= 0, got %d", flagSize)
	}
	if flagBound <= 0 {
		return fmt.Errorf("--bound must be > 0, got %d", flagBound)
	}

	fmt.Println("=== classicsort benchmark ===")
	fmt.Printf("arch=%s gomaxprocs=%d avx2=%v neon=%v\n",
		runtime.GOARCH, runtime.GOMAXPROCS(0), cpu.X86.HasAVX2, cpu.ARM64.HasASIMD)
	fmt.Printf("%s elements from [0, %s), seed %d, best of %d run(s)\n\n",
		humanize.Comma(int64(flagSize)), humanize.Comma(flagBound), flagSeed, flagRuns)

	gen := bench.NewGenerator(flagSeed)
	defer gen.Close()
	input := gen.Int64s(flagSize, flagBound)

	results := bench.RunBest(bench.Algorithms[int64](), input, flagRuns)

	failed := false
	for _, res := range results {
		status := color.GreenString("ok")
		if !res.Sorted {
			status = color.RedString("FAILED")
			failed = true
		}
		fmt.Printf("%-11s %12v  %s\n", res.Name, res.Elapsed.Round(time.Microsecond), status)
	}

	if failed {
		return fmt.Errorf("one or more algorithms produced unsorted output")
	}
	return nil
}
