package sort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt64(n int) []int64 {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63n(100000)
	}
	return data
}

func benchmarkSort(b *testing.B, fn func([]int64), n int) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		fn(data)
	}
}

func BenchmarkQuicksort_1000(b *testing.B)  { benchmarkSort(b, Quicksort[int64], 1000) }
func BenchmarkQuicksort_10000(b *testing.B) { benchmarkSort(b, Quicksort[int64], 10000) }
func BenchmarkQuicksort_100000(b *testing.B) {
	benchmarkSort(b, Quicksort[int64], 100000)
}

func BenchmarkHeapsort_1000(b *testing.B)   { benchmarkSort(b, Heapsort[int64], 1000) }
func BenchmarkHeapsort_10000(b *testing.B)  { benchmarkSort(b, Heapsort[int64], 10000) }
func BenchmarkHeapsort_100000(b *testing.B) { benchmarkSort(b, Heapsort[int64], 100000) }

func BenchmarkMergeSort_1000(b *testing.B)   { benchmarkSort(b, MergeSort[int64], 1000) }
func BenchmarkMergeSort_10000(b *testing.B)  { benchmarkSort(b, MergeSort[int64], 10000) }
func BenchmarkMergeSort_100000(b *testing.B) { benchmarkSort(b, MergeSort[int64], 100000) }

func BenchmarkTreeSort_1000(b *testing.B)   { benchmarkSort(b, TreeSort[int64], 1000) }
func BenchmarkTreeSort_10000(b *testing.B)  { benchmarkSort(b, TreeSort[int64], 10000) }
func BenchmarkTreeSort_100000(b *testing.B) { benchmarkSort(b, TreeSort[int64], 100000) }

func BenchmarkBlockSort_1000(b *testing.B)   { benchmarkSort(b, BlockSort[int64], 1000) }
func BenchmarkBlockSort_10000(b *testing.B)  { benchmarkSort(b, BlockSort[int64], 10000) }
func BenchmarkBlockSort_100000(b *testing.B) { benchmarkSort(b, BlockSort[int64], 100000) }

// Baseline for comparison
func BenchmarkStdlibSort_1000(b *testing.B)   { benchmarkSort(b, slices.Sort[[]int64], 1000) }
func BenchmarkStdlibSort_10000(b *testing.B)  { benchmarkSort(b, slices.Sort[[]int64], 10000) }
func BenchmarkStdlibSort_100000(b *testing.B) { benchmarkSort(b, slices.Sort[[]int64], 100000) }
