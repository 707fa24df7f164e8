// Package sort provides five classical comparison-based sorting algorithms
// over slices of ordered elements: quicksort, heapsort, merge sort, tree
// sort, and a simplified bottom-up block sort.
//
// Each algorithm is a pure function over a mutable slice. The caller owns
// the slice for the duration of the call and gets it back fully sorted in
// non-decreasing order; no algorithm retains a reference after returning.
//
// # Algorithms
//
//   - Quicksort: Hoare-style partitioning with first-element pivots.
//     O(n log n) expected, O(n²) on sorted or reverse-sorted input.
//   - Heapsort: implicit max-heap build plus repeated extraction.
//     O(n log n) worst case, not stable.
//   - MergeSort: top-down divide and conquer with a temporary buffer per
//     merge. O(n log n), stable.
//   - TreeSort: unbalanced binary search tree built in input order, read
//     back in-order. O(n log n) expected, O(n²) on already-ordered input,
//     stable.
//   - BlockSort: insertion-sorted small blocks merged pairwise with
//     doubling block sizes. O(n log n), not stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-classicsort/sort"
//
//	func ProcessData(data []float64) {
//	    sort.Quicksort(data)
//	}
//
//	func CheckSorted(data []float64) bool {
//	    return sort.IsSorted(data)
//	}
//
// MergeSortFunc and TreeSortFunc accept an explicit comparison function for
// element types without a natural order; they preserve the relative input
// order of elements that compare equal.
package sort
