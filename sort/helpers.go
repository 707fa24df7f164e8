package sort

import "golang.org/x/exp/constraints"

// Helper primitives shared across the algorithm implementations.

// swap exchanges the elements at indices i and j. Both indices must be
// valid for data; callers only ever derive them from in-range computations.
func swap[T any](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}

// insertionSortRange sorts the inclusive range data[left:right+1] by
// shifting larger elements right. Used by BlockSort to seed its blocks.
func insertionSortRange[T constraints.Ordered](data []T, left, right int) {
	for i := left + 1; i <= right; i++ {
		key := data[i]
		j := i - 1
		for j >= left && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
