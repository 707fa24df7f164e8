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

package sort

import "golang.org/x/exp/constraints"

// Quicksort sorts data in-place using Hoare-style partitioning with the
// first element of each active range as pivot.
//
// Expected O(n log n) on random input. Sorted and reverse-sorted inputs hit
// the first-element pivot's worst case: O(n²) comparisons and O(n) recursion
// depth. Callers that need a guaranteed bound on adversarial input should
// prefer Heapsort or MergeSort.
func Quicksort[T constraints.Ordered](data []T) {
	quicksortRange(data, 0, len(data)-1)
}

// quicksortRange sorts the inclusive range data[low:high+1].
func quicksortRange[T constraints.Ordered](data []T, low, high int) {
	if low >= high {
		return
	}

	pivot := data[low]
	left := low + 1
	right := high

	for left <= right {
		for left <= right && data[left] < pivot {
			left++
		}
		for left <= right && data[right] > pivot {
			right--
		}
		if left <= right {
			swap(data, left, right)
			left++
			right--
		}
	}

	// right is the pivot's final resting position.
	swap(data, low, right)

	quicksortRange(data, low, right-1)
	quicksortRange(data, right+1, high)
}
