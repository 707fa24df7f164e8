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

// MergeSort sorts data in-place using top-down divide-and-conquer merging.
// Stable: elements that compare equal keep their relative input order.
//
// Every merge step allocates a temporary buffer sized to the merged range.
// This keeps per-call behavior independent of slice reuse across calls at
// the cost of O(n) allocation per level of recursion.
func MergeSort[T constraints.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	mergeSortRange(data, 0, len(data)-1)
}

// mergeSortRange sorts the inclusive range data[left:right+1].
func mergeSortRange[T constraints.Ordered](data []T, left, right int) {
	if left >= right {
		return
	}

	mid := (left + right) / 2

	mergeSortRange(data, left, mid)
	mergeSortRange(data, mid+1, right)

	mergeRange(data, left, mid, right)
}

// mergeRange merges the two sorted runs data[left:mid+1] and
// data[mid+1:right+1] into a fresh temporary buffer, then copies the result
// back. Ties favor the left run, which is what makes MergeSort stable.
// Shared with BlockSort's pairwise merge phase.
func mergeRange[T constraints.Ordered](data []T, left, mid, right int) {
	tmp := make([]T, 0, right-left+1)

	i := left
	j := mid + 1

	for i <= mid && j <= right {
		if data[i] <= data[j] {
			tmp = append(tmp, data[i])
			i++
		} else {
			tmp = append(tmp, data[j])
			j++
		}
	}
	tmp = append(tmp, data[i:mid+1]...)
	tmp = append(tmp, data[j:right+1]...)

	copy(data[left:right+1], tmp)
}
