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

// Comparator-injected variants of the two stable algorithms, for element
// types without a natural order. cmp must return a negative number when
// a < b, zero when a == b, and a positive number when a > b, and must be a
// consistent total order for the result to be sorted.

// MergeSortFunc is MergeSort with an explicit comparison function. Stable:
// elements for which cmp returns zero keep their relative input order.
func MergeSortFunc[T any](data []T, cmp func(a, b T) int) {
	if len(data) <= 1 {
		return
	}
	mergeSortFuncRange(data, 0, len(data)-1, cmp)
}

func mergeSortFuncRange[T any](data []T, left, right int, cmp func(a, b T) int) {
	if left >= right {
		return
	}

	mid := (left + right) / 2

	mergeSortFuncRange(data, left, mid, cmp)
	mergeSortFuncRange(data, mid+1, right, cmp)

	mergeFuncRange(data, left, mid, right, cmp)
}

// mergeFuncRange mirrors mergeRange with cmp in place of the ordered
// comparison; ties still favor the left run.
func mergeFuncRange[T any](data []T, left, mid, right int, cmp func(a, b T) int) {
	tmp := make([]T, 0, right-left+1)

	i := left
	j := mid + 1

	for i <= mid && j <= right {
		if cmp(data[i], data[j]) <= 0 {
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

type treeFuncNode[T any] struct {
	value T
	left  *treeFuncNode[T]
	right *treeFuncNode[T]
}

// TreeSortFunc is TreeSort with an explicit comparison function. Stable:
// equal elements are inserted to the right and come back in input order.
// Shares TreeSort's O(n²) degeneration on already-ordered input.
func TreeSortFunc[T any](data []T, cmp func(a, b T) int) {
	var root *treeFuncNode[T]
	for _, v := range data {
		root = root.insert(v, cmp)
	}

	out := data[:0]
	root.inorder(&out)
}

func (n *treeFuncNode[T]) insert(v T, cmp func(a, b T) int) *treeFuncNode[T] {
	if n == nil {
		return &treeFuncNode[T]{value: v}
	}
	if cmp(v, n.value) < 0 {
		n.left = n.left.insert(v, cmp)
	} else {
		n.right = n.right.insert(v, cmp)
	}
	return n
}

func (n *treeFuncNode[T]) inorder(out *[]T) {
	if n == nil {
		return
	}
	n.left.inorder(out)
	*out = append(*out, n.value)
	n.right.inorder(out)
}
