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

// Heapsort sorts data in-place via max-heap construction and repeated
// extraction. O(n log n) worst case, not stable.
func Heapsort[T constraints.Ordered](data []T) {
	n := len(data)

	// Build max-heap bottom-up, from the last parent to the root.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, n, i)
	}

	// Swap the root (current max) to the end and restore the heap over the
	// shrunken prefix.
	for i := n - 1; i > 0; i-- {
		swap(data, 0, i)
		siftDown(data, i, 0)
	}
}

// siftDown restores the max-heap property at node i within data[:size],
// treating data as an implicit binary heap (children of i at 2i+1, 2i+2).
func siftDown[T constraints.Ordered](data []T, size, i int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < size && data[left] > data[largest] {
			largest = left
		}
		if right < size && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			return
		}

		swap(data, i, largest)
		i = largest
	}
}
