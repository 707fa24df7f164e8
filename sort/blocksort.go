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

// blockSeedSize is the starting block length for BlockSort's insertion-sort
// seeding phase.
const blockSeedSize = 2

// BlockSort sorts data in-place as an iterative bottom-up merge sort seeded
// by small-block insertion sort: blocks of size 2 are insertion-sorted, then
// adjacent block pairs are merged with doubling block sizes until one block
// covers the whole slice. Not stable.
//
// This is the simplified variant of block sort: no rotations and no internal
// buffer, so it shares MergeSort's temporary-allocation-per-merge behavior.
func BlockSort[T constraints.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	blockSize := blockSeedSize
	for i := 0; i < n; i += blockSize {
		insertionSortRange(data, i, min(i+blockSize-1, n-1))
	}

	for blockSize < n {
		for start := 0; start < n; start += 2 * blockSize {
			// The last pair of a pass may be short; clamp both boundaries so
			// an odd leftover block merges with whatever range remains.
			mid := min(start+blockSize-1, n-1)
			end := min(start+2*blockSize-1, n-1)
			mergeRange(data, start, mid, end)
		}
		blockSize *= 2
	}
}
