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

// treeNode is one node of the ephemeral search tree built by TreeSort. Each
// node exclusively owns its children; the tree is discarded once traversal
// completes.
type treeNode[T constraints.Ordered] struct {
	value T
	left  *treeNode[T]
	right *treeNode[T]
}

// TreeSort sorts data by inserting every element into an unbalanced binary
// search tree and reading it back via in-order traversal. Stable: equal
// keys are inserted to the right, so they come back in input order.
//
// Already-ordered input (ascending or descending) degenerates the tree into
// a linked list, giving O(n²) total time and O(n) recursion depth. That is
// an accepted cost of the unbalanced design.
func TreeSort[T constraints.Ordered](data []T) {
	var root *treeNode[T]
	for _, v := range data {
		root = root.insert(v)
	}

	out := data[:0]
	root.inorder(&out)
}

// insert places v into the subtree rooted at n and returns the new root.
// Values strictly less than n go left; everything else goes right.
func (n *treeNode[T]) insert(v T) *treeNode[T] {
	if n == nil {
		return &treeNode[T]{value: v}
	}
	if v < n.value {
		n.left = n.left.insert(v)
	} else {
		n.right = n.right.insert(v)
	}
	return n
}

// inorder appends the subtree's values to out in ascending order.
func (n *treeNode[T]) inorder(out *[]T) {
	if n == nil {
		return
	}
	n.left.inorder(out)
	*out = append(*out, n.value)
	n.right.inorder(out)
}
