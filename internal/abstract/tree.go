// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"fmt"
	"iter"
	"unsafe"
)

// Tree owns the flat buffer produced by Build. Its length never changes;
// payloads may be mutated in place through IterMut, ChildrenMut or Apply.
//
// Read operations are safe for concurrent use by multiple goroutines.
// Mutation is not safe concurrently with anything else.
type Tree[T any] struct {
	nodes []Node[T]
}

// Len returns the number of retained nodes.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// At returns the node at buffer position i.
func (t *Tree[T]) At(i int) *Node[T] {
	return &t.nodes[i]
}

// Iter returns an Iterator over the root's chain. The root, if retained,
// is alone on that chain, so the Iterator yields at most one node.
func (t *Tree[T]) Iter() Iterator[T] {
	return Iterator[T]{makeCursor(t.nodes, 0)}
}

// IterMut is like Iter but hands out mutable access.
func (t *Tree[T]) IterMut() IterMut[T] {
	return IterMut[T]{makeCursor(t.nodes, 0)}
}

// Values yields every payload in buffer order along with its position.
func (t *Tree[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range t.nodes {
			if !yield(i, t.nodes[i].data) {
				return
			}
		}
	}
}

// Apply calls f on every payload in buffer order.
func (t *Tree[T]) Apply(f func(*T)) {
	for i := range t.nodes {
		f(&t.nodes[i].data)
	}
}

// PositionOf returns the buffer position of n, computed from its address.
// It panics if n does not point into this tree's buffer.
func (t *Tree[T]) PositionOf(n *Node[T]) int {
	if n != nil && len(t.nodes) > 0 {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(t.nodes)))
		p := uintptr(unsafe.Pointer(n))
		size := unsafe.Sizeof(t.nodes[0])
		if p >= base {
			if off := p - base; off%size == 0 && off/size < uintptr(len(t.nodes)) {
				return int(off / size)
			}
		}
	}
	panic(fmt.Sprintf(
		"flattree: node %p is not part of the tree (%d nodes)", n, len(t.nodes),
	))
}
