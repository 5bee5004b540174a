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

// Package flattree flattens a pointer-based tree into one contiguous
// pre-order buffer. Each node stores a single signed offset to its next
// sibling, which is enough to recover parents, siblings and children by
// index arithmetic alone.
package flattree

import (
	"iter"

	"github.com/ajwerner/flattree/internal/abstract"
)

// Parent is implemented by source trees: a node exposes its ordered
// children.
type Parent[S any] = abstract.Parent[S]

// Node is a payload stored in the flat buffer together with its sibling
// offset.
type Node[T any] = abstract.Node[T]

// Iterator is a read-only cursor over a chain of siblings.
type Iterator[T any] = abstract.Iterator[T]

// IterMut is a cursor over a chain of siblings with mutable payloads.
type IterMut[T any] = abstract.IterMut[T]

// Children is a read-only view of a node's children.
type Children[T any] = abstract.Children[T]

// ChildrenMut is a mutable view of a node's children.
type ChildrenMut[T any] = abstract.ChildrenMut[T]

// FlatTree is a tree stored as a single pre-order buffer.
type FlatTree[T any] struct {
	t abstract.Tree[T]
}

// New flattens the tree rooted at root. transform is called for source
// nodes in pre-order; a node for which it returns false is left out along
// with its entire subtree, and transform is not called on its
// descendants. capacityHint pre-sizes the buffer and does not affect the
// result.
func New[S Parent[S], T any](
	root S, capacityHint int, transform func(S) (T, bool),
) *FlatTree[T] {
	return &FlatTree[T]{
		t: abstract.Build(root, abstract.Config[S, T]{
			Transform:    transform,
			CapacityHint: capacityHint,
		}),
	}
}

// Len returns the number of retained nodes.
func (t *FlatTree[T]) Len() int { return t.t.Len() }

// At returns the node at buffer position i.
func (t *FlatTree[T]) At(i int) *Node[T] { return t.t.At(i) }

// Iter returns an Iterator positioned at the root. It is not valid if the
// root was excluded.
func (t *FlatTree[T]) Iter() Iterator[T] { return t.t.Iter() }

// IterMut returns an IterMut positioned at the root.
func (t *FlatTree[T]) IterMut() IterMut[T] { return t.t.IterMut() }

// Values yields every payload in buffer order, which is the pre-order of
// the retained source nodes.
func (t *FlatTree[T]) Values() iter.Seq2[int, T] { return t.t.Values() }

// Apply calls f on every payload in buffer order.
func (t *FlatTree[T]) Apply(f func(*T)) { t.t.Apply(f) }

// PositionOf returns the buffer position of n. It panics if n does not
// belong to t.
func (t *FlatTree[T]) PositionOf(n *Node[T]) int { return t.t.PositionOf(n) }
