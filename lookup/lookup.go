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

// Package lookup provides a flat tree which remembers, for every retained
// node, where that node sat in the unfiltered source tree.
package lookup

import (
	"iter"

	"github.com/ajwerner/flattree"
	"github.com/ajwerner/flattree/internal/abstract"
)

// FlatTree is a flattree.FlatTree paired with a lookup array: lookup[i] is
// the index the node at buffer position i has in a pre-order enumeration
// of the whole source tree, excluded nodes included.
type FlatTree[T any] struct {
	t      abstract.Tree[T]
	lookup []int
}

type recorder struct {
	lookup []int
}

func (r *recorder) Record(global int) {
	r.lookup = append(r.lookup, global)
}

// New flattens the tree rooted at root, recording full enumeration indices
// as it goes. See flattree.New.
func New[S flattree.Parent[S], T any](
	root S, capacityHint int, transform func(S) (T, bool),
) *FlatTree[T] {
	r := recorder{lookup: make([]int, 0, max(capacityHint, 0))}
	t := abstract.Build(root, abstract.Config[S, T]{
		Transform:    transform,
		Recorder:     &r,
		CapacityHint: capacityHint,
	})
	if len(r.lookup) != t.Len() {
		panic("invariant violated: lookup out of step with buffer")
	}
	return &FlatTree[T]{t: t, lookup: r.lookup[:len(r.lookup):len(r.lookup)]}
}

// Len returns the number of retained nodes.
func (t *FlatTree[T]) Len() int { return t.t.Len() }

// At returns the node at buffer position i.
func (t *FlatTree[T]) At(i int) *flattree.Node[T] { return t.t.At(i) }

// Iter returns an Iterator positioned at the root.
func (t *FlatTree[T]) Iter() flattree.Iterator[T] { return t.t.Iter() }

// IterMut returns an IterMut positioned at the root.
func (t *FlatTree[T]) IterMut() flattree.IterMut[T] { return t.t.IterMut() }

// Values yields every payload in buffer order.
func (t *FlatTree[T]) Values() iter.Seq2[int, T] { return t.t.Values() }

// Apply calls f on every payload in buffer order.
func (t *FlatTree[T]) Apply(f func(*T)) { t.t.Apply(f) }

// PositionOf returns the buffer position of n. It panics if n does not
// belong to t.
func (t *FlatTree[T]) PositionOf(n *flattree.Node[T]) int {
	return t.t.PositionOf(n)
}

// Global returns the full enumeration index of the node at buffer
// position i.
func (t *FlatTree[T]) Global(i int) int {
	return t.lookup[i]
}

// GlobalPositionOf returns the index n has in a pre-order enumeration of
// the unfiltered source tree. It panics if n does not belong to t.
func (t *FlatTree[T]) GlobalPositionOf(n *flattree.Node[T]) int {
	return t.lookup[t.t.PositionOf(n)]
}
