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

import "iter"

// cursor walks one sibling chain. s is exactly the range of the buffer
// that holds the chain and the chain's descendants; a cursor can never
// address a slot outside of it.
type cursor[T any] struct {
	s    []Node[T]
	base int // buffer position of s[0]
	pos  int // index into s; len(s) once exhausted
}

func makeCursor[T any](s []Node[T], base int) cursor[T] {
	return cursor[T]{s: s[:len(s):len(s)], base: base}
}

// Valid returns whether the cursor is positioned at a node.
func (c *cursor[T]) Valid() bool {
	return c.pos < len(c.s)
}

// Next moves the cursor to the next sibling of the current node. If the
// current node is the last of its chain, the cursor is exhausted. Calling
// Next on an exhausted cursor does nothing.
func (c *cursor[T]) Next() {
	if !c.Valid() {
		return
	}
	if next := c.s[c.pos].link.decode().next; next > 0 {
		c.pos += next
	} else {
		c.pos = len(c.s)
	}
}

// Node returns the node at the cursor's current position. It is illegal
// to call Node if the cursor is not valid.
func (c *cursor[T]) Node() *Node[T] {
	return &c.s[c.pos]
}

// Pos returns the buffer position of the current node. It is illegal to
// call Pos if the cursor is not valid.
func (c *cursor[T]) Pos() int {
	return c.base + c.pos
}

// subtree returns the range holding the current node and its descendants.
func (c *cursor[T]) subtree() ([]Node[T], int) {
	size := c.s[c.pos].link.decode().subtreeSize(len(c.s) - c.pos)
	end := c.pos + size
	return c.s[c.pos:end:end], c.base + c.pos
}

// Iterator is a read-only cursor over a chain of siblings.
type Iterator[T any] struct {
	cursor[T]
}

// Cur returns the payload of the current node. It is illegal to call Cur
// if the Iterator is not valid.
func (i *Iterator[T]) Cur() T {
	return i.s[i.pos].data
}

// Children returns a view of the current node's children. It is illegal
// to call Children if the Iterator is not valid.
func (i *Iterator[T]) Children() Children[T] {
	s, base := i.subtree()
	return Children[T]{parent: s, base: base}
}

// All yields the remaining nodes of the chain with their children,
// consuming the Iterator.
func (i *Iterator[T]) All() iter.Seq2[T, Children[T]] {
	return func(yield func(T, Children[T]) bool) {
		for ; i.Valid(); i.Next() {
			if !yield(i.Cur(), i.Children()) {
				return
			}
		}
	}
}

// IterMut is a cursor over a chain of siblings which hands out mutable
// access to payloads. The current node, its children view and every
// sibling reached later address pairwise disjoint ranges of the buffer.
type IterMut[T any] struct {
	cursor[T]
}

// Cur returns a pointer to the payload of the current node. It is illegal
// to call Cur if the IterMut is not valid.
func (i *IterMut[T]) Cur() *T {
	return &i.s[i.pos].data
}

// Children returns a mutable view of the current node's children. It is
// illegal to call Children if the IterMut is not valid.
func (i *IterMut[T]) Children() ChildrenMut[T] {
	s, base := i.subtree()
	return ChildrenMut[T]{Children[T]{parent: s, base: base}}
}

// All yields the remaining nodes of the chain with their children,
// consuming the IterMut.
func (i *IterMut[T]) All() iter.Seq2[*T, ChildrenMut[T]] {
	return func(yield func(*T, ChildrenMut[T]) bool) {
		for ; i.Valid(); i.Next() {
			if !yield(i.Cur(), i.Children()) {
				return
			}
		}
	}
}
