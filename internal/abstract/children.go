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

// Children is a view of the children of a single node. Constructing one
// does no work; every method reads the parent's link when it is called.
type Children[T any] struct {
	// parent is the parent's subtree; parent[0] is the parent itself.
	parent []Node[T]
	base   int
}

// Parent returns the node whose children are viewed. It is illegal to
// call Parent on the zero Children.
func (c Children[T]) Parent() *Node[T] {
	return &c.parent[0]
}

// IsEmpty returns whether the parent has no children. The zero Children
// is empty.
func (c Children[T]) IsEmpty() bool {
	return len(c.parent) == 0 || !c.parent[0].link.decode().hasChildren
}

func (c Children[T]) first() cursor[T] {
	if c.IsEmpty() {
		return cursor[T]{}
	}
	return makeCursor(c.parent[1:], c.base+1)
}

// Iter returns an Iterator positioned at the first child. It is not valid
// if there are no children.
func (c Children[T]) Iter() Iterator[T] {
	return Iterator[T]{c.first()}
}

// Get returns the payload and children of the child at index i. The cost
// is proportional to i.
func (c Children[T]) Get(i int) (T, Children[T], bool) {
	it := c.Iter()
	for ; i > 0 && it.Valid(); i-- {
		it.Next()
	}
	if i < 0 || !it.Valid() {
		var zero T
		return zero, Children[T]{}, false
	}
	return it.Cur(), it.Children(), true
}

// Len returns the number of children. The cost is proportional to the
// result.
func (c Children[T]) Len() int {
	var n int
	for it := c.first(); it.Valid(); it.Next() {
		n++
	}
	return n
}

// ChildrenMut is a view of the children of a single node which hands out
// mutable access. The range it addresses is exactly the parent's
// descendants, so it is disjoint from the parent's siblings and from the
// views of any other node on the same chain.
type ChildrenMut[T any] struct {
	Children[T]
}

// IterMut returns an IterMut positioned at the first child. It is not
// valid if there are no children.
func (c ChildrenMut[T]) IterMut() IterMut[T] {
	return IterMut[T]{c.first()}
}

// GetMut returns a pointer to the payload of the child at index i along
// with a mutable view of its children. The cost is proportional to i.
func (c ChildrenMut[T]) GetMut(i int) (*T, ChildrenMut[T], bool) {
	it := c.IterMut()
	for ; i > 0 && it.Valid(); i-- {
		it.Next()
	}
	if i < 0 || !it.Valid() {
		return nil, ChildrenMut[T]{}, false
	}
	return it.Cur(), it.Children(), true
}
