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

import "fmt"

// Node is the unit of a flattened tree: a payload and the link to its next
// sibling. Nodes are only ever created by Build and are addressed through
// the tree that owns them.
type Node[T any] struct {
	data T
	link link
}

// Value returns a copy of the node's payload.
func (n *Node[T]) Value() T {
	return n.data
}

// HasChildren returns whether the node has at least one retained child.
func (n *Node[T]) HasChildren() bool {
	return n.link.decode().hasChildren
}

// HasNextSibling returns whether the node is followed by a sibling.
func (n *Node[T]) HasNextSibling() bool {
	return n.link.decode().next > 0
}

// Offset returns the raw sibling offset stored with the node.
func (n *Node[T]) Offset() int {
	return int(n.link)
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("%v@%d", n.data, n.link)
}
