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

// link is the compact encoding stored with every node. It is measured in
// buffer slots relative to the node that carries it:
//
//	-1  no next sibling, has children
//	 0  no next sibling, no children
//	 1  next sibling at +1, no children
//	>1  next sibling at +link, children occupy [+1, +link)
//
// Traversal code never compares against these values directly; it goes
// through decode.
type link int

// linkKind is the decoded form of a link. next is zero when the node is
// the last of its sibling chain.
type linkKind struct {
	next        int
	hasChildren bool
}

// terminalLink is the encoding for the last retained node of a sibling
// chain with the given subtree size.
func terminalLink(size int) link {
	if size > 1 {
		return -1
	}
	return 0
}

// siblingLink is the encoding for a node followed by a sibling; the
// distance to that sibling is the node's subtree size.
func siblingLink(size int) link {
	if size < 1 {
		panic("invariant violated: subtree size must be positive")
	}
	return link(size)
}

func (l link) decode() linkKind {
	switch {
	case l < 0:
		return linkKind{hasChildren: true}
	case l == 0:
		return linkKind{}
	default:
		return linkKind{next: int(l), hasChildren: l > 1}
	}
}

// subtreeSize returns the number of slots occupied by the node and its
// descendants. remaining is the number of slots from the node to the end
// of the range that contains its sibling chain; it is only consulted for
// the last node of a chain, whose subtree runs to the end of that range.
func (k linkKind) subtreeSize(remaining int) int {
	if k.next > 0 {
		return k.next
	}
	if !k.hasChildren {
		return 1
	}
	return remaining
}
