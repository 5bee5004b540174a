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

// Parent is the only capability a source tree must provide to be
// flattened: the ordered, finite sequence of its children. The returned
// slice is only read.
type Parent[S any] interface {
	Children() []S
}

// Transform decides whether a source node is retained. Returning false
// excludes the node and its entire subtree.
type Transform[S, T any] func(S) (T, bool)

// Recorder observes the construction of a tree. Record is called once per
// retained node, in buffer order, with the index the node would have had
// in a pre-order enumeration of the unfiltered source tree.
type Recorder interface {
	Record(global int)
}
