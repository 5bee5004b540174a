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

// buildStack represents a stack of frames, which captures the state of
// Build as it descends a source tree. Keeping it explicit bounds the
// goroutine stack regardless of the depth of the source.
type buildStack[S any] struct {
	a    buildStackArr[S]
	aLen int16 // -1 when using s
	s    []buildFrame[S]
}

const buildStackDepth = 8

// Used to avoid allocations for stacks below a certain size.
type buildStackArr[S any] [buildStackDepth]buildFrame[S]

// buildFrame is a retained source node whose children are being visited.
type buildFrame[S any] struct {
	children []S
	// next is the index of the next child to visit.
	next int
	// slot is the buffer position of the node.
	slot int
	// last is the slot of the most recently retained child, or -1.
	last int
}

func (is *buildStack[S]) push(f buildFrame[S]) {
	if is.aLen == -1 {
		is.s = append(is.s, f)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]buildFrame[S], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = f
		is.aLen = -1
	} else {
		is.a[is.aLen] = f
		is.aLen++
	}
}

func (is *buildStack[S]) pop() buildFrame[S] {
	if is.aLen == -1 {
		f := is.s[len(is.s)-1]
		is.s[len(is.s)-1] = buildFrame[S]{}
		is.s = is.s[:len(is.s)-1]
		return f
	}
	is.aLen--
	f := is.a[is.aLen]
	is.a[is.aLen] = buildFrame[S]{}
	return f
}

// top returns the frame on top of the stack. The pointer is invalidated
// by the next push.
func (is *buildStack[S]) top() *buildFrame[S] {
	if is.aLen == -1 {
		return &is.s[len(is.s)-1]
	}
	return &is.a[is.aLen-1]
}

func (is *buildStack[S]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

// reset empties the stack. A stack that spilled keeps using its slice.
func (is *buildStack[S]) reset() {
	if is.aLen == -1 {
		clear(is.s)
		is.s = is.s[:0]
	} else {
		is.a = buildStackArr[S]{}
		is.aLen = 0
	}
}
