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

import "sync"

// scratch is the working memory of a single Build: the stack of retained
// ancestors and the worklist used to count excluded subtrees.
type scratch[S any] struct {
	frames  buildStack[S]
	pending []S
}

type stackPool[S any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

func getStackPool[S any]() *stackPool[S] {
	var nilScratch *scratch[S]
	v, ok := syncPoolMap.Load(nilScratch)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilScratch, newStackPool[S]())
	}
	return v.(*stackPool[S])
}

func newStackPool[S any]() *stackPool[S] {
	sp := stackPool[S]{}
	sp.pool = sync.Pool{
		New: func() interface{} {
			return new(scratch[S])
		},
	}
	return &sp
}

func (sp *stackPool[S]) get() *scratch[S] {
	return sp.pool.Get().(*scratch[S])
}

func (sp *stackPool[S]) put(s *scratch[S]) {
	s.frames.reset()
	clear(s.pending)
	s.pending = s.pending[:0]
	sp.pool.Put(s)
}
