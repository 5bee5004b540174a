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

import "slices"

// Build flattens the tree rooted at root into a single pre-order buffer.
//
// Each source node is offered to the transform before its children. A
// retained node takes the next buffer slot, so its descendants follow it
// immediately. A node's link is finalized once its subtree is complete:
// it is written as terminal when the subtree closes and rewritten as a
// sibling link if a later sibling turns out to be retained. An excluded
// node takes no slot and its subtree is skipped, though every node in it
// still advances the full enumeration index.
func Build[S Parent[S], T any](root S, c Config[S, T]) Tree[T] {
	cfg := makeConfig(c)
	b := builder[S, T]{
		cfg:     &cfg,
		scratch: cfg.sp.get(),
	}
	defer cfg.sp.put(b.scratch)
	b.nodes = make([]Node[T], 0, cfg.CapacityHint)
	if data, ok := cfg.Transform(root); ok {
		b.push(root, data)
		b.run()
	}
	return Tree[T]{nodes: slices.Clip(b.nodes)}
}

type builder[S Parent[S], T any] struct {
	cfg *config[S, T]
	*scratch[S]
	nodes []Node[T]
	// global is the full enumeration index of the next source node.
	global int
}

func (b *builder[S, T]) run() {
	for b.frames.len() > 0 {
		f := b.frames.top()
		if f.next == len(f.children) {
			size := len(b.nodes) - f.slot
			b.nodes[f.slot].link = terminalLink(size)
			b.frames.pop()
			continue
		}
		child := f.children[f.next]
		f.next++
		data, ok := b.cfg.Transform(child)
		if !ok {
			b.skip(child)
			continue
		}
		if f.last >= 0 {
			// The previous retained sibling is complete and is no longer
			// the last of its chain.
			b.nodes[f.last].link = siblingLink(len(b.nodes) - f.last)
		}
		f.last = len(b.nodes)
		b.push(child, data)
	}
}

// push reserves the next slot for a retained node and schedules its
// children.
func (b *builder[S, T]) push(n S, data T) {
	slot := len(b.nodes)
	b.nodes = append(b.nodes, Node[T]{data: data})
	if b.cfg.Recorder != nil {
		b.cfg.Recorder.Record(b.global)
	}
	b.global++
	b.frames.push(buildFrame[S]{
		children: n.Children(),
		slot:     slot,
		last:     -1,
	})
}

// skip advances the full enumeration index past the subtree rooted at n
// without offering any of it to the transform.
func (b *builder[S, T]) skip(n S) {
	b.pending = append(b.pending[:0], n)
	for len(b.pending) > 0 {
		last := len(b.pending) - 1
		cur := b.pending[last]
		b.pending = b.pending[:last]
		b.global++
		b.pending = append(b.pending, cur.Children()...)
	}
}
