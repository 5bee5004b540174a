// Package treegen builds deterministic pointer trees used to compare naive
// recursive traversal against flat traversal.
package treegen

import "math/rand/v2"

// Node is a conventional pointer tree node.
type Node struct {
	Number uint64
	Kids   []*Node
}

// Children implements flattree.Parent.
func (n *Node) Children() []*Node { return n.Kids }

// Options control the shape of a generated tree. A node at depth d gets
// uniform[MinFanout, MaxFanout) - d children, never fewer than zero, so
// the tree is bounded in depth by MaxFanout. Small increases of MaxFanout
// grow the tree very quickly.
type Options struct {
	Seed      uint64
	MinFanout int
	MaxFanout int
}

// DefaultOptions produce a tree large enough to spill out of CPU caches.
var DefaultOptions = Options{Seed: 424242, MinFanout: 4, MaxFanout: 12}

// Tree is a generated tree along with facts needed to check traversals.
type Tree struct {
	Root *Node
	// Sum is the sum of every node's Number, wrapping on overflow.
	Sum uint64
	// Count is the number of nodes.
	Count int
}

// Generate builds a tree. The same options always produce the same tree.
func Generate(o Options) Tree {
	if o.MaxFanout <= o.MinFanout {
		o.MaxFanout = o.MinFanout + 1
	}
	g := generator{
		rng: rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15)),
		o:   o,
	}
	root := g.node(0)
	return Tree{Root: root, Sum: g.sum, Count: g.count}
}

type generator struct {
	rng   *rand.Rand
	o     Options
	sum   uint64
	count int
}

// node recurses; depth is bounded by MaxFanout.
func (g *generator) node(depth int) *Node {
	n := g.o.MinFanout + g.rng.IntN(g.o.MaxFanout-g.o.MinFanout) - depth
	var kids []*Node
	if n > 0 {
		kids = make([]*Node, 0, n)
		for i := 0; i < n; i++ {
			kids = append(kids, g.node(depth+1))
		}
	}
	num := g.rng.Uint64()
	g.sum += num
	g.count++
	return &Node{Number: num, Kids: kids}
}

// Sum adds up the tree by chasing child pointers. It is the reference
// traversal flat trees are measured against.
func Sum(n *Node) uint64 {
	res := n.Number
	for _, c := range n.Kids {
		res += Sum(c)
	}
	return res
}

// Chain builds a degenerate tree of the given depth, numbered from 0 at
// the root.
func Chain(depth int) *Node {
	if depth <= 0 {
		return nil
	}
	nodes := make([]Node, depth)
	for i := range nodes {
		nodes[i].Number = uint64(i)
		if i > 0 {
			nodes[i-1].Kids = []*Node{&nodes[i]}
		}
	}
	return &nodes[0]
}
