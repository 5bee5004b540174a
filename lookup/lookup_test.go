package lookup

import (
	"testing"

	"github.com/ajwerner/flattree"
	"github.com/ajwerner/flattree/internal/treegen"
	"github.com/stretchr/testify/require"
)

type nonFlatNode struct {
	number   int
	children []*nonFlatNode
}

func (n *nonFlatNode) Children() []*nonFlatNode { return n.children }

func newNode(number int, children ...*nonFlatNode) *nonFlatNode {
	return &nonFlatNode{number: number, children: children}
}

func testTree() *nonFlatNode {
	return newNode(1,
		newNode(2),
		newNode(3, newNode(4), newNode(5)),
		newNode(6, newNode(7)),
		newNode(8),
	)
}

func without(excluded int) func(*nonFlatNode) (int, bool) {
	return func(n *nonFlatNode) (int, bool) { return n.number, n.number != excluded }
}

func TestLookupIdentity(t *testing.T) {
	flat := New(testTree(), 8, without(0))
	require.Equal(t, 8, flat.Len())
	for i := 0; i < flat.Len(); i++ {
		require.Equal(t, i, flat.Global(i))
		require.Equal(t, i, flat.GlobalPositionOf(flat.At(i)))
	}
}

func TestLookupFiltered(t *testing.T) {
	flat := New(testTree(), 8, without(3))
	var got []int
	for _, v := range flat.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 6, 7, 8}, got)

	global := map[int]int{}
	var walk func(it flattree.Iterator[int])
	walk = func(it flattree.Iterator[int]) {
		for ; it.Valid(); it.Next() {
			global[it.Cur()] = flat.GlobalPositionOf(it.Node())
			walk(it.Children().Iter())
		}
	}
	walk(flat.Iter())
	require.Equal(t, map[int]int{1: 0, 2: 1, 6: 5, 7: 6, 8: 7}, global)
	require.Equal(t, 2, flat.PositionOf(flat.At(2)))
	require.Equal(t, 5, flat.Global(2))
}

func TestLookupExcludedSiblingsBeforeAndAfter(t *testing.T) {
	src := newNode(0,
		newNode(1, newNode(2), newNode(3)),
		newNode(4, newNode(5, newNode(6))),
		newNode(7),
		newNode(8, newNode(9)),
	)
	flat := New(src, 0, func(n *nonFlatNode) (int, bool) {
		return n.number, n.number != 1 && n.number != 8
	})
	var got, globals []int
	for i, v := range flat.Values() {
		got = append(got, v)
		globals = append(globals, flat.Global(i))
	}
	require.Equal(t, []int{0, 4, 5, 6, 7}, got)
	// Numbers were assigned in pre-order, so they are the global indices.
	require.Equal(t, got, globals)
	root := flat.Iter()
	kids := root.Children()
	require.Equal(t, 2, kids.Len())
	v, _, ok := kids.Get(1)
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, 0, flat.At(flat.Len()-1).Offset())
}

func TestLookupRootExcluded(t *testing.T) {
	flat := New(testTree(), 8, without(1))
	require.Equal(t, 0, flat.Len())
	require.Empty(t, flat.lookup)
	require.Panics(t, func() { flat.GlobalPositionOf(New(testTree(), 8, without(0)).At(0)) })
}

func TestLookupMutation(t *testing.T) {
	flat := New(testTree(), 8, without(6))
	root := flat.IterMut()
	children := root.Children().IterMut()
	for v, kids := range children.All() {
		*v *= 10
		grandchildren := kids.IterMut()
		for k := range grandchildren.All() {
			*k *= 100
		}
	}
	var got []int
	for _, v := range flat.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 20, 30, 400, 500, 80}, got)
	require.Equal(t, 7, flat.GlobalPositionOf(flat.At(5)))

	flat.Apply(func(v *int) { *v = 0 })
	it := flat.Iter()
	require.Equal(t, 0, it.Cur())
}

func TestLookupRandom(t *testing.T) {
	g := treegen.Generate(treegen.Options{Seed: 11, MinFanout: 2, MaxFanout: 6})
	// Number every source node with its pre-order index.
	var number func(n *treegen.Node, next int) int
	number = func(n *treegen.Node, next int) int {
		n.Number = uint64(next)
		next++
		for _, k := range n.Kids {
			next = number(k, next)
		}
		return next
	}
	require.Equal(t, g.Count, number(g.Root, 0))

	flat := New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, n.Number%3 != 1
	})
	require.Greater(t, flat.Len(), 0)
	require.Less(t, flat.Len(), g.Count)
	for i, v := range flat.Values() {
		require.Equal(t, int(v), flat.Global(i))
		require.Equal(t, int(v), flat.GlobalPositionOf(flat.At(i)))
	}
}
