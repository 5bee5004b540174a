package abstract

type testNode struct {
	n    int
	kids []*testNode
}

func (t *testNode) Children() []*testNode { return t.kids }

func leaf(n int) *testNode { return &testNode{n: n} }

func node(n int, kids ...*testNode) *testNode { return &testNode{n: n, kids: kids} }

// sampleTree is 1(2, 3(4, 5), 6(7), 8).
func sampleTree() *testNode {
	return node(1,
		leaf(2),
		node(3, leaf(4), leaf(5)),
		node(6, leaf(7)),
		leaf(8),
	)
}

func identity(t *testNode) (int, bool) { return t.n, true }

func without(excluded ...int) Transform[*testNode, int] {
	return func(t *testNode) (int, bool) {
		for _, e := range excluded {
			if t.n == e {
				return 0, false
			}
		}
		return t.n, true
	}
}

func build(root *testNode, tr Transform[*testNode, int]) Tree[int] {
	return Build(root, Config[*testNode, int]{Transform: tr})
}

func values(t *Tree[int]) []int {
	var out []int
	for _, v := range t.Values() {
		out = append(out, v)
	}
	return out
}

func offsets(t *Tree[int]) []int {
	out := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, t.At(i).Offset())
	}
	return out
}

// preorder walks the tree through children views and returns payloads in
// the order they are entered.
func preorder(it Iterator[int]) []int {
	var out []int
	var walk func(it Iterator[int])
	walk = func(it Iterator[int]) {
		for v, children := range it.All() {
			out = append(out, v)
			if !children.IsEmpty() {
				walk(children.Iter())
			}
		}
	}
	walk(it)
	return out
}

type sliceRecorder []int

func (r *sliceRecorder) Record(global int) { *r = append(*r, global) }
