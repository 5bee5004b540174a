package flattree_test

import (
	"testing"

	"github.com/ajwerner/flattree"
	"github.com/ajwerner/flattree/internal/treegen"
)

func flatSum(it flattree.Iterator[uint64]) uint64 {
	var res uint64
	for v, children := range it.All() {
		res += v
		// Prevents recursion when there is nothing to recurse into.
		if !children.IsEmpty() {
			res += flatSum(children.Iter())
		}
	}
	return res
}

func BenchmarkReference(b *testing.B) {
	g := treegen.Generate(treegen.DefaultOptions)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := treegen.Sum(g.Root); res != g.Sum {
			b.Fatalf("expected %d, got %d", g.Sum, res)
		}
	}
}

func BenchmarkFlat(b *testing.B) {
	g := treegen.Generate(treegen.DefaultOptions)
	flat := flattree.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, true
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := flatSum(flat.Iter()); res != g.Sum {
			b.Fatalf("expected %d, got %d", g.Sum, res)
		}
	}
}

func BenchmarkEnumerate(b *testing.B) {
	g := treegen.Generate(treegen.DefaultOptions)
	flat := flattree.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, true
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var res uint64
		for _, v := range flat.Values() {
			res += v
		}
		if res != g.Sum {
			b.Fatalf("expected %d, got %d", g.Sum, res)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	g := treegen.Generate(treegen.DefaultOptions)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flat := flattree.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
			return n.Number, true
		})
		if flat.Len() != g.Count {
			b.Fatalf("expected %d nodes, got %d", g.Count, flat.Len())
		}
	}
}

func TestFlatSumMatchesReference(t *testing.T) {
	g := treegen.Generate(treegen.Options{Seed: 7, MinFanout: 2, MaxFanout: 7})
	flat := flattree.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, true
	})
	if flat.Len() != g.Count {
		t.Fatalf("expected %d nodes, got %d", g.Count, flat.Len())
	}
	if res := flatSum(flat.Iter()); res != g.Sum {
		t.Fatalf("expected %d, got %d", g.Sum, res)
	}
	if res := treegen.Sum(g.Root); res != g.Sum {
		t.Fatalf("expected %d, got %d", g.Sum, res)
	}
}
