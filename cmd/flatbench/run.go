package main

import (
	"fmt"
	"time"

	"github.com/ajwerner/flattree"
	"github.com/ajwerner/flattree/internal/treegen"
	"github.com/ajwerner/flattree/lookup"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	rounds    int
	dropEvery uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Time naive, flat, enumerate and lookup traversals",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		results, err := runBench(log, genOpts, rounds, dropEvery)
		if err != nil {
			return fmt.Errorf("run benchmarks: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))
		return err
	},
}

func init() {
	runCmd.Flags().IntVar(&rounds, "rounds", 50, "traversals timed per strategy")
	runCmd.Flags().Uint64Var(&dropEvery, "drop-every", 7,
		"lookup strategy: exclude nodes whose payload is a multiple of this")
}

type result struct {
	name   string
	nodes  int
	rounds int
	total  time.Duration
}

func (r result) perOp() time.Duration {
	if r.rounds == 0 {
		return 0
	}
	return r.total / time.Duration(r.rounds)
}

type strategy struct {
	name  string
	nodes int
	want  uint64
	sum   func() uint64
}

func runBench(
	log zerolog.Logger, o treegen.Options, rounds int, dropEvery uint64,
) ([]result, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	if dropEvery < 2 {
		return nil, fmt.Errorf("drop-every must be at least 2, got %d", dropEvery)
	}
	start := time.Now()
	g := treegen.Generate(o)
	log.Info().
		Int("nodes", g.Count).
		Uint64("seed", o.Seed).
		Dur("took", time.Since(start)).
		Msg("generated tree")

	start = time.Now()
	flat := flattree.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, true
	})
	log.Info().Int("nodes", flat.Len()).Dur("took", time.Since(start)).Msg("flattened tree")

	keep := func(n *treegen.Node) bool { return n == g.Root || n.Number%dropEvery != 0 }
	start = time.Now()
	filtered := lookup.New(g.Root, g.Count, func(n *treegen.Node) (uint64, bool) {
		return n.Number, keep(n)
	})
	log.Info().
		Int("nodes", filtered.Len()).
		Int("excluded", g.Count-filtered.Len()).
		Dur("took", time.Since(start)).
		Msg("flattened filtered tree")
	if n := filtered.Len(); n > 0 {
		log.Debug().
			Int("position", n-1).
			Int("global", filtered.Global(n-1)).
			Msg("last retained node")
	}

	strategies := []strategy{
		{"reference", g.Count, g.Sum, func() uint64 { return treegen.Sum(g.Root) }},
		{"flat", flat.Len(), g.Sum, func() uint64 { return flatSum(flat.Iter()) }},
		{"enumerate", flat.Len(), g.Sum, func() uint64 {
			var res uint64
			for _, v := range flat.Values() {
				res += v
			}
			return res
		}},
		{"lookup", filtered.Len(), filteredSum(g.Root, keep), func() uint64 {
			return flatSum(filtered.Iter())
		}},
	}
	results := make([]result, 0, len(strategies))
	for _, s := range strategies {
		r := result{name: s.name, nodes: s.nodes, rounds: rounds}
		for i := 0; i < rounds; i++ {
			t := time.Now()
			got := s.sum()
			r.total += time.Since(t)
			if got != s.want {
				return nil, fmt.Errorf("%s: expected sum %d, got %d", s.name, s.want, got)
			}
		}
		log.Debug().Str("strategy", s.name).Dur("per_op", r.perOp()).Msg("measured")
		results = append(results, r)
	}
	return results, nil
}

func flatSum(it flattree.Iterator[uint64]) uint64 {
	var res uint64
	for v, children := range it.All() {
		res += v
		if !children.IsEmpty() {
			res += flatSum(children.Iter())
		}
	}
	return res
}

func filteredSum(n *treegen.Node, keep func(*treegen.Node) bool) uint64 {
	if !keep(n) {
		return 0
	}
	res := n.Number
	for _, c := range n.Kids {
		res += filteredSum(c, keep)
	}
	return res
}
