package main

import (
	"fmt"
	"time"

	"github.com/ajwerner/flattree"
	"github.com/ajwerner/flattree/internal/treegen"
	"github.com/spf13/cobra"
)

var depth int

var deepCmd = &cobra.Command{
	Use:   "deep",
	Short: "Flatten and walk a degenerate chain of the given depth",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		start := time.Now()
		n, err := walkChain(depth)
		if err != nil {
			return err
		}
		log.Info().Int("depth", n).Dur("took", time.Since(start)).Msg("walked chain")
		return nil
	},
}

func init() {
	deepCmd.Flags().IntVar(&depth, "depth", 1_000_000, "length of the chain")
}

// walkChain flattens a chain and descends it one level at a time,
// returning the number of levels visited.
func walkChain(depth int) (int, error) {
	if depth <= 0 {
		return 0, fmt.Errorf("depth must be positive, got %d", depth)
	}
	flat := flattree.New(treegen.Chain(depth), depth, func(n *treegen.Node) (uint64, bool) {
		return n.Number, true
	})
	it := flat.Iter()
	var n int
	for it.Valid() {
		if got := it.Cur(); got != uint64(n) {
			return n, fmt.Errorf("level %d holds %d", n, got)
		}
		n++
		it = it.Children().Iter()
	}
	if n != depth {
		return n, fmt.Errorf("expected %d levels, walked %d", depth, n)
	}
	return n, nil
}
