package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ajwerner/flattree/internal/treegen"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	genOpts  = treegen.DefaultOptions
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "flatbench",
	Short:        "Benchmark flat trees against pointer trees",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&genOpts.Seed, "seed", genOpts.Seed, "seed of the generated tree")
	pf.IntVar(&genOpts.MinFanout, "fanout-min", genOpts.MinFanout, "lower bound of the fan-out at the root")
	pf.IntVar(&genOpts.MaxFanout, "fanout-max", genOpts.MaxFanout, "upper bound (exclusive) of the fan-out at the root")
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(runCmd, deepCmd)
}

// newLogger writes human readable logs to a terminal and JSON otherwise.
func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
