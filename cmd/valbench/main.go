// Command valbench times the valarray expression engine against eager and
// hand-written implementations of the same computations.
//
// Usage:
//
//	valbench run --sizes 1000,1000000 --trials 20 --impl naive,expr/avx2
//	valbench run --config valbench.yaml --format json
//	valbench backends
//	valbench version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-valarray/valarray"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "valbench",
		Short: "Benchmark lazy elementwise float32 arithmetic",
		Long: `valbench times elementwise float32 computations (a four-component dot
product and a vector length) with several implementations:

  naive         eager evaluation, one temporary slice per operation
  loop          one hand-written loop over float32 slices
  lanes/<name>  hand-written loop over aligned lanes of a backend
  expr/<name>   the valarray expression engine on a backend

Backends: scalar, sse2, avx2, neon and native (the one this binary was
built for).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "valbench v%s (%s) built %s\n", version, commit, buildTime)
		},
	})
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newBackendsCmd())
	return rootCmd
}

// setupLogging installs a text logger on w for valbench and the valarray
// library. Debug records are only emitted when verbose is set.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	valarray.SetLogger(logger)
	return logger
}
