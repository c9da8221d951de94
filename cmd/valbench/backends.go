package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-valarray/hwy"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List lane backends and CPU support",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeBackends(cmd.OutOrStdout(), cpu.DetectFeatures())
		},
	}
}

func writeBackends(w io.Writer, features cpu.Features) error {
	var native hwy.Native
	fmt.Fprintf(w, "arch:      %s\n", features.Architecture)
	fmt.Fprintf(w, "detected:  %s (fma: %t)\n", hwy.CurrentName(), hwy.HasFMA())
	fmt.Fprintf(w, "native:    %s\n", native.Name())
	if best := hwy.Global.Lookup(features); best != nil {
		fmt.Fprintf(w, "preferred: %s\n", best.Name)
	}
	info := vek32.Info()
	fmt.Fprintf(w, "vek32:     accelerated=%t features=%s\n\n",
		info.Acceleration, strings.Join(info.CPUFeatures, ","))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRIORITY\tLANES\tALIGN\tFMA\tSQRT TOL\tSUPPORTED")
	for _, e := range hwy.Global.Entries() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%t\t%g\t%t\n",
			e.Name, e.Priority, e.Lanes, e.Alignment, e.FusedMulAdd,
			e.SqrtTolerance, cpu.Supports(features, e.SIMDLevel))
	}
	return tw.Flush()
}
