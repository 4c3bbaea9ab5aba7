package main

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/simd"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			isa := simd.ActiveISA().String()
			if simd.IsOverridden() {
				isa += " (override)"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bitvec\nVersion: %s\nCPU: %s\nKernels: %s\n",
				Version, isa, simd.KernelSet())
			return err
		},
	}
}
