package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quantum",
		Short: "Small quantum algorithm demos backed by a statevector simulator",
		Long: `Demos of two textbook quantum algorithms: Shor-style factoring from
single-shot phase samples, and iterative phase estimation of a phase
gate. Both run against an in-process statevector simulator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Dump full result structures")

	cmd.AddCommand(NewFactorCmd())
	cmd.AddCommand(NewIPECmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
