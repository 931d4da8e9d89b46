package main

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	quantum "github.com/DVDR12321/Quantum-Algorithms"
)

// NewFactorCmd creates the factor subcommand.
func NewFactorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Factor a modulus from single-shot phase samples",
		Long: `Runs the order-finding circuit on the statevector simulator and feeds
each sampled phase through continued-fraction recovery until a
nontrivial factor of the modulus appears. N=15 with base 7 is the
validated configuration.`,
		RunE: runFactor,
	}

	cmd.Flags().Uint64P("modulus", "n", 15, "Composite modulus to factor")
	cmd.Flags().Uint64P("base", "a", 7, "Base coprime to the modulus")
	cmd.Flags().IntP("bits", "m", 4, "Phase bits per oracle shot")
	cmd.Flags().Int("max-attempts", 16, "Attempt budget before giving up")
	cmd.Flags().Int64("seed", 0, "Simulator seed (0 seeds from the clock)")
	cmd.Flags().Duration("oracle-timeout", 10*time.Second, "Per-shot oracle timeout")
	cmd.Flags().StringP("config", "c", "", "YAML config file")

	return cmd
}

func runFactor(cmd *cobra.Command, args []string) error {
	opts, err := factorOptions(cmd)
	if err != nil {
		return err
	}

	cfg := &quantum.Config{
		OracleTimeout: opts.OracleTimeout,
		Seed:          opts.Seed,
	}
	oracle := quantum.NewSimulatorOracle(cfg)
	estimator := quantum.NewFactorEstimator(oracle, cfg)

	result, err := estimator.EstimateFactor(cmd.Context(), opts.Modulus, opts.Base, opts.Bits, opts.MaxAttempts)
	if err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		spew.Dump(result)
		spew.Dump(estimator.Metrics().Export())
	}

	factor, ok := result.Nontrivial()
	if !ok {
		return fmt.Errorf("estimator returned a trivial pair %v", result.Factors)
	}
	fmt.Printf("%d = %d × %d  (period %d, sample %s, %d attempt(s))\n",
		opts.Modulus, factor, opts.Modulus/factor, result.Period, result.Sample, result.Attempts)
	return nil
}
