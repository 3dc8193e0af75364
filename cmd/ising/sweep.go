package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ising/internal/config"
	"ising/internal/runner"
)

var sweepSpec runner.SweepSpec

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run independent lattices across a range of J or h",
	Long: `Build one lattice per value of --param between --from and --to, run each
for --steps steps on a pool of workers and print the reports as YAML. Every
point starts from the same seed.

Examples:
  ising sweep --param field --from -1 --to 1 --points 9
  ising sweep --param coupling --from 0.2 --to 0.8 --points 13 --steps 400`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	d := config.Default()
	sweepCmd.Flags().Int(config.FlagName(config.KeySteps), d.Steps, "Steps per point")
	sweepCmd.Flags().Int(config.FlagName(config.KeySampleEvery), d.SampleEvery, "Record a sample every N steps")
	sweepCmd.Flags().StringVar(&sweepSpec.Param, "param", runner.ParamField, "Parameter to sweep (coupling or field)")
	sweepCmd.Flags().Float64Var(&sweepSpec.From, "from", -1, "First value")
	sweepCmd.Flags().Float64Var(&sweepSpec.To, "to", 1, "Last value")
	sweepCmd.Flags().IntVar(&sweepSpec.Points, "points", 9, "Number of values")
	sweepCmd.Flags().IntVar(&sweepSpec.Workers, "workers", runtime.NumCPU(), "Worker goroutines")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	points, err := runner.Sweep(ctx, settings.Sim(), sweepSpec, runner.Options{
		Steps:       settings.Steps,
		SampleEvery: settings.SampleEvery,
	}, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	out, encErr := yaml.Marshal(points)
	if encErr != nil {
		return fmt.Errorf("encode sweep: %w", encErr)
	}
	if _, werr := cmd.OutOrStdout().Write(out); werr != nil {
		return werr
	}
	return err
}
