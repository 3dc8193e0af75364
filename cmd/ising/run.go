package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ising/internal/config"
	"ising/internal/runner"
)

var (
	flagChunk      int
	flagPlot       bool
	flagPlotHeight int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lattice headless and print a report",
	Long: `Advance the lattice --steps times, each step being --trials Metropolis
trials, and write a YAML report to stdout. Ctrl+C stops the run at the next
chunk boundary and still prints the partial report.`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	d := config.Default()
	runCmd.Flags().Int(config.FlagName(config.KeySteps), d.Steps, "Number of steps to run")
	runCmd.Flags().Int(config.FlagName(config.KeySampleEvery), d.SampleEvery, "Record a sample every N steps")
	runCmd.Flags().IntVar(&flagChunk, "chunk", runner.DefaultChunk, "Trials between cancellation checks")
	runCmd.Flags().BoolVar(&flagPlot, "plot", false, "Print a magnetization chart to stderr")
	runCmd.Flags().IntVar(&flagPlotHeight, "plot-height", 10, "Chart height in rows")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	w, err := newWorld()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, runErr := runner.Run(ctx, w, runner.Options{
		Steps:       settings.Steps,
		SampleEvery: settings.SampleEvery,
		Chunk:       flagChunk,
	}, logger)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := rep.WriteYAML(cmd.OutOrStdout()); err != nil {
		return err
	}
	if flagPlot {
		if chart := rep.Plot(0, flagPlotHeight); chart != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), chart)
		}
	}
	return runErr
}
