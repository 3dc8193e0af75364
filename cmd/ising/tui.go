package main

import (
	"github.com/spf13/cobra"

	"ising/internal/config"
	"ising/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Watch the lattice in the terminal",
	Long: `Render the lattice with half-block characters next to live observables
and a magnetization chart.

Controls:
  Space          - Pause/resume
  N              - Single step while paused
  R / S          - Reset with the same / a new seed
  Tab            - Select parameter
  Up/Down, +/-   - Adjust selected parameter
  Q/Esc/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w, err := newWorld()
		if err != nil {
			return err
		}
		logger.Debug("starting tui", "tps", settings.TPS)
		return tui.Run(w, settings.TPS, settings.Seed)
	},
}

func init() {
	tuiCmd.Flags().Int(config.FlagName(config.KeyTPS), config.Default().TPS, "Steps per second")
}
