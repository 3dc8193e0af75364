package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ising/internal/config"
	"ising/internal/sims/ferromagnet"
)

var (
	flagConfigPath string
	flagOverrides  map[string]string

	settings config.Config
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ising",
	Short: "2D Ising model with Metropolis dynamics",
	Long: `ising simulates a toroidal square lattice of spins with nearest-neighbour
coupling J and a uniform field h, flipping single spins under the
Metropolis rule at kT = 1.

Examples:
  ising run --steps 500 --plot
  ising tui --width 120 --height 60
  ising run --field 0.2 --coupling 0.6 > report.yaml
  ising sweep --set w=64,h=64,trials=4096`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a YAML config file")
	config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringToStringVar(&flagOverrides, "set", nil, "Simulation overrides as key=value (w, h, seed, coupling, field, trials)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(configCmd)
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath, cmd.Flags())
	if err != nil {
		return err
	}
	cfg = cfg.WithSim(cfg.Sim().Apply(flagOverrides))
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ising",
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

func newWorld() (*ferromagnet.World, error) {
	w, err := ferromagnet.NewWithConfig(settings.Sim())
	if err != nil {
		return nil, err
	}
	logger.Debug("lattice ready", "width", settings.Width, "height", settings.Height, "m", w.Magnetization())
	return w, nil
}
