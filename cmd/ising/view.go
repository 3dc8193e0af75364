//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ising/internal/app"
	"ising/internal/config"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the lattice in a window",
	Long: `Open an ebiten window with the lattice and a control panel.

Controls:
  Space        - Pause/resume
  N / Enter    - Single step while paused
  R / S        - Reset with the same / a new seed
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w, err := newWorld()
		if err != nil {
			return err
		}
		game := app.New(w, settings.Scale, settings.Seed)
		size := w.Size()

		ebiten.SetWindowTitle("ising " + w.Name())
		ebiten.SetTPS(settings.TPS)
		ebiten.SetWindowSize(size.W*settings.Scale+app.HUDWidth, size.H*settings.Scale)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	d := config.Default()
	viewCmd.Flags().Int(config.FlagName(config.KeyScale), d.Scale, "Pixels per site")
	viewCmd.Flags().Int(config.FlagName(config.KeyTPS), d.TPS, "Steps per second")
}
