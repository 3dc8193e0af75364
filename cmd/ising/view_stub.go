//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the lattice in a window (requires -tags ebiten)",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return errors.New("the window build requires the ebiten tag: go run -tags ebiten ./cmd/ising view")
	},
}
