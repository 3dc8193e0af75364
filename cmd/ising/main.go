// ising runs a two-dimensional Ising ferromagnet under Metropolis dynamics.
//
// Usage:
//
//	ising run      - Advance the lattice headless and print a YAML report
//	ising sweep    - Run one lattice per value of J or h on a worker pool
//	ising tui      - Watch the lattice in the terminal
//	ising view     - Open the ebiten window (requires -tags ebiten)
//	ising config   - Print the effective configuration
//
// Settings resolve from defaults, ./ising.yaml or $HOME/.ising/ising.yaml,
// ISING_* environment variables and flags, later sources winning.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
