package ferromagnet

import (
	"strconv"

	"ising/pkg/ising"
)

// Config controls the lattice dimensions, couplings and update batch size.
type Config struct {
	Width  int
	Height int

	Coupling float64
	Field    float64

	// Trials is the number of Metropolis trials run by one Step.
	Trials int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Coupling: 1,
		Field:    0,
		Trials:   ising.DefaultTrials,
		Seed:     1337,
	}
}

// Dimensions converts the configured extent to lattice dimensions. Negative
// values map to zero so construction rejects them.
func (c Config) Dimensions() ising.Dimensions {
	return ising.Dimensions{Width: clampUint32(c.Width), Height: clampUint32(c.Height)}
}

func clampUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}

// Apply overrides c with any recognised, well-formed entries of cfg, as
// passed to --set (keys w, h, seed, coupling, field, trials).
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["coupling"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Coupling = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Field = parsed
		}
	}
	if v, ok := cfg["trials"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Trials = parsed
		}
	}
	return c
}
