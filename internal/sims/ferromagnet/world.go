package ferromagnet

import (
	"context"
	"fmt"

	"ising/internal/core"
	pcore "ising/pkg/core"
	"ising/pkg/ising"
)

// World adapts a lattice and its Metropolis engine to the host Sim contract.
type World struct {
	cfg Config
	lat *ising.Lattice
	eng *ising.Engine
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds the lattice from cfg, seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Trials <= 0 {
		cfg.Trials = ising.DefaultTrials
	}
	rng := pcore.NewRNG(cfg.Seed)
	lat, err := ising.New(cfg.Dimensions(), cfg.Coupling, cfg.Field, rng)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	return &World{cfg: cfg, lat: lat, eng: ising.NewEngine(lat, rng)}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ising" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration, including tuned parameters.
func (w *World) Config() Config { return w.cfg }

// Lattice exposes the underlying lattice.
func (w *World) Lattice() *ising.Lattice { return w.lat }

// Frame exposes the packed spin view for rendering.
func (w *World) Frame() ising.View { return w.lat.View() }

// Magnetization returns the mean spin.
func (w *World) Magnetization() float64 { return w.lat.Magnetization() }

// Energy returns the energy per site.
func (w *World) Energy() float64 { return w.lat.Energy() }

// Stats returns the engine's trial counters since the last reset.
func (w *World) Stats() ising.Stats { return w.eng.Stats() }

// AcceptanceRate returns the fraction of accepted trials since the last reset.
func (w *World) AcceptanceRate() float64 { return w.eng.Stats().AcceptanceRate() }

// Reset redraws the lattice. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := pcore.NewRNG(effective)
	w.lat.Randomize(rng)
	w.eng = ising.NewEngine(w.lat, rng)
}

// Step runs one batch of Trials Metropolis trials.
func (w *World) Step() {
	w.eng.Sweep(w.cfg.Trials)
}

// StepContext runs one batch in chunks, returning early when ctx is done.
func (w *World) StepContext(ctx context.Context, chunk int) (int, error) {
	return w.eng.SweepContext(ctx, w.cfg.Trials, chunk)
}

// SetFloatParameter updates coupling or field.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "coupling":
		w.cfg.Coupling = value
		w.lat.SetCoupling(value)
	case "field":
		w.cfg.Field = value
		w.lat.SetField(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates the trials-per-step batch size.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "trials" || value <= 0 {
		return false
	}
	w.cfg.Trials = value
	return true
}

// ParameterControls lists the values hosts may tune while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "coupling", Label: "Coupling J", Type: core.ParamTypeFloat, Step: 0.05, Min: -3, Max: 3, HasMin: true, HasMax: true},
		{Key: "field", Label: "Field h", Type: core.ParamTypeFloat, Step: 0.05, Min: -3, Max: 3, HasMin: true, HasMax: true},
		{Key: "trials", Label: "Trials/step", Type: core.ParamTypeInt, Step: 1000, Min: 1000, Max: 1000000, HasMin: true, HasMax: true},
	}
}
