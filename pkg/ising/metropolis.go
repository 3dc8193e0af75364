package ising

import (
	"context"
	"math"

	"ising/pkg/core"
)

// DefaultTrials is the number of single-site trials in one host-visible step.
const DefaultTrials = 10000

// Stats accumulates trial outcomes over an engine's lifetime.
type Stats struct {
	Trials   uint64
	Accepted uint64
}

// AcceptanceRate returns Accepted/Trials, or 0 before any trial.
func (s Stats) AcceptanceRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Trials)
}

// Engine applies single-spin-flip Metropolis dynamics to a lattice with
// kT fixed at 1. Trials run sequentially; each one sees every earlier flip.
type Engine struct {
	lat   *Lattice
	rng   *core.RNG
	stats Stats
}

// NewEngine binds an engine to a lattice and random source.
func NewEngine(lat *Lattice, rng *core.RNG) *Engine {
	return &Engine{lat: lat, rng: rng}
}

// Lattice returns the lattice the engine mutates.
func (e *Engine) Lattice() *Lattice { return e.lat }

// Stats returns the accumulated trial counters.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats zeroes the trial counters.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// RandomPosition draws a uniformly random in-bounds position, row first.
func (e *Engine) RandomPosition() Position {
	d := e.lat.dims
	y := e.rng.UniformIndex(d.Height)
	x := e.rng.UniformIndex(d.Width)
	return Position{X: x, Y: y}
}

// TryFlipSite runs one Metropolis trial at a random site and reports
// whether the flip was accepted.
func (e *Engine) TryFlipSite() bool {
	p := e.RandomPosition()
	e.stats.Trials++
	if !e.accept(p) {
		return false
	}
	e.lat.flip(e.lat.index(p.X, p.Y))
	e.stats.Accepted++
	return true
}

// accept applies the acceptance rule at p. Energy-lowering and neutral flips
// are taken without consuming a draw.
func (e *Engine) accept(p Position) bool {
	sum := e.lat.neighborSum(p.X, p.Y)
	dE := e.lat.deltaEnergy(p.X, p.Y, sum)
	if dE <= 0 {
		return true
	}
	return math.Exp(-dE) > e.rng.UniformReal()
}

// Sweep runs trials sequential trials and returns how many were accepted.
func (e *Engine) Sweep(trials int) int {
	accepted := 0
	for i := 0; i < trials; i++ {
		if e.TryFlipSite() {
			accepted++
		}
	}
	return accepted
}

// SweepContext runs trials in chunks of at most chunk, checking ctx between
// chunks. It returns the accepted count and ctx.Err() if it stopped early.
func (e *Engine) SweepContext(ctx context.Context, trials, chunk int) (int, error) {
	if chunk <= 0 {
		chunk = trials
	}
	accepted := 0
	for done := 0; done < trials; {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}
		n := min(chunk, trials-done)
		accepted += e.Sweep(n)
		done += n
	}
	return accepted, nil
}
