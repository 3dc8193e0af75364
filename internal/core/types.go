package core

import "ising/pkg/ising"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a host loop drives and renders.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Frame() ising.View
	Magnetization() float64
}

// Observer is implemented by sims that expose secondary observables.
type Observer interface {
	Energy() float64
	AcceptanceRate() float64
}
