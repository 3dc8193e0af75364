package ising

import (
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"

	"ising/pkg/core"
)

// SpinDownProbability is the chance that a site starts Down when a lattice
// is built.
const SpinDownProbability = 0.3

// Dimensions describes the extent of a lattice.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Len returns the number of sites, width*height.
func (d Dimensions) Len() int { return int(d.Width) * int(d.Height) }

// Validate rejects empty dimensions and site counts an int cannot index.
func (d Dimensions) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return &ConstructionError{Dims: d}
	}
	if uint64(d.Width)*uint64(d.Height) > uint64(math.MaxInt) {
		return &ConstructionError{Dims: d}
	}
	return nil
}

// Contains reports whether p lies inside the dimensions.
func (d Dimensions) Contains(p Position) bool {
	return p.X < d.Width && p.Y < d.Height
}

// Position addresses a single site. Valid positions satisfy X < Width and
// Y < Height; nothing wraps them implicitly.
type Position struct {
	X uint32
	Y uint32
}

// Lattice is a toroidal grid of spins packed one bit per site in row-major
// order, together with the coupling J and uniform external field h.
type Lattice struct {
	dims     Dimensions
	coupling float64
	field    float64
	spins    *bitset.BitSet
}

// New builds a lattice whose sites are independently Up with probability
// 1-SpinDownProbability. A nil rng is replaced by one seeded from the clock.
func New(dims Dimensions, coupling, field float64, rng *core.RNG) (*Lattice, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}
	l := &Lattice{
		dims:     dims,
		coupling: coupling,
		field:    field,
		spins:    bitset.New(uint(dims.Len())),
	}
	l.Randomize(rng)
	return l, nil
}

// Randomize redraws every site with the construction-time distribution.
func (l *Lattice) Randomize(rng *core.RNG) {
	n := uint(l.dims.Len())
	for i := uint(0); i < n; i++ {
		l.spins.SetTo(i, !rng.Bool(SpinDownProbability))
	}
}

// Dimensions returns the lattice extent.
func (l *Lattice) Dimensions() Dimensions { return l.dims }

// Len returns the number of sites.
func (l *Lattice) Len() int { return l.dims.Len() }

// Coupling returns the nearest-neighbour coupling J.
func (l *Lattice) Coupling() float64 { return l.coupling }

// SetCoupling replaces J.
func (l *Lattice) SetCoupling(j float64) { l.coupling = j }

// Field returns the external field h.
func (l *Lattice) Field() float64 { return l.field }

// SetField replaces h.
func (l *Lattice) SetField(h float64) { l.field = h }

// Index returns the row-major index width*y + x of p.
func (l *Lattice) Index(p Position) (int, error) {
	if !l.dims.Contains(p) {
		return 0, &BoundsError{Pos: p, Dims: l.dims}
	}
	return l.index(p.X, p.Y), nil
}

func (l *Lattice) index(x, y uint32) int {
	return int(l.dims.Width)*int(y) + int(x)
}

// SpinAt returns the spin at p.
func (l *Lattice) SpinAt(p Position) (Spin, error) {
	idx, err := l.Index(p)
	if err != nil {
		return Down, err
	}
	return SpinOf(l.spins.Test(uint(idx))), nil
}

// Set stores s at p.
func (l *Lattice) Set(p Position, s Spin) error {
	idx, err := l.Index(p)
	if err != nil {
		return err
	}
	l.spins.SetTo(uint(idx), s.Bool())
	return nil
}

// Fill sets every site to s.
func (l *Lattice) Fill(s Spin) {
	l.spins.ClearAll()
	if s == Up {
		l.spins.FlipRange(0, uint(l.dims.Len()))
	}
}

// Flip toggles the spin at p.
func (l *Lattice) Flip(p Position) error {
	idx, err := l.Index(p)
	if err != nil {
		return err
	}
	l.flip(idx)
	return nil
}

func (l *Lattice) flip(idx int) { l.spins.Flip(uint(idx)) }

// NeighborSum sums the weights of the four sites above, below, left and
// right of p, wrapping across opposite edges.
func (l *Lattice) NeighborSum(p Position) (float64, error) {
	if !l.dims.Contains(p) {
		return 0, &BoundsError{Pos: p, Dims: l.dims}
	}
	return l.neighborSum(p.X, p.Y), nil
}

func (l *Lattice) neighborSum(x, y uint32) float64 {
	w, h := l.dims.Width, l.dims.Height
	up := (y + h - 1) % h
	down := (y + 1) % h
	left := (x + w - 1) % w
	right := (x + 1) % w
	return l.weight(x, up) + l.weight(x, down) + l.weight(left, y) + l.weight(right, y)
}

func (l *Lattice) weight(x, y uint32) float64 {
	if l.spins.Test(uint(l.index(x, y))) {
		return 1
	}
	return -1
}

// DeltaEnergy returns the energy cost 2*s*(J*neighborSum + h) of flipping
// the spin at p.
func (l *Lattice) DeltaEnergy(p Position, neighborSum float64) (float64, error) {
	if !l.dims.Contains(p) {
		return 0, &BoundsError{Pos: p, Dims: l.dims}
	}
	return l.deltaEnergy(p.X, p.Y, neighborSum), nil
}

func (l *Lattice) deltaEnergy(x, y uint32, neighborSum float64) float64 {
	return 2 * l.weight(x, y) * (l.coupling*neighborSum + l.field)
}

// Count returns the number of Up spins.
func (l *Lattice) Count() int { return int(l.spins.Count()) }

// Magnetization returns the mean spin (2*up - n) / n, in [-1, 1].
func (l *Lattice) Magnetization() float64 {
	n := float64(l.dims.Len())
	return (2*float64(l.Count()) - n) / n
}

// Energy returns the Hamiltonian -(J*sum_bonds s_i*s_j + h*sum s_i) divided
// by the number of sites. Each right and down bond is counted once.
func (l *Lattice) Energy() float64 {
	w, h := l.dims.Width, l.dims.Height
	var bonds, total float64
	for y := uint32(0); y < h; y++ {
		down := (y + 1) % h
		for x := uint32(0); x < w; x++ {
			s := l.weight(x, y)
			bonds += s * (l.weight((x+1)%w, y) + l.weight(x, down))
			total += s
		}
	}
	return -(l.coupling*bonds + l.field*total) / float64(l.dims.Len())
}

// View returns a read-only view of the packed storage. It aliases the
// lattice and stays valid for the lattice's lifetime.
func (l *Lattice) View() View {
	return View{words: l.spins.Bytes(), dims: l.dims}
}
