package core

import "math/rand/v2"

// Uniform is any source of uniformly distributed float64 values in [0, 1).
// *rand.Rand satisfies it, as do scripted fakes in tests.
type Uniform interface {
	Float64() float64
}

// RNG adapts a Uniform source into the draws the lattice and update engine need.
type RNG struct {
	src Uniform
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Wrap adapts an arbitrary Uniform source.
func Wrap(src Uniform) *RNG {
	return &RNG{src: src}
}

// UniformReal returns a value in [0, 1).
func (r *RNG) UniformReal() float64 {
	return r.src.Float64()
}

// UniformIndex returns an integer in [0, n) by scaling and truncating one
// real draw. It returns 0 when n is 0.
func (r *RNG) UniformIndex(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	i := uint32(r.src.Float64() * float64(n))
	if i >= n {
		// Guards sources that round a draw just below 1 up to n.
		i = n - 1
	}
	return i
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	return r.src.Float64() < p
}
