package ising

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ising/pkg/core"
)

// scriptedUniform replays draws in a loop and counts how many were taken.
type scriptedUniform struct {
	draws []float64
	calls int
	after func(calls int)
}

func (s *scriptedUniform) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	if s.after != nil {
		s.after(s.calls)
	}
	return v
}

func filledLattice(t *testing.T, w, h uint32, coupling, field float64, s Spin) *Lattice {
	t.Helper()
	lat, err := New(Dimensions{Width: w, Height: h}, coupling, field, core.NewRNG(1))
	require.NoError(t, err)
	lat.Fill(s)
	return lat
}
