package ising

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/pkg/core"
)

func TestTryFlipSiteAcceptsDownhillWithoutDraw(t *testing.T) {
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	for _, accept := range []float64{0, 0.5, 0.999} {
		lat.Fill(Up)
		require.NoError(t, lat.Set(Position{X: 1, Y: 1}, Down))
		src := &scriptedUniform{draws: []float64{0.3, 0.3, accept}}
		e := NewEngine(lat, core.Wrap(src))

		assert.True(t, e.TryFlipSite())
		assert.Equal(t, 2, src.calls, "downhill flip must not draw")
		assert.Equal(t, 1.0, lat.Magnetization())
	}
}

func TestTryFlipSiteAcceptsNeutralWithoutDraw(t *testing.T) {
	// Two of (1,1)'s four neighbours are Down, so the neighbour sum and the
	// energy change are both zero.
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	require.NoError(t, lat.Set(Position{X: 0, Y: 1}, Down))
	require.NoError(t, lat.Set(Position{X: 2, Y: 1}, Down))
	sum, err := lat.NeighborSum(Position{X: 1, Y: 1})
	require.NoError(t, err)
	dE, err := lat.DeltaEnergy(Position{X: 1, Y: 1}, sum)
	require.NoError(t, err)
	require.Zero(t, dE)

	src := &scriptedUniform{draws: []float64{0.3, 0.3, 0.9999}}
	e := NewEngine(lat, core.Wrap(src))

	assert.True(t, e.TryFlipSite())
	assert.Equal(t, 2, src.calls, "neutral flip must not draw")
	s, err := lat.SpinAt(Position{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, Down, s)
}

func TestRandomPositionDrawsRowFirst(t *testing.T) {
	e := NewEngine(filledLattice(t, 8, 4, 1, 0, Up), core.Wrap(&scriptedUniform{draws: []float64{0.5, 0.25}}))
	assert.Equal(t, Position{X: 2, Y: 2}, e.RandomPosition())

	e = NewEngine(filledLattice(t, 8, 4, 1, 0, Up), core.Wrap(&scriptedUniform{draws: []float64{0.25, 0.5}}))
	assert.Equal(t, Position{X: 4, Y: 1}, e.RandomPosition())
}

func TestTryFlipSiteRejectsUphillAboveBoltzmann(t *testing.T) {
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	before := lat.View().AppendWords(nil)
	src := &scriptedUniform{draws: []float64{0, 0, 0.5}}
	e := NewEngine(lat, core.Wrap(src))

	assert.False(t, e.TryFlipSite())
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, before, lat.View().AppendWords(nil))
	assert.Equal(t, Stats{Trials: 1}, e.Stats())
}

func TestTryFlipSiteAcceptsUphillBelowBoltzmann(t *testing.T) {
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	src := &scriptedUniform{draws: []float64{0.5, 0.75, 0}}
	e := NewEngine(lat, core.Wrap(src))

	assert.True(t, e.TryFlipSite())
	s, err := lat.SpinAt(Position{X: 3, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, Down, s)
	assert.Equal(t, Stats{Trials: 1, Accepted: 1}, e.Stats())
	assert.Equal(t, 1.0, e.Stats().AcceptanceRate())
}

func TestSweepRunsExactTrialCount(t *testing.T) {
	// Every trial lands on (3,3) of an all-up lattice and is rejected, so
	// each one consumes exactly three draws.
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	src := &scriptedUniform{draws: []float64{0.9}}
	e := NewEngine(lat, core.Wrap(src))

	assert.Equal(t, 0, e.Sweep(250))
	assert.Equal(t, 750, src.calls)
	assert.Equal(t, uint64(250), e.Stats().Trials)

	seeded := NewEngine(filledLattice(t, 8, 8, 1, 0.2, Down), core.NewRNG(11))
	accepted := seeded.Sweep(DefaultTrials)
	assert.Equal(t, uint64(DefaultTrials), seeded.Stats().Trials)
	assert.Equal(t, uint64(accepted), seeded.Stats().Accepted)

	seeded.ResetStats()
	assert.Equal(t, Stats{}, seeded.Stats())
	assert.Equal(t, 0.0, seeded.Stats().AcceptanceRate())
}

func TestSweepContextStopsBetweenChunks(t *testing.T) {
	lat := filledLattice(t, 4, 4, 1, 0, Up)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &scriptedUniform{draws: []float64{0.9}, after: func(calls int) {
		if calls == 30 {
			cancel()
		}
	}}
	e := NewEngine(lat, core.Wrap(src))

	_, err := e.SweepContext(ctx, 100, 10)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(10), e.Stats().Trials)
}

func TestSweepContextCompletes(t *testing.T) {
	e := NewEngine(filledLattice(t, 4, 4, 1, 0, Up), core.NewRNG(2))
	_, err := e.SweepContext(context.Background(), 95, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(95), e.Stats().Trials)

	_, err = e.SweepContext(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), e.Stats().Trials)
}

func TestStrongFieldAlignsLattice(t *testing.T) {
	lat, err := New(Dimensions{Width: 16, Height: 16}, 1, 1, core.NewRNG(42))
	require.NoError(t, err)
	e := NewEngine(lat, core.NewRNG(43))

	e.Sweep(200 * lat.Len())
	assert.Greater(t, lat.Magnetization(), 0.9)
}

func TestRandomPositionInBounds(t *testing.T) {
	e := NewEngine(filledLattice(t, 7, 3, 1, 0, Up), core.NewRNG(9))
	for i := 0; i < 1000; i++ {
		p := e.RandomPosition()
		require.Less(t, p.X, uint32(7))
		require.Less(t, p.Y, uint32(3))
	}
}
