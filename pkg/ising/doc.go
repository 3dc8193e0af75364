// Package ising implements a two-dimensional Ising ferromagnet on a toroidal
// square lattice: bit-packed spin storage, local energy queries and
// single-spin-flip Metropolis dynamics at kT = 1.
//
// A Lattice is not safe for concurrent use. Hosts read its state through
// View between batches of trials.
package ising
