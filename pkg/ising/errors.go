package ising

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a lattice would have no sites or
	// more sites than an int can index.
	ErrInvalidDimensions = errors.New("ising: invalid lattice dimensions")
	// ErrOutOfBounds is returned for positions outside [0,width)x[0,height).
	ErrOutOfBounds = errors.New("ising: position out of bounds")
)

// ConstructionError reports dimensions rejected at lattice construction.
type ConstructionError struct {
	Dims Dimensions
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("ising: cannot build %dx%d lattice", e.Dims.Width, e.Dims.Height)
}

// Unwrap lets errors.Is match ErrInvalidDimensions.
func (e *ConstructionError) Unwrap() error { return ErrInvalidDimensions }

// BoundsError reports a position outside the lattice.
type BoundsError struct {
	Pos  Position
	Dims Dimensions
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("ising: position (%d,%d) outside %dx%d lattice",
		e.Pos.X, e.Pos.Y, e.Dims.Width, e.Dims.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
