package ising

// Spin is the two-valued state of one lattice site, stored as a signed unit.
type Spin int8

const (
	// Down is the -1 spin state.
	Down Spin = -1
	// Up is the +1 spin state.
	Up Spin = 1
)

// SpinOf maps the packed bit representation to a Spin (set bit = Up).
func SpinOf(bit bool) Spin {
	if bit {
		return Up
	}
	return Down
}

// Bool projects the spin onto its packed bit value.
func (s Spin) Bool() bool { return s == Up }

// Weight projects the spin onto its signed numeric weight, +1 or -1.
func (s Spin) Weight() float64 {
	if s == Up {
		return 1
	}
	return -1
}

// Flip returns the opposite spin.
func (s Spin) Flip() Spin { return -s }

func (s Spin) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}
