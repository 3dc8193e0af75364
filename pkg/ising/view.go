package ising

// WordBits is the number of sites packed into one View word.
const WordBits = 64

// View is a read-only window onto a lattice's packed spins.
//
// Site k = width*y + x is stored in word k/64 at bit k%64, least
// significant bit first. A set bit is Up. Bits past the last site in the
// final word are always zero. There are ceil(width*height/64) words.
type View struct {
	words []uint64
	dims  Dimensions
}

// Dimensions returns the extent of the viewed lattice.
func (v View) Dimensions() Dimensions { return v.dims }

// Len returns the number of sites.
func (v View) Len() int { return v.dims.Len() }

// Words returns the number of 64-bit words backing the view.
func (v View) Words() int { return len(v.words) }

// Word returns the i-th packed word.
func (v View) Word(i int) uint64 { return v.words[i] }

// Bit reports whether site k is Up.
func (v View) Bit(k int) bool {
	return v.words[k/WordBits]&(1<<(uint(k)%WordBits)) != 0
}

// Spin returns the spin at (x, y) without bounds checking beyond the slice's.
func (v View) Spin(x, y uint32) Spin {
	return SpinOf(v.Bit(int(v.dims.Width)*int(y) + int(x)))
}

// AppendWords appends a copy of the packed words to dst.
func (v View) AppendWords(dst []uint64) []uint64 {
	return append(dst, v.words...)
}
