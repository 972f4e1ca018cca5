package nibble

import "math/bits"

func (n Nibble) And(rhs Nibble) Nibble { return Nibble{v: n.v & rhs.v} }
func (n Nibble) Or(rhs Nibble) Nibble  { return Nibble{v: n.v | rhs.v} }
func (n Nibble) Xor(rhs Nibble) Nibble { return Nibble{v: n.v ^ rhs.v} }

// Not flips the four value bits only.
func (n Nibble) Not() Nibble { return Nibble{v: ^n.v & Mask} }

// Shl shifts left and drops bits pushed past bit 3.
func (n Nibble) Shl(s uint) Nibble {
	return Truncate(uint(n.v) << s)
}

func (n Nibble) Shr(s uint) Nibble {
	return Nibble{v: uint8(uint(n.v) >> s)}
}

func (n Nibble) OnesCount() int {
	return bits.OnesCount8(n.v)
}

// LeadingZeros counts within the 4-bit width, so zero has four.
func (n Nibble) LeadingZeros() int {
	return bits.LeadingZeros8(n.v) - (8 - BitWidth)
}

func (n Nibble) TrailingZeros() int {
	if n.v == 0 {
		return BitWidth
	}
	return bits.TrailingZeros8(n.v)
}
