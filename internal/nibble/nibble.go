package nibble

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	BitWidth       = 4
	Mask     uint8 = 0x0F
	MinValue uint8 = 0
	MaxValue uint8 = 15
)

// Nibble is one 4-bit unsigned integer. The zero value is nibble 0.
// The stored value is always within [MinValue, MaxValue].
type Nibble struct {
	v uint8
}

// New builds a Nibble from v and rejects values above MaxValue.
func New(v uint8) (Nibble, error) {
	if v > MaxValue {
		return Nibble{}, fmt.Errorf("%w: %d > %d", ErrOutOfRange, v, MaxValue)
	}
	return Nibble{v: v}, nil
}

// Must is the literal form of New: it panics when v does not fit.
func Must(v uint8) Nibble {
	n, err := New(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Exactly converts v when it is representable without loss.
func Exactly[T constraints.Integer](v T) (Nibble, bool) {
	if v < 0 || v > 15 {
		return Nibble{}, false
	}
	return Nibble{v: uint8(v)}, true
}

// Truncate keeps the low four bits of v. Negative values are truncated
// in two's complement, so Truncate(-1) is 15.
func Truncate[T constraints.Integer](v T) Nibble {
	return Nibble{v: uint8(v) & Mask}
}

// Clamp saturates v into [0, 15].
func Clamp[T constraints.Integer](v T) Nibble {
	switch {
	case v < 0:
		return Nibble{v: MinValue}
	case v > 15:
		return Nibble{v: MaxValue}
	default:
		return Nibble{v: uint8(v)}
	}
}

func Min() Nibble { return Nibble{v: MinValue} }
func Max() Nibble { return Nibble{v: MaxValue} }

// Get returns the stored value.
func (n Nibble) Get() uint8 {
	return n.v
}

func (n Nibble) Uint8() uint8 {
	return n.v
}

func (n Nibble) Int8() int8 {
	return int8(n.v)
}

// Magnitude is the absolute value, which for an unsigned nibble is the value itself.
func (n Nibble) Magnitude() uint8 {
	return n.v
}

func (n Nibble) IsZero() bool {
	return n.v == 0
}
