// Package pair packs two nibbles into one byte and back.
// The high nibble occupies bits 4-7, the low nibble bits 0-3.
package pair

import "github.com/danmuck/nibblekit/internal/nibble"

// Pair is the (high, low) view of one byte.
type Pair struct {
	High nibble.Nibble `json:"high"`
	Low  nibble.Nibble `json:"low"`
}

func Combine(high, low nibble.Nibble) byte {
	return high.Get()<<nibble.BitWidth | low.Get()
}

func Split(b byte) (high, low nibble.Nibble) {
	return nibble.Truncate(b >> nibble.BitWidth), nibble.Truncate(b)
}

func FromByte(b byte) Pair {
	high, low := Split(b)
	return Pair{High: high, Low: low}
}

func (p Pair) Byte() byte {
	return Combine(p.High, p.Low)
}
