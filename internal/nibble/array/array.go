// Package array converts nibble sequences to and from byte sequences.
//
// Nibbles pair up high first. An odd-length input packs its trailing
// nibble into the high half of a final byte whose low half is zero, so
// FromBytes(ToBytes(ns)) only returns ns for even-length input.
package array

import (
	"fmt"
	"strings"

	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/pair"
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// PackedLen is the number of bytes ToBytes produces for n nibbles.
func PackedLen(n int) int {
	return (n + 1) / 2
}

func ToBytes(ns []nibble.Nibble) []byte {
	out := make([]byte, 0, PackedLen(len(ns)))
	i := 0
	for ; i+1 < len(ns); i += 2 {
		out = append(out, pair.Combine(ns[i], ns[i+1]))
	}
	if i < len(ns) {
		out = append(out, pair.Combine(ns[i], nibble.Min()))
	}
	return out
}

func FromBytes(bs []byte) []nibble.Nibble {
	out := make([]nibble.Nibble, 0, len(bs)*2)
	for _, b := range bs {
		high, low := pair.Split(b)
		out = append(out, high, low)
	}
	return out
}

// Widen packs ns into bytes and zero-extends each byte into T. A signed
// 8-bit T reinterprets bytes above 0x7F as negative.
func Widen[T constraints.Integer](ns []nibble.Nibble) []T {
	packed := ToBytes(ns)
	out := make([]T, len(packed))
	for i, b := range packed {
		out[i] = T(b)
	}
	return out
}

// ToUint256 is Widen for 256-bit words.
func ToUint256(ns []nibble.Nibble) []*uint256.Int {
	packed := ToBytes(ns)
	out := make([]*uint256.Int, len(packed))
	for i, b := range packed {
		out[i] = uint256.NewInt(uint64(b))
	}
	return out
}

// ToHex renders one uppercase digit per nibble.
func ToHex(ns []nibble.Nibble) string {
	var sb strings.Builder
	sb.Grow(len(ns))
	for _, n := range ns {
		sb.WriteRune(n.HexDigit())
	}
	return sb.String()
}

// FromHex parses one nibble per hex digit.
func FromHex(s string) ([]nibble.Nibble, error) {
	out := make([]nibble.Nibble, 0, len(s))
	for i, r := range s {
		n, err := nibble.FromHexDigit(r)
		if err != nil {
			return nil, fmt.Errorf("array: index %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}
