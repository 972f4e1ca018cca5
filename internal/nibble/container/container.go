// Package container keeps the byte-level nibble helpers of earlier releases.
//
// Deprecated: use package pair, which these functions delegate to.
package container

import (
	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/pair"
	"github.com/rs/zerolog/log"
)

// Nibbles is the (left, right) tuple form of a container byte.
type Nibbles struct {
	Left  uint8
	Right uint8
}

// Create packs left into the high half and right into the low half.
// Either value above 15 is logged and yields 0.
//
// Deprecated: use pair.Combine.
func Create(left, right uint8) uint8 {
	high, err := nibble.New(left)
	if err == nil {
		var low nibble.Nibble
		if low, err = nibble.New(right); err == nil {
			return pair.Combine(high, low)
		}
	}
	log.Error().
		Str("code", "E-@NC-#001").
		Uint8("left", left).
		Uint8("right", right).
		Err(err).
		Msg("nibble overflow")
	return 0
}

// Deprecated: use pair.Combine.
func CreatePair(n Nibbles) uint8 {
	return Create(n.Left, n.Right)
}

// Destroy splits a container byte into its left and right nibbles.
//
// Deprecated: use pair.Split.
func Destroy(container uint8) (left, right uint8) {
	high, low := pair.Split(container)
	return high.Get(), low.Get()
}
