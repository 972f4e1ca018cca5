package nibble

import (
	"fmt"
	"strconv"
)

const hexDigits = "0123456789ABCDEF"

// FromHexDigit parses one hex digit in either case.
func FromHexDigit(r rune) (Nibble, error) {
	switch {
	case '0' <= r && r <= '9':
		return Nibble{v: uint8(r - '0')}, nil
	case 'a' <= r && r <= 'f':
		return Nibble{v: uint8(r-'a') + 10}, nil
	case 'A' <= r && r <= 'F':
		return Nibble{v: uint8(r-'A') + 10}, nil
	}
	return Nibble{}, fmt.Errorf("%w: %q", ErrInvalidDigit, r)
}

// ParseHex parses s as a base-16 number that must fit in a nibble.
// Leading zeros are accepted ("0F" is 15); "10" is rejected.
func ParseHex(s string) (Nibble, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil || v > uint64(MaxValue) {
		return Nibble{}, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
	}
	return Nibble{v: uint8(v)}, nil
}

// HexDigit renders n as one uppercase hex digit.
func (n Nibble) HexDigit() rune {
	return rune(hexDigits[n.v])
}

func (n Nibble) String() string {
	return hexDigits[n.v : n.v+1]
}

func (n Nibble) GoString() string {
	return fmt.Sprintf("nibble.Nibble(%d)", n.v)
}
