package nibble

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// A Nibble serializes as its single scalar value: a JSON number, a one-digit
// text form for TOML and other text encoders, and one byte in binary form.

func (n Nibble) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(n.v), 10), nil
}

func (n *Nibble) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("nibble: decode json: %w", err)
	}
	out, ok := Exactly(v)
	if !ok {
		return fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	*n = out
	return nil
}

func (n Nibble) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Nibble) UnmarshalText(text []byte) error {
	out, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*n = out
	return nil
}

func (n Nibble) MarshalBinary() ([]byte, error) {
	return []byte{n.v}, nil
}

func (n *Nibble) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("%w: got %d bytes want 1", ErrInvalidLength, len(data))
	}
	out, err := New(data[0])
	if err != nil {
		return err
	}
	*n = out
	return nil
}
