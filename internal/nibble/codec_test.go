package nibble

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

type register struct {
	Name  string   `json:"name" toml:"name"`
	Value Nibble   `json:"value" toml:"value"`
	Lanes []Nibble `json:"lanes" toml:"lanes"`
}

func TestJSONEncodesScalar(t *testing.T) {
	in := register{Name: "r0", Value: Must(12), Lanes: []Nibble{Must(0), Must(15)}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"r0","value":12,"lanes":[0,15]}`, string(data))

	var out register
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestJSONRejectsOutOfRange(t *testing.T) {
	var n Nibble
	err := json.Unmarshal([]byte(`16`), &n)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	err = json.Unmarshal([]byte(`-1`), &n)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for negative, got %v", err)
	}
	if err := json.Unmarshal([]byte(`"A"`), &n); err == nil {
		t.Fatalf("expected string form to be rejected")
	}
	n = Must(4)
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	require.Equal(t, Must(4), n)
}

func TestTOMLUsesHexDigitText(t *testing.T) {
	in := register{Name: "r1", Value: Must(10), Lanes: []Nibble{Must(1), Must(11)}}
	data, err := toml.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), "A")

	var out register
	require.NoError(t, toml.Unmarshal(data, &out))
	require.Equal(t, in, out)

	err = toml.Unmarshal([]byte("name = 'bad'\nvalue = 'G'\n"), &out)
	require.Error(t, err)
}

func TestBinaryIsOneByte(t *testing.T) {
	data, err := Must(7).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{7}, data)

	var n Nibble
	require.NoError(t, n.UnmarshalBinary([]byte{9}))
	require.Equal(t, Must(9), n)

	if err := n.UnmarshalBinary([]byte{1, 2}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if err := n.UnmarshalBinary([]byte{0x10}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
