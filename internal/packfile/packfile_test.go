package packfile

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/array"
	"github.com/danmuck/nibblekit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []nibble.Nibble {
	t.Helper()
	ns, err := array.FromHex(s)
	require.NoError(t, err)
	return ns
}

func TestRoundTripKeepsOddLength(t *testing.T) {
	testlog.Start(t)
	for _, s := range []string{"", "5", "AB", "AB0", "123456789ABCDEF"} {
		in := mustHex(t, s)
		out, err := Unmarshal(Marshal(in), DefaultLimits())
		require.NoError(t, err, s)
		require.Equal(t, s, array.ToHex(out))
	}
}

func TestLayout(t *testing.T) {
	b := Marshal(mustHex(t, "AB5"))
	require.True(t, IsFramed(b))
	require.Equal(t, []byte{'N', 'B', 'L', '1', 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0xAB, 0x50}, b)
	require.False(t, IsFramed([]byte{0xAB, 0x50}))
}

func TestReadMalformedIsDeterministic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{1, 2, 3}), DefaultLimits())
	if !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}

	bad := EncodeHeader(Header{Magic: 0xDEADBEEF, Version: Version})
	if _, err := Unmarshal(bad, DefaultLimits()); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}

	future := EncodeHeader(Header{Magic: Magic, Version: 9})
	if _, err := Unmarshal(future, DefaultLimits()); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}

	short := append(EncodeHeader(Header{Magic: Magic, Version: Version, Count: 6}), 0x12)
	if _, err := Unmarshal(short, DefaultLimits()); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}

	huge := EncodeHeader(Header{Magic: Magic, Version: Version, Count: 1 << 40})
	if _, err := Unmarshal(huge, DefaultLimits()); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	padded := append(EncodeHeader(Header{Magic: Magic, Version: Version, Count: 1}), 0x57)
	if _, err := Unmarshal(padded, DefaultLimits()); !errors.Is(err, ErrPadding) {
		t.Fatalf("expected ErrPadding, got %v", err)
	}
}

func TestMaxCountDoesNotWrap(t *testing.T) {
	unlimited := Limits{MaxNibbles: math.MaxUint64}

	huge := EncodeHeader(Header{Magic: Magic, Version: Version, Count: math.MaxUint64})
	if _, err := Unmarshal(huge, unlimited); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	large := append(EncodeHeader(Header{Magic: Magic, Version: Version, Count: 1 << 40}), 0x12, 0x34)
	if _, err := Unmarshal(large, unlimited); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestTrailingData(t *testing.T) {
	framed := append(Marshal(mustHex(t, "AB")), 0xFF)
	if _, err := Unmarshal(framed, DefaultLimits()); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}

	// A stream reader stops at the payload and leaves the rest unread.
	r := bytes.NewReader(framed)
	ns, err := Read(r, DefaultLimits())
	if err != nil || array.ToHex(ns) != "AB" || r.Len() != 1 {
		t.Fatalf("Read: ns=%v err=%v remaining=%d", ns, err, r.Len())
	}
}
