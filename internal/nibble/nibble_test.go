package nibble

import (
	"errors"
	"math"
	"testing"

	"github.com/danmuck/nibblekit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptsEveryNibble(t *testing.T) {
	testlog.Start(t)
	for v := uint8(0); v <= MaxValue; v++ {
		n, err := New(v)
		require.NoError(t, err)
		require.Equal(t, v, n.Get())
	}
}

func TestNewRejectsAboveMax(t *testing.T) {
	testlog.Start(t)
	for v := 16; v <= math.MaxUint8; v++ {
		_, err := New(uint8(v))
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("New(%d): expected ErrOutOfRange, got %v", v, err)
		}
	}
}

func TestMustPanicsOutOfRange(t *testing.T) {
	require.Equal(t, uint8(9), Must(9).Get())
	require.PanicsWithError(t, "nibble: value out of range: 16 > 15", func() {
		Must(16)
	})
}

func TestTruncateKeepsLowBits(t *testing.T) {
	testlog.Start(t)
	for _, v := range []int64{0, 7, 15, 16, 0xAB, 0x1234, math.MaxInt64, -1, -16, -17} {
		got := Truncate(v).Get()
		want := uint8(v & 0x0F)
		if got != want {
			t.Fatalf("Truncate(%d) = %d want %d", v, got, want)
		}
	}
	require.Equal(t, uint8(0xF), Truncate(uint64(math.MaxUint64)).Get())
	require.Equal(t, uint8(0xC), Truncate(int8(-4)).Get())
}

func TestClampSaturates(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{in: -100, want: 0},
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 9, want: 9},
		{in: 15, want: 15},
		{in: 16, want: 15},
		{in: 1 << 20, want: 15},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in).Get(); got != tc.want {
			t.Fatalf("Clamp(%d) = %d want %d", tc.in, got, tc.want)
		}
	}
	require.Equal(t, MaxValue, Clamp(uint8(200)).Get())
}

func TestExactly(t *testing.T) {
	n, ok := Exactly(int32(12))
	require.True(t, ok)
	require.Equal(t, uint8(12), n.Get())

	_, ok = Exactly(-1)
	require.False(t, ok)
	_, ok = Exactly(uint16(16))
	require.False(t, ok)
}

func TestZeroValueIsMin(t *testing.T) {
	var n Nibble
	require.True(t, n.IsZero())
	require.Equal(t, Min(), n)
	require.Equal(t, uint8(15), Max().Get())
	require.Equal(t, int8(15), Max().Int8())
	require.Equal(t, uint8(15), Max().Magnitude())
	require.Equal(t, uint8(15), Max().Uint8())
}
