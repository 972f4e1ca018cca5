package nibble

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareIsTotal(t *testing.T) {
	for a := range All() {
		for b := range All() {
			want := 0
			if a.Get() < b.Get() {
				want = -1
			} else if a.Get() > b.Get() {
				want = 1
			}
			require.Equal(t, want, a.Compare(b))
			require.Equal(t, want < 0, a.Less(b))
			require.Equal(t, want == 0, a.Equal(b))
			require.Equal(t, want == 0, a == b)
		}
	}
}

func TestAllYieldsSixteenInOrder(t *testing.T) {
	got := slices.Collect(All())
	require.Len(t, got, 16)
	require.True(t, slices.IsSortedFunc(got, Nibble.Compare))
	require.Equal(t, Min(), got[0])
	require.Equal(t, Max(), got[15])
}

func TestRangeBounds(t *testing.T) {
	got := slices.Collect(Range(Must(3), Must(6)))
	require.Equal(t, []Nibble{Must(3), Must(4), Must(5), Must(6)}, got)

	require.Empty(t, slices.Collect(Range(Must(9), Must(2))))
	require.Equal(t, []Nibble{Must(15)}, slices.Collect(Range(Max(), Max())))

	count := 0
	for range All() {
		count++
		if count == 5 {
			break
		}
	}
	require.Equal(t, 5, count)
}

func TestNextPrevStopAtBounds(t *testing.T) {
	n, ok := Must(14).Next()
	require.True(t, ok)
	require.Equal(t, Max(), n)

	_, ok = Max().Next()
	require.False(t, ok)

	n, ok = Must(1).Prev()
	require.True(t, ok)
	require.Equal(t, Min(), n)

	_, ok = Min().Prev()
	require.False(t, ok)
}
