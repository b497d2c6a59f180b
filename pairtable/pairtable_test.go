package pairtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/pairtable"
)

func TestEstimateMatchesNewAllocationSize(t *testing.T) {
	n, w := 5, 2
	tbl := pairtable.New[float64](n, w, 0)
	assert.Equal(t, int(pairtable.Estimate(n, w)), tbl.Len())
}

func TestEstimateFullWidthIsDensePairs(t *testing.T) {
	n := 4
	// with w = n, every X is allocated a block of size 2^(n-|X|); summed
	// over all X this equals 3^n (each element is in X, in Y, or in
	// neither).
	got := pairtable.Estimate(n, n)
	assert.EqualValues(t, 81, got) // 3^4
}

func TestGetSetRoundTrip(t *testing.T) {
	n, w := 4, 4
	tbl := pairtable.New[float64](n, w, -1)

	x := bitset.Empty(n).Add(0)
	y := bitset.Empty(n).Add(1).Add(2)

	require.NoError(t, tbl.Set(x, y, 42))
	got, err := tbl.Get(x, y)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestGetDefaultIsInitial(t *testing.T) {
	n, w := 3, 3
	tbl := pairtable.New[float64](n, w, -7)

	got, err := tbl.Get(bitset.Empty(n), bitset.Empty(n))
	require.NoError(t, err)
	assert.Equal(t, -7.0, got)
}

func TestGetOverlapError(t *testing.T) {
	n, w := 3, 3
	tbl := pairtable.New[float64](n, w, 0)

	x := bitset.Empty(n).Add(0)
	y := bitset.Empty(n).Add(0)
	_, err := tbl.Get(x, y)
	assert.ErrorIs(t, err, pairtable.ErrOverlap)
}

func TestGetUnallocatedXError(t *testing.T) {
	n, w := 4, 1
	tbl := pairtable.New[float64](n, w, 0)

	x := bitset.Empty(n).Add(0).Add(1).Add(2)
	_, err := tbl.Get(x, bitset.Empty(n))
	assert.ErrorIs(t, err, pairtable.ErrNotAllocated)
}

func TestDistinctYsWithinBlockDoNotCollide(t *testing.T) {
	n, w := 5, 5
	tbl := pairtable.New[float64](n, w, 0)

	x := bitset.Empty(n).Add(1).Add(3)
	complement := bitset.Complete(n).Minus(x)

	seen := map[int]bool{}
	for i := 0; i < n; i++ {
		if !complement.Has(i) {
			continue
		}
		y := bitset.Empty(n).Add(i)
		require.NoError(t, tbl.Set(x, y, float64(i)))
	}
	for i := 0; i < n; i++ {
		if !complement.Has(i) {
			continue
		}
		y := bitset.Empty(n).Add(i)
		v, err := tbl.Get(x, y)
		require.NoError(t, err)
		assert.Equal(t, float64(i), v)
		assert.False(t, seen[int(v)])
		seen[int(v)] = true
	}
}
