package bitvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaringRoundTrip(t *testing.T) {
	v := fromIndices(t, 150, 0, 1, 64, 149)

	rb, err := v.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 64, 149}, rb.ToArray())

	back, err := FromRoaring(rb, v.Len())
	require.NoError(t, err)
	assert.True(t, Equal(v, back))

	t.Run("empty", func(t *testing.T) {
		rb, err := New().ToRoaring()
		require.NoError(t, err)
		assert.True(t, rb.IsEmpty())

		got, err := FromRoaring(nil, 0)
		require.NoError(t, err)
		assert.True(t, got.Empty())

		got, err = FromRoaring(roaring.New(), 10)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Len())
		assert.Equal(t, 0, got.Count())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := FromRoaring(roaring.BitmapOf(1), -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = FromRoaring(roaring.BitmapOf(1), 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = FromRoaring(roaring.BitmapOf(3, 10), 10)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBitSetRoundTrip(t *testing.T) {
	v := mustSized(t, 70, 0xF0F0F0F0F0F0F0F0)

	bs := v.ToBitSet()
	assert.Equal(t, uint(70), bs.Len())
	assert.Equal(t, uint(v.Count()), bs.Count())

	back, err := FromBitSet(bs)
	require.NoError(t, err)
	assert.True(t, Equal(v, back))

	t.Run("copy is independent", func(t *testing.T) {
		bs.Set(0)
		ok, err := v.Test(0)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, uint(0), New().ToBitSet().Len())

		got, err := FromBitSet(nil)
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}

// TestAgainstBitSet checks the word kernels against bits-and-blooms/bitset.
func TestAgainstBitSet(t *testing.T) {
	rng := testutil.NewRNG(2024)

	for _, n := range []int{1, 31, 64, 65, 128, 129, 1000} {
		for round := 0; round < 5; round++ {
			x, y := rng.Bools(n), rng.Bools(n)
			a, b := fromBools(t, x), fromBools(t, y)

			ra, rb := bitset.New(uint(n)), bitset.New(uint(n))
			for i := 0; i < n; i++ {
				if x[i] {
					ra.Set(uint(i))
				}
				if y[i] {
					rb.Set(uint(i))
				}
			}

			assert.Equal(t, int(ra.Count()), a.Count(), "count n=%d", n)

			and, or, xor := a.Clone(), a.Clone(), a.Clone()
			require.NoError(t, and.And(b))
			require.NoError(t, or.Or(b))
			require.NoError(t, xor.Xor(b))

			wantAnd, wantOr, wantXor := ra.Clone(), ra.Clone(), ra.Clone()
			wantAnd.InPlaceIntersection(rb)
			wantOr.InPlaceUnion(rb)
			wantXor.InPlaceSymmetricDifference(rb)

			assertMatchesBitSet(t, wantAnd, and)
			assertMatchesBitSet(t, wantOr, or)
			assertMatchesBitSet(t, wantXor, xor)

			not, err := a.Not()
			require.NoError(t, err)
			assertMatchesBitSet(t, ra.Complement(), not)
		}
	}
}

func assertMatchesBitSet(t *testing.T, want *bitset.BitSet, got *BitVector) {
	t.Helper()
	require.Equal(t, got.Count(), int(want.Count()))
	for i := 0; i < got.Len(); i++ {
		ok, err := got.Test(i)
		require.NoError(t, err)
		require.Equal(t, want.Test(uint(i)), ok, "bit %d", i)
	}
}
