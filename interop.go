package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the indices of the set bits.
// Vectors longer than the uint32 universe are rejected.
func (b *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	if b.Len() == 0 {
		return rb, nil
	}
	if _, err := conv.IntToUint32(b.Len() - 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	for i := range b.Ones() {
		rb.Add(uint32(i))
	}
	return rb, nil
}

// FromRoaring builds an n-bit vector with the bits listed in rb set.
// Every member of rb must be < n. An n of 0 with an empty bitmap yields an
// empty vector.
func FromRoaring(rb *roaring.Bitmap, n int) (*BitVector, error) {
	if n < 0 {
		return nil, &ErrInvalidSize{Size: n}
	}
	if rb == nil || rb.IsEmpty() {
		if n == 0 {
			return New(), nil
		}
		return NewSized(n, 0)
	}
	if n == 0 {
		return nil, &ErrInvalidSize{Size: n}
	}

	b, err := NewSized(n, 0)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		idx, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		if err := b.Set(idx, true); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ToBitSet converts b into a bits-and-blooms bitset of the same length.
// The returned set owns a copy of the words.
func (b *BitVector) ToBitSet() *bitset.BitSet {
	n := b.Len()
	if n == 0 {
		return bitset.New(0)
	}

	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return bitset.FromWithLength(uint(n), words)
}

// FromBitSet converts a bits-and-blooms bitset into a vector of length
// bs.Len().
func FromBitSet(bs *bitset.BitSet) (*BitVector, error) {
	if bs == nil || bs.Len() == 0 {
		return New(), nil
	}

	n, err := conv.UintToInt(bs.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	b, err := NewSized(n, 0)
	if err != nil {
		return nil, err
	}

	for i, ok := bs.NextSet(0); ok && i < bs.Len(); i, ok = bs.NextSet(i + 1) {
		b.words[i>>wordShift] |= uint64(1) << (i & wordMask)
	}
	return b, nil
}
