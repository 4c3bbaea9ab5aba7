package bitvec

import (
	"iter"
	"math/bits"
)

// NextSet returns the index of the first set bit at or after i.
// Returns false if there is none.
func (b *BitVector) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= b.Len() {
		return -1, false
	}

	w := i >> wordShift
	word := b.words[w] >> uint(i&wordMask)
	if word != 0 {
		return i + bits.TrailingZeros64(word), true
	}

	// Padding bits are zero, so any hit below is < Len().
	for w++; w < len(b.words); w++ {
		if b.words[w] != 0 {
			return w<<wordShift + bits.TrailingZeros64(b.words[w]), true
		}
	}
	return -1, false
}

// Ones iterates the indices of the set bits in ascending order.
func (b *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}
