package bitvec

import "github.com/hupe1980/bitvec/internal/simd"

func (b *BitVector) checkShift(n int) error {
	if n < 0 {
		return &ErrNegativeShift{Amount: n}
	}
	if b == nil || len(b.words) == 0 {
		return ErrEmpty
	}
	return nil
}

// ShiftLeft shifts all bits n positions towards higher indices, filling the
// vacated low bits with zero. Bits shifted past Len()-1 are discarded.
func (b *BitVector) ShiftLeft(n int) error {
	if err := b.checkShift(n); err != nil {
		return err
	}
	if n >= b.length {
		simd.FillWords(b.words, 0)
		return nil
	}

	shiftWordsLeft(b.words, n)
	b.trim()
	return nil
}

// ShiftRight shifts all bits n positions towards lower indices, filling the
// vacated high bits with zero.
func (b *BitVector) ShiftRight(n int) error {
	if err := b.checkShift(n); err != nil {
		return err
	}
	if n >= b.length {
		simd.FillWords(b.words, 0)
		return nil
	}

	shiftWordsRight(b.words, n)
	b.trim()
	return nil
}

// RotateLeft moves bit i to position (i+n) mod Len().
func (b *BitVector) RotateLeft(n int) error {
	if err := b.checkShift(n); err != nil {
		return err
	}
	n %= b.length
	if n == 0 {
		return nil
	}
	return b.rotate(n, b.length-n)
}

// RotateRight moves bit i to position (i-n) mod Len().
func (b *BitVector) RotateRight(n int) error {
	if err := b.checkShift(n); err != nil {
		return err
	}
	n %= b.length
	if n == 0 {
		return nil
	}
	return b.rotate(b.length-n, n)
}

// rotate computes (b << left) | (b >> right) on copies and swaps the result
// in only when every step succeeded.
func (b *BitVector) rotate(left, right int) error {
	lo := b.Clone()
	if err := lo.ShiftLeft(left); err != nil {
		return err
	}
	hi := b.Clone()
	if err := hi.ShiftRight(right); err != nil {
		return err
	}
	if err := lo.Or(hi); err != nil {
		return err
	}
	b.Swap(lo)
	return nil
}

// ShiftLeft returns v << n as a fresh vector.
func ShiftLeft(v *BitVector, n int) (*BitVector, error) {
	c := v.Clone()
	if err := c.ShiftLeft(n); err != nil {
		return nil, err
	}
	return c, nil
}

// ShiftRight returns v >> n as a fresh vector.
func ShiftRight(v *BitVector, n int) (*BitVector, error) {
	c := v.Clone()
	if err := c.ShiftRight(n); err != nil {
		return nil, err
	}
	return c, nil
}

// shiftWordsLeft shifts w by n bits towards higher indices.
// Requires 0 <= n < len(w)*WordBits.
func shiftWordsLeft(w []uint64, n int) {
	whole, sub := n>>wordShift, uint(n&wordMask)

	if whole > 0 {
		copy(w[whole:], w[:len(w)-whole])
		clear(w[:whole])
	}

	if sub > 0 {
		for i := len(w) - 1; i > 0; i-- {
			w[i] = w[i]<<sub | w[i-1]>>(WordBits-sub)
		}
		w[0] <<= sub
	}
}

// shiftWordsRight shifts w by n bits towards lower indices.
// Requires 0 <= n < len(w)*WordBits.
func shiftWordsRight(w []uint64, n int) {
	whole, sub := n>>wordShift, uint(n&wordMask)

	if whole > 0 {
		copy(w, w[whole:])
		clear(w[len(w)-whole:])
	}

	if sub > 0 {
		last := len(w) - 1
		for i := 0; i < last; i++ {
			w[i] = w[i]>>sub | w[i+1]<<(WordBits-sub)
		}
		w[last] >>= sub
	}
}
