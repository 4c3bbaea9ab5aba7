package bitvec

import (
	"slices"

	"github.com/hupe1980/bitvec/internal/simd"
)

const (
	opAND = "AND"
	opOR  = "OR"
	opXOR = "XOR"
)

// inPlace reports whether an in-place op with other has words to combine.
// Two empty operands, nil included, combine to a no-op.
func (b *BitVector) inPlace(op string, other *BitVector) (bool, error) {
	if b.Len() != other.Len() {
		return false, &ErrSizeMismatch{Op: op, Left: b.Len(), Right: other.Len()}
	}
	return b.Len() > 0, nil
}

func (b *BitVector) sameSize(op string, other *BitVector) error {
	_, err := b.inPlace(op, other)
	return err
}

// And performs b &= other. Both vectors must have the same length; on
// mismatch b is left unchanged.
func (b *BitVector) And(other *BitVector) error {
	if ok, err := b.inPlace(opAND, other); !ok {
		return err
	}
	simd.AndWords(b.words, other.words)
	return nil
}

// Or performs b |= other. Both vectors must have the same length.
func (b *BitVector) Or(other *BitVector) error {
	if ok, err := b.inPlace(opOR, other); !ok {
		return err
	}
	simd.OrWords(b.words, other.words)
	return nil
}

// Xor performs b ^= other. Both vectors must have the same length.
func (b *BitVector) Xor(other *BitVector) error {
	if ok, err := b.inPlace(opXOR, other); !ok {
		return err
	}
	simd.XorWords(b.words, other.words)
	return nil
}

// Not returns the complement of b. The receiver is not modified.
func (b *BitVector) Not() (*BitVector, error) {
	if b == nil || len(b.words) == 0 {
		return nil, ErrEmpty
	}

	c := b.Clone()
	simd.NotWords(c.words)
	c.trim()
	return c, nil
}

// Words returns a copy of the backing words, bit i in word i/64. Padding
// bits of the last word are zero.
func (b *BitVector) Words() []uint64 {
	if b.WordCount() == 0 {
		return nil
	}
	return slices.Clone(b.words)
}

// And returns a & b as a fresh vector.
func And(a, b *BitVector) (*BitVector, error) {
	return combine(opAND, a, b, func(x, y bool) bool { return x && y })
}

// Or returns a | b as a fresh vector.
func Or(a, b *BitVector) (*BitVector, error) {
	return combine(opOR, a, b, func(x, y bool) bool { return x || y })
}

// Xor returns a ^ b as a fresh vector.
func Xor(a, b *BitVector) (*BitVector, error) {
	return combine(opXOR, a, b, func(x, y bool) bool { return x != y })
}

// Not returns the complement of v.
func Not(v *BitVector) (*BitVector, error) {
	return v.Not()
}

// combine builds the result bit by bit through the checked accessors, so it
// does not depend on the word layout of either operand.
func combine(op string, a, b *BitVector, fn func(x, y bool) bool) (*BitVector, error) {
	if err := a.sameSize(op, b); err != nil {
		return nil, err
	}
	n := a.Len()
	if n == 0 {
		return New(), nil
	}

	out, err := NewSized(n, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x, err := a.Test(i)
		if err != nil {
			return nil, err
		}
		y, err := b.Test(i)
		if err != nil {
			return nil, err
		}
		if err := out.Set(i, fn(x, y)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equal reports whether b and other have the same length and bits.
func (b *BitVector) Equal(other *BitVector) bool {
	return Equal(b, other)
}

// Equal reports whether a and b have the same length and bits. A nil vector
// equals an empty one.
func Equal(a, b *BitVector) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		x, err := a.Test(i)
		if err != nil {
			return false
		}
		y, err := b.Test(i)
		if err != nil {
			return false
		}
		if x != y {
			return false
		}
	}
	return true
}
