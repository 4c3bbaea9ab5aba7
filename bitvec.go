package bitvec

import (
	"github.com/hupe1980/bitvec/internal/simd"
)

// WordBits is the number of bits per backing word.
const WordBits = 64

const (
	wordShift = 6 // log2(WordBits)
	wordMask  = WordBits - 1
)

// BitVector is a resizable sequence of bits packed into 64-bit words.
//
// Bit i lives in words[i/64] at position i%64; bit 0 is the least-significant
// bit of word 0. Bits of the last word at positions >= Len() are always zero.
//
// The zero value is an empty vector ready to use. A BitVector must not be
// mutated concurrently; concurrent readers of an unmodified vector are fine.
type BitVector struct {
	// words holds exactly wordsFor(length) words. Its capacity may be larger
	// after PushBack growth.
	words  []uint64
	length int
}

// wordsFor returns the number of words needed to hold n bits.
func wordsFor(n int) int {
	return (n + wordMask) >> wordShift
}

// lastWordMask returns the valid-bit mask of the last word of an n-bit vector.
func lastWordMask(n int) uint64 {
	rem := n & wordMask
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(rem)) - 1
}

//go:nosplit
func bitMask(i int) uint64 {
	return uint64(1) << uint(i&wordMask)
}

// trim re-establishes the zero-padding invariant on the last word.
func (b *BitVector) trim() {
	if len(b.words) == 0 {
		return
	}
	b.words[len(b.words)-1] &= lastWordMask(b.length)
}

// New returns an empty vector without backing storage.
func New() *BitVector {
	return &BitVector{}
}

// NewSized returns an n-bit vector whose words are all initialized to seed.
// The seed pattern is repeated per word, then the bits beyond n are cleared.
func NewSized(n int, seed uint64) (*BitVector, error) {
	if n <= 0 {
		return nil, &ErrInvalidSize{Size: n}
	}

	b := &BitVector{
		words:  make([]uint64, wordsFor(n)),
		length: n,
	}
	simd.FillWords(b.words, seed)
	b.trim()

	return b, nil
}

// Clone returns a deep copy of b. A nil receiver yields an empty vector.
func (b *BitVector) Clone() *BitVector {
	if b == nil {
		return New()
	}

	c := &BitVector{length: b.length}
	if len(b.words) > 0 {
		c.words = make([]uint64, len(b.words))
		copy(c.words, b.words)
	}
	return c
}

// Assign makes b an independent copy of other. Assigning b to itself is a
// no-op; a nil other clears b.
func (b *BitVector) Assign(other *BitVector) {
	if b == other {
		return
	}
	if other == nil || len(other.words) == 0 {
		b.Clear()
		return
	}

	n := len(other.words)
	if cap(b.words) >= n {
		b.words = b.words[:n]
	} else {
		b.words = make([]uint64, n)
	}
	copy(b.words, other.words)
	b.length = other.length
}

// Swap exchanges the contents of b and other in constant time.
func (b *BitVector) Swap(other *BitVector) {
	if b == other {
		return
	}
	b.words, other.words = other.words, b.words
	b.length, other.length = other.length, b.length
}

// Resize changes the length to n bits. Bits [0, min(Len(), n)) are kept and
// any newly added bits are set to fill.
func (b *BitVector) Resize(n int, fill bool) error {
	if n <= 0 {
		return &ErrInvalidSize{Size: n}
	}

	var seed uint64
	if fill {
		seed = ^uint64(0)
	}
	fresh, err := NewSized(n, seed)
	if err != nil {
		return err
	}

	keep := min(b.length, n)
	full := keep >> wordShift
	copy(fresh.words[:full], b.words[:full])
	if rem := keep & wordMask; rem != 0 {
		mask := (uint64(1) << uint(rem)) - 1
		fresh.words[full] = (b.words[full] & mask) | (fresh.words[full] &^ mask)
	}

	b.words, b.length = fresh.words, fresh.length
	return nil
}

// Clear releases the storage and returns b to the empty state.
func (b *BitVector) Clear() {
	b.words = nil
	b.length = 0
}

// PushBack appends one bit. The word buffer grows by doubling, so appends
// are amortized O(1).
func (b *BitVector) PushBack(bit bool) {
	if b.length == len(b.words)*WordBits {
		n := len(b.words)
		if n == cap(b.words) {
			grown := make([]uint64, n, max(1, 2*cap(b.words)))
			copy(grown, b.words)
			b.words = grown
		}
		b.words = b.words[:n+1]
		b.words[n] = 0
	}

	i := b.length
	b.length++
	if bit {
		b.words[i>>wordShift] |= bitMask(i)
	}
}

// Len returns the number of bits. A nil vector has length 0.
func (b *BitVector) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Empty reports whether the vector holds no bits.
func (b *BitVector) Empty() bool {
	return b.Len() == 0
}

// WordCount returns the number of backing words in use.
func (b *BitVector) WordCount() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}

func (b *BitVector) checkIndex(i int) error {
	if n := b.Len(); i < 0 || i >= n {
		return &ErrIndexOutOfRange{Index: i, Length: n}
	}
	return nil
}

// bit reads bit i without bounds checking.
func (b *BitVector) bit(i int) bool {
	return b.words[i>>wordShift]&bitMask(i) != 0
}

// Test returns the value of bit i.
func (b *BitVector) Test(i int) (bool, error) {
	if err := b.checkIndex(i); err != nil {
		return false, err
	}
	return b.bit(i), nil
}

// Set sets bit i to value.
func (b *BitVector) Set(i int, value bool) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if value {
		b.words[i>>wordShift] |= bitMask(i)
	} else {
		b.words[i>>wordShift] &^= bitMask(i)
	}
	return nil
}

// Reset clears bit i.
func (b *BitVector) Reset(i int) error {
	return b.Set(i, false)
}

// Flip toggles bit i.
func (b *BitVector) Flip(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.words[i>>wordShift] ^= bitMask(i)
	return nil
}

// SetAll sets every bit to 1. It is a no-op on an empty vector.
func (b *BitVector) SetAll() {
	if b.WordCount() == 0 {
		return
	}
	simd.FillWords(b.words, ^uint64(0))
	b.trim()
}

// ResetAll clears every bit.
func (b *BitVector) ResetAll() error {
	if b.WordCount() == 0 {
		return ErrEmpty
	}
	simd.FillWords(b.words, 0)
	return nil
}

// Any reports whether at least one bit is set.
func (b *BitVector) Any() (bool, error) {
	if b.WordCount() == 0 {
		return false, ErrEmpty
	}
	for _, w := range b.words {
		if w != 0 {
			return true, nil
		}
	}
	return false, nil
}

// None reports whether no bit is set.
func (b *BitVector) None() (bool, error) {
	set, err := b.Any()
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Count returns the number of set bits.
func (b *BitVector) Count() int {
	if b == nil {
		return 0
	}
	return simd.PopcountWords(b.words)
}
