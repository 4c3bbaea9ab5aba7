// Package bitvec provides a dynamic bit vector packed into 64-bit words.
//
// A BitVector is a resizable sequence of boolean flags. It supports
// construction from a seed word, in-place and free bitwise algebra, logical
// shifts and rotations across word boundaries, population counting,
// bounds-checked indexing and a textual form.
//
// # Quick Start
//
//	v, err := bitvec.NewSized(8, 0xAA) // 10101010
//	if err != nil {
//	    return err
//	}
//	_ = v.ShiftRight(1)                // 01010101
//	fmt.Println(v, v.Count())          // 01010101 4
//
// # Layout
//
// Bit i lives in word i/64 at position i%64; bit 0 is the least-significant
// bit of word 0. String renders the highest index first:
//
//	index:   7 6 5 4 3 2 1 0
//	string: "1 0 1 0 1 0 1 0"
//
// Bits of the last word beyond Len() are always zero. Every operation that
// could set them (seeding, Not, ShiftLeft, SetAll, Resize, rotations) clears
// them again before returning.
//
// # Empty State
//
// New() and the zero value hold no storage. Operations that need storage
// (Any, None, Not, ResetAll, shifts and rotations) fail with ErrEmpty on it;
// String returns "" and Count returns 0. PushBack and Resize leave the empty
// state.
//
// # Errors
//
// All failures are returned, never panicked, and leave the receiver
// unchanged. Use errors.Is with ErrInvalidArgument or ErrOutOfRange to
// classify them; errors.As exposes ErrSizeMismatch, ErrIndexOutOfRange,
// ErrInvalidSize and ErrNegativeShift for details.
//
// # Interop
//
// ToRoaring/FromRoaring convert to and from RoaringBitmap, and
// ToBitSet/FromBitSet to and from bits-and-blooms/bitset.
//
// # Concurrency
//
// A BitVector is a plain value type without internal locking. Guard shared
// instances that are mutated with a mutex.
package bitvec
