package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the error kind for rejected arguments: non-positive
	// sizes, negative shifts, size mismatches and malformed text.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is the error kind for indices outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned by operations that need backing storage when the
	// vector is in the empty (never sized or cleared) state.
	ErrEmpty = fmt.Errorf("%w: bit vector must be non-zero", ErrInvalidArgument)
)

// ErrInvalidSize indicates a non-positive size passed to NewSized or Resize.
//
// It unwraps to ErrInvalidArgument.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d (must be > 0)", e.Size)
}

func (e *ErrInvalidSize) Unwrap() error { return ErrInvalidArgument }

// ErrNegativeShift indicates a negative shift or rotation amount.
//
// It unwraps to ErrInvalidArgument.
type ErrNegativeShift struct {
	Amount int
}

func (e *ErrNegativeShift) Error() string {
	return fmt.Sprintf("shift amount cannot be negative: %d", e.Amount)
}

func (e *ErrNegativeShift) Unwrap() error { return ErrInvalidArgument }

// ErrSizeMismatch indicates operands of different lengths for a bitwise
// operation.
//
// It unwraps to ErrInvalidArgument.
type ErrSizeMismatch struct {
	Op    string
	Left  int
	Right int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("bit vectors must be of the same size for %s operation (%d != %d)", e.Op, e.Left, e.Right)
}

func (e *ErrSizeMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrIndexOutOfRange indicates a single-bit access outside [0, Length).
//
// It unwraps to ErrOutOfRange.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }
