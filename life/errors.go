package life

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec"
)

var (
	// ErrInvalidPattern is the error kind for malformed pattern input.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ErrInvalidDimensions indicates a grid with a non-positive row or column
// count.
//
// It unwraps to bitvec.ErrInvalidArgument.
type ErrInvalidDimensions struct {
	Rows int
	Cols int
}

func (e *ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("invalid grid dimensions: %dx%d (both must be > 0)", e.Rows, e.Cols)
}

func (e *ErrInvalidDimensions) Unwrap() error { return bitvec.ErrInvalidArgument }

// ErrDimensionMismatch indicates a grid of the wrong shape passed to Load.
//
// It unwraps to bitvec.ErrInvalidArgument.
type ErrDimensionMismatch struct {
	ExpectedRows int
	ExpectedCols int
	ActualRows   int
	ActualCols   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %dx%d, got %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}

func (e *ErrDimensionMismatch) Unwrap() error { return bitvec.ErrInvalidArgument }

// ParseError reports a malformed line in a pattern file.
//
// It unwraps to ErrInvalidPattern.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pattern line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrInvalidPattern }
