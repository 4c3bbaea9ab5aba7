package bitvec

import (
	"fmt"
	"strings"
)

// String renders the bits as '1' and '0', highest index first. An empty
// vector renders as "".
func (b *BitVector) String() string {
	n := b.Len()
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)
	for i := n - 1; i >= 0; i-- {
		if b.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse is the inverse of String: the first character is the highest bit.
// The empty string yields an empty vector.
func Parse(s string) (*BitVector, error) {
	if s == "" {
		return New(), nil
	}

	b, err := NewSized(len(s), 0)
	if err != nil {
		return nil, err
	}
	last := len(s) - 1
	for pos := 0; pos < len(s); pos++ {
		switch s[pos] {
		case '1':
			b.words[(last-pos)>>wordShift] |= bitMask(last - pos)
		case '0':
		default:
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidArgument, s[pos], pos)
		}
	}
	return b, nil
}
