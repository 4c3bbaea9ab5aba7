package life

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bitvec"
)

// maxPatternExtent bounds the width and height of a decoded pattern.
const maxPatternExtent = 1 << 16

// Pattern is a rectangular block of cells read from or written to a pattern
// file. Every entry of Rows is Width bits long; bit c of a row is column c.
type Pattern struct {
	Name     string
	Comments []string
	// Rule is the rule string declared by the file, if any.
	Rule  string
	Rows  []*bitvec.BitVector
	Width int
	// OffsetRow and OffsetCol place the top-left cell relative to the
	// centre of the target grid.
	OffsetRow int
	OffsetCol int
	// Warnings lists recoverable problems found while decoding.
	Warnings []string
}

// Height returns the number of pattern rows.
func (p *Pattern) Height() int { return len(p.Rows) }

// Population returns the number of live cells.
func (p *Pattern) Population() int {
	n := 0
	for _, row := range p.Rows {
		n += row.Count()
	}
	return n
}

// centre offsets the pattern so its middle lands on the grid centre.
func (p *Pattern) centre() {
	p.OffsetRow = -(len(p.Rows) / 2)
	p.OffsetCol = -(p.Width / 2)
}

// PatternFromGrid captures the cells of g as a pattern covering the whole
// grid.
func PatternFromGrid(g *Grid, name string) *Pattern {
	p := &Pattern{
		Name:  name,
		Rows:  make([]*bitvec.BitVector, g.Rows()),
		Width: g.Cols(),
	}
	for r := range p.Rows {
		p.Rows[r] = g.rows[r].Clone()
	}
	p.centre()
	return p
}

// ReadPattern decodes the plaintext format: lines starting with '!' are
// comments ("!Name: x" sets Name), 'O' or '*' is alive and '.' is dead.
// Short rows are padded with dead cells.
func ReadPattern(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	var lines []string

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")

		if rest, ok := strings.CutPrefix(line, "!"); ok {
			if name, ok := strings.CutPrefix(rest, "Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else {
				p.Comments = append(p.Comments, strings.TrimSpace(rest))
			}
			continue
		}

		line = strings.TrimRight(line, " \t")
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case 'O', 'o', '*', '.':
			default:
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid cell %q at column %d", line[i], i)}
			}
		}
		if len(line) > maxPatternExtent || len(lines) >= maxPatternExtent {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("pattern exceeds %d cells", maxPatternExtent)}
		}
		lines = append(lines, line)
		p.Width = max(p.Width, len(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	// Trailing blank lines carry no cells.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if p.Width == 0 {
		return p, nil
	}

	p.Rows = make([]*bitvec.BitVector, len(lines))
	for r, line := range lines {
		row, err := bitvec.NewSized(p.Width, 0)
		if err != nil {
			return nil, err
		}
		for c := 0; c < len(line); c++ {
			if line[c] != '.' {
				_ = row.Set(c, true)
			}
		}
		p.Rows[r] = row
	}
	p.centre()
	return p, nil
}

// WriteTo encodes p in the plaintext format.
func (p *Pattern) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&sb, "!Name: %s\n", p.Name)
	}
	for _, c := range p.Comments {
		fmt.Fprintf(&sb, "!%s\n", c)
	}
	for _, row := range p.Rows {
		writeRow(&sb, row, p.Width)
		sb.WriteByte('\n')
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// DecodePattern reads a pattern in either supported format, picking Life
// 1.06 when the first non-blank line is its header.
func DecodePattern(r io.Reader) (*Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if isLife106(data) {
		return ReadLife106(bytes.NewReader(data))
	}
	return ReadPattern(bytes.NewReader(data))
}
