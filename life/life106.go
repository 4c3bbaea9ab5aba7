package life

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/bitvec"
)

// DefaultRule is the only rule the simulation implements.
const DefaultRule = "B3/S23"

const life106Header = "#Life 1.06"

type cell struct{ x, y int }

func isLife106(data []byte) bool {
	for line := range bytes.Lines(data) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		line = bytes.TrimPrefix(line, []byte("#"))
		return bytes.EqualFold(line, []byte("Life 1.06"))
	}
	return false
}

// ReadLife106 decodes the Life 1.06 format: a "#Life 1.06" header followed
// by one "x y" coordinate pair per live cell, relative to the grid centre.
// "#N" sets Name, "#D" adds a comment and "#R" sets Rule. Duplicate
// coordinates and unsupported rules are reported in Warnings.
func ReadLife106(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	seen := make(map[cell]struct{})
	var cells []cell
	header := false

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !header {
			if !strings.EqualFold(strings.TrimPrefix(line, "#"), "Life 1.06") {
				return nil, &ParseError{Line: lineNo, Msg: "missing Life 1.06 header"}
			}
			header = true
			continue
		}

		if rest, ok := strings.CutPrefix(line, "#"); ok {
			tag, value, _ := strings.Cut(rest, " ")
			value = strings.TrimSpace(value)
			switch tag {
			case "N":
				p.Name = value
			case "D", "C":
				p.Comments = append(p.Comments, value)
			case "R":
				p.Rule = value
				if !strings.EqualFold(value, DefaultRule) {
					p.Warnings = append(p.Warnings, fmt.Sprintf("line %d: unsupported rule %q, using %s", lineNo, value, DefaultRule))
				}
			default:
				p.Warnings = append(p.Warnings, fmt.Sprintf("line %d: ignored directive #%s", lineNo, tag))
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected \"x y\", got %q", line)}
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid x coordinate %q", fields[0])}
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid y coordinate %q", fields[1])}
		}

		c := cell{x: x, y: y}
		if _, dup := seen[c]; dup {
			p.Warnings = append(p.Warnings, fmt.Sprintf("line %d: Duplicate coordinate (%d, %d)", lineNo, x, y))
			continue
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if !header {
		return nil, &ParseError{Line: 1, Msg: "missing Life 1.06 header"}
	}
	if len(cells) == 0 {
		return p, nil
	}

	minX, maxX, minY, maxY := cells[0].x, cells[0].x, cells[0].y, cells[0].y
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.x), max(maxX, c.x)
		minY, maxY = min(minY, c.y), max(maxY, c.y)
	}
	width, height := maxX-minX+1, maxY-minY+1
	if width > maxPatternExtent || height > maxPatternExtent || width <= 0 || height <= 0 {
		return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("pattern exceeds %d cells", maxPatternExtent)}
	}

	p.Width = width
	p.Rows = make([]*bitvec.BitVector, height)
	for r := range p.Rows {
		row, err := bitvec.NewSized(width, 0)
		if err != nil {
			return nil, err
		}
		p.Rows[r] = row
	}
	for _, c := range cells {
		_ = p.Rows[c.y-minY].Set(c.x-minX, true)
	}
	p.OffsetRow, p.OffsetCol = minY, minX
	return p, nil
}

// WriteLife106 encodes p in the Life 1.06 format.
func (p *Pattern) WriteLife106(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(life106Header)
	sb.WriteByte('\n')
	if p.Name != "" {
		fmt.Fprintf(&sb, "#N %s\n", p.Name)
	}
	for _, c := range p.Comments {
		fmt.Fprintf(&sb, "#D %s\n", c)
	}
	rule := p.Rule
	if rule == "" {
		rule = DefaultRule
	}
	fmt.Fprintf(&sb, "#R %s\n", rule)

	for r, row := range p.Rows {
		for c := range row.Ones() {
			fmt.Fprintf(&sb, "%d %d\n", p.OffsetCol+c, p.OffsetRow+r)
		}
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
