package life

import (
	"math/rand"
	"strings"

	"github.com/hupe1980/bitvec"
)

const (
	aliveRune = 'O'
	deadRune  = '.'
)

// Grid is a rows x cols field of cells. Each row is one bit vector with
// column c stored at bit c.
type Grid struct {
	rows []*bitvec.BitVector
	cols int
}

// NewGrid returns an all-dead grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ErrInvalidDimensions{Rows: rows, Cols: cols}
	}

	g := &Grid{
		rows: make([]*bitvec.BitVector, rows),
		cols: cols,
	}
	for r := range g.rows {
		v, err := bitvec.NewSized(cols, 0)
		if err != nil {
			return nil, err
		}
		g.rows[r] = v
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.cols
}

// Alive reports whether the cell is alive. Cells outside the grid are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	ok, _ := g.rows[row].Test(col)
	return ok
}

// Set changes a cell. Writes outside the grid are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	_ = g.rows[row].Set(col, alive)
}

// Toggle flips a cell. Writes outside the grid are ignored.
func (g *Grid) Toggle(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	_ = g.rows[row].Flip(col)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for _, row := range g.rows {
		_ = row.ResetAll()
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.rows {
		n += row.Count()
	}
	return n
}

// Row returns a copy of row r, or nil if r is out of range.
func (g *Grid) Row(r int) *bitvec.BitVector {
	if r < 0 || r >= len(g.rows) {
		return nil
	}
	return g.rows[r].Clone()
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows: make([]*bitvec.BitVector, len(g.rows)),
		cols: g.cols,
	}
	for r, row := range g.rows {
		c.rows[r] = row.Clone()
	}
	return c
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.rows) != len(other.rows) || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		if !bitvec.Equal(g.rows[r], other.rows[r]) {
			return false
		}
	}
	return true
}

// FillRandom makes each cell alive with probability 1/density.
func (g *Grid) FillRandom(r *rand.Rand, density int) {
	if density < 1 {
		density = DefaultDensity
	}
	for _, row := range g.rows {
		for c := 0; c < g.cols; c++ {
			_ = row.Set(c, r.Intn(density) == 0)
		}
	}
}

// Place stamps p onto g with its top-left cell at (row, col). Coordinates
// wrap around the edges; dead pattern cells leave g untouched.
func (g *Grid) Place(p *Pattern, row, col int) {
	rows := len(g.rows)
	for pr, line := range p.Rows {
		r := mod(row+pr, rows)
		for pc := range line.Ones() {
			_ = g.rows[r].Set(mod(col+pc, g.cols), true)
		}
	}
}

// String renders one line per row, column 0 first, 'O' for alive and '.'
// for dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.rows) * (g.cols + 1))
	for r, row := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row, g.cols)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row *bitvec.BitVector, width int) {
	for c := 0; c < width; c++ {
		if ok, _ := row.Test(c); ok {
			sb.WriteByte(aliveRune)
		} else {
			sb.WriteByte(deadRune)
		}
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
