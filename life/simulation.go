package life

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/bitvec"
	"golang.org/x/sync/errgroup"
)

// Simulation advances a toroidal grid under the B3/S23 rules.
//
// Simulation is safe for concurrent use.
type Simulation struct {
	mu         sync.Mutex
	grid       *Grid
	next       *Grid
	running    bool
	generation uint64
	rng        *rand.Rand
	opts       options
	logger     *Logger
}

// NewSimulation returns a stopped simulation over an all-dead grid.
func NewSimulation(rows, cols int, optFns ...Option) (*Simulation, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	opts := applyOptions(optFns)

	return &Simulation{
		grid:   grid,
		next:   grid.Clone(),
		rng:    rand.New(rand.NewSource(opts.seed)),
		opts:   opts,
		logger: opts.logger.WithSize(rows, cols),
	}, nil
}

// Start lets Update advance the simulation.
func (s *Simulation) Start() {
	s.setRunning(true)
}

// Stop pauses Update. Step still advances a stopped simulation.
func (s *Simulation) Stop() {
	s.setRunning(false)
}

func (s *Simulation) setRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running == running {
		return
	}
	s.running = running
	s.logger.LogRunning(context.Background(), running, s.generation)
}

// IsRunning reports whether Update advances the simulation.
func (s *Simulation) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Generation returns the number of steps taken so far.
func (s *Simulation) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Rows returns the number of grid rows.
func (s *Simulation) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Rows()
}

// Cols returns the number of grid columns.
func (s *Simulation) Cols() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Cols()
}

// Grid returns a snapshot of the current grid.
func (s *Simulation) Grid() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Alive reports whether a cell of the current grid is alive.
func (s *Simulation) Alive(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Alive(row, col)
}

// Population returns the number of live cells.
func (s *Simulation) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Population()
}

// Clear kills every cell.
func (s *Simulation) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
}

// Randomize refills the grid from the seeded source, one live cell per
// density cells on average.
func (s *Simulation) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.FillRandom(s.rng, s.opts.density)
}

// Toggle flips a cell. Coordinates outside the grid are ignored.
func (s *Simulation) Toggle(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Toggle(row, col)
}

// Set changes a cell. Coordinates outside the grid are ignored.
func (s *Simulation) Set(row, col int, alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Set(row, col, alive)
}

// Load replaces the grid with a copy of g, which must have the same shape.
func (s *Simulation) Load(g *Grid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.Rows() != s.grid.Rows() || g.Cols() != s.grid.Cols() {
		return &ErrDimensionMismatch{
			ExpectedRows: s.grid.Rows(),
			ExpectedCols: s.grid.Cols(),
			ActualRows:   g.Rows(),
			ActualCols:   g.Cols(),
		}
	}
	s.grid = g.Clone()
	return nil
}

// LoadPattern clears the grid and stamps p around its centre.
func (s *Simulation) LoadPattern(ctx context.Context, p *Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadPattern(ctx, p)
}

func (s *Simulation) loadPattern(ctx context.Context, p *Pattern) {
	s.grid.Clear()
	s.grid.Place(p, s.grid.Rows()/2+p.OffsetRow, s.grid.Cols()/2+p.OffsetCol)
	for _, w := range p.Warnings {
		s.logger.WarnContext(ctx, "pattern warning", "pattern", p.Name, "warning", w)
	}
}

// LoadFile reads a pattern file and loads it centred.
func (s *Simulation) LoadFile(ctx context.Context, path string) (*Pattern, error) {
	start := time.Now()
	p, size, err := loadFile(path)
	s.opts.metricsCollector.RecordLoad(size, time.Since(start), err)
	if err != nil {
		s.logger.LogLoad(ctx, path, 0, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadPattern(ctx, p)
	s.logger.LogLoad(ctx, path, s.grid.Population(), nil)
	return p, nil
}

// SaveFile writes the whole grid to path as a pattern named name.
func (s *Simulation) SaveFile(ctx context.Context, path, name string) error {
	s.mu.Lock()
	p := PatternFromGrid(s.grid, name)
	s.mu.Unlock()

	start := time.Now()
	size, err := saveFile(path, p)
	s.opts.metricsCollector.RecordSave(size, time.Since(start), err)
	s.logger.LogSave(ctx, path, err)
	return err
}

// Update advances one generation if the simulation is running.
func (s *Simulation) Update(ctx context.Context) error {
	if !s.IsRunning() {
		return nil
	}
	return s.Step(ctx)
}

// Step advances one generation regardless of the running flag.
func (s *Simulation) Step(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.step(ctx)
	elapsed := time.Since(start)

	pop := 0
	if err == nil {
		pop = s.grid.Population()
	}
	s.opts.metricsCollector.RecordStep(pop, elapsed, err)
	s.logger.LogStep(ctx, s.generation, pop, elapsed, err)
	return err
}

func (s *Simulation) step(ctx context.Context) error {
	rows := s.grid.rows
	n := len(rows)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)
	for r := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			next, err := nextRow(rows[mod(r-1, n)], rows[r], rows[mod(r+1, n)])
			if err != nil {
				return fmt.Errorf("row %d: %w", r, err)
			}
			s.next.rows[r].Swap(next)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.grid, s.next = s.next, s.grid
	s.generation++
	return nil
}

// nextRow computes the successor of mid from its own and its neighbours'
// cells. The eight neighbour rows are summed with a bit-sliced counter:
// s0, s1 hold the two low bits of the count and s2 latches once the count
// reaches four. A cell lives iff the count is 3, or 2 and it is alive.
func nextRow(up, mid, down *bitvec.BitVector) (*bitvec.BitVector, error) {
	neighbours := make([]*bitvec.BitVector, 0, 8)
	for _, row := range []*bitvec.BitVector{up, mid, down} {
		west := row.Clone()
		if err := west.RotateLeft(1); err != nil {
			return nil, err
		}
		east := row.Clone()
		if err := east.RotateRight(1); err != nil {
			return nil, err
		}
		neighbours = append(neighbours, west, east)
		if row != mid {
			neighbours = append(neighbours, row)
		}
	}
	// A single-row grid has up == mid == down.
	if up == mid {
		neighbours = append(neighbours, up, down)
	}

	width := mid.Len()
	s0, err := bitvec.NewSized(width, 0)
	if err != nil {
		return nil, err
	}
	s1, s2 := s0.Clone(), s0.Clone()

	for _, v := range neighbours {
		c0 := s0.Clone()
		if err := c0.And(v); err != nil {
			return nil, err
		}
		if err := s0.Xor(v); err != nil {
			return nil, err
		}
		c1 := s1.Clone()
		if err := c1.And(c0); err != nil {
			return nil, err
		}
		if err := s1.Xor(c0); err != nil {
			return nil, err
		}
		if err := s2.Or(c1); err != nil {
			return nil, err
		}
	}

	below4, err := s2.Not()
	if err != nil {
		return nil, err
	}
	if err := s0.Or(mid); err != nil {
		return nil, err
	}
	if err := s0.And(s1); err != nil {
		return nil, err
	}
	if err := s0.And(below4); err != nil {
		return nil, err
	}
	return s0, nil
}
