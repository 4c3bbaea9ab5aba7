package life

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceStep applies B3/S23 cell by cell with toroidal neighbours.
func referenceStep(t *testing.T, g *Grid) *Grid {
	t.Helper()
	rows, cols := g.Rows(), g.Cols()
	out, err := NewGrid(rows, cols)
	require.NoError(t, err)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.Alive(mod(r+dr, rows), mod(c+dc, cols)) {
						n++
					}
				}
			}
			alive := g.Alive(r, c)
			out.Set(r, c, n == 3 || (n == 2 && alive))
		}
	}
	return out
}

func newSim(t *testing.T, g *Grid, opts ...Option) *Simulation {
	t.Helper()
	sim, err := NewSimulation(g.Rows(), g.Cols(), opts...)
	require.NoError(t, err)
	require.NoError(t, sim.Load(g))
	return sim
}

func TestStepBlinker(t *testing.T) {
	horizontal := gridOf(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)
	vertical := gridOf(t,
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)

	sim := newSim(t, horizontal)
	ctx := context.Background()

	require.NoError(t, sim.Step(ctx))
	assert.True(t, vertical.Equal(sim.Grid()), "got\n%s", sim.Grid())
	assert.Equal(t, uint64(1), sim.Generation())

	require.NoError(t, sim.Step(ctx))
	assert.True(t, horizontal.Equal(sim.Grid()), "got\n%s", sim.Grid())
}

func TestStepStillLife(t *testing.T) {
	block := gridOf(t,
		"....",
		".OO.",
		".OO.",
		"....",
	)
	sim := newSim(t, block)
	for range 3 {
		require.NoError(t, sim.Step(context.Background()))
	}
	assert.True(t, block.Equal(sim.Grid()))
}

func TestStepGliderWraps(t *testing.T) {
	glider := gridOf(t,
		".O......",
		"..O.....",
		"OOO.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	sim := newSim(t, glider, WithWorkers(3))
	ctx := context.Background()

	for range 4 {
		require.NoError(t, sim.Step(ctx))
	}
	shifted := gridOf(t,
		"........",
		"..O.....",
		"...O....",
		".OOO....",
		"........",
		"........",
		"........",
		"........",
	)
	assert.True(t, shifted.Equal(sim.Grid()), "got\n%s", sim.Grid())

	// A glider crosses an 8x8 torus in 32 generations.
	for range 28 {
		require.NoError(t, sim.Step(ctx))
	}
	assert.True(t, glider.Equal(sim.Grid()), "got\n%s", sim.Grid())
	assert.Equal(t, 5, sim.Population())
}

func TestStepMatchesReference(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 9}, {9, 1}, {2, 2}, {3, 3}, {5, 64}, {7, 65}, {17, 130}}
	rng := rand.New(rand.NewSource(42))

	for _, shape := range shapes {
		for _, workers := range []int{1, 4} {
			g, err := NewGrid(shape[0], shape[1])
			require.NoError(t, err)
			g.FillRandom(rng, 3)

			sim := newSim(t, g, WithWorkers(workers))
			want := g
			for gen := 0; gen < 6; gen++ {
				want = referenceStep(t, want)
				require.NoError(t, sim.Step(context.Background()))
				require.True(t, want.Equal(sim.Grid()),
					"shape=%v workers=%d gen=%d\nwant\n%s\ngot\n%s", shape, workers, gen+1, want, sim.Grid())
			}
		}
	}
}

func TestUpdateOnlyWhenRunning(t *testing.T) {
	sim, err := NewSimulation(5, 5)
	require.NoError(t, err)
	sim.Toggle(2, 1)
	sim.Toggle(2, 2)
	sim.Toggle(2, 3)
	before := sim.Grid()
	ctx := context.Background()

	assert.False(t, sim.IsRunning())
	require.NoError(t, sim.Update(ctx))
	assert.True(t, before.Equal(sim.Grid()))
	assert.Equal(t, uint64(0), sim.Generation())

	sim.Start()
	assert.True(t, sim.IsRunning())
	require.NoError(t, sim.Update(ctx))
	assert.False(t, before.Equal(sim.Grid()))

	sim.Stop()
	require.NoError(t, sim.Update(ctx))
	assert.Equal(t, uint64(1), sim.Generation())
}

func TestSimulationClearRandomize(t *testing.T) {
	a, err := NewSimulation(20, 30, WithSeed(7), WithDensity(2))
	require.NoError(t, err)
	b, err := NewSimulation(20, 30, WithSeed(7), WithDensity(2))
	require.NoError(t, err)

	a.Randomize()
	b.Randomize()
	assert.True(t, a.Grid().Equal(b.Grid()))
	assert.Positive(t, a.Population())

	a.Clear()
	assert.Equal(t, 0, a.Population())
}

func TestSimulationLoad(t *testing.T) {
	sim, err := NewSimulation(3, 4)
	require.NoError(t, err)

	g, err := NewGrid(4, 3)
	require.NoError(t, err)
	err = sim.Load(g)

	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.ExpectedRows)
	assert.Equal(t, 4, mismatch.ActualRows)

	t.Run("copies", func(t *testing.T) {
		g := gridOf(t, "O...", "....", "....")
		require.NoError(t, sim.Load(g))
		g.Clear()
		assert.True(t, sim.Alive(0, 0))
	})
}

func TestStepCancelled(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	sim, err := NewSimulation(8, 8, WithMetricsCollector(metrics))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sim.Step(ctx), context.Canceled)
	assert.Equal(t, uint64(0), sim.Generation())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.StepCount)
	assert.Equal(t, int64(1), stats.StepErrors)
}

func TestSimulationObservability(t *testing.T) {
	var buf bytes.Buffer
	metrics := &BasicMetricsCollector{}
	sim, err := NewSimulation(5, 5,
		WithLogger(NewJSONLogger(&buf, slog.LevelDebug)),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)
	require.NoError(t, sim.Load(gridOf(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)))

	sim.Start()
	for range 3 {
		require.NoError(t, sim.Update(context.Background()))
	}
	sim.Stop()

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.StepCount)
	assert.Equal(t, int64(0), stats.StepErrors)
	assert.Equal(t, int64(3), stats.LastPopulation)
	assert.Equal(t, int64(3), stats.PeakPopulation)

	out := buf.String()
	assert.Contains(t, out, `"msg":"simulation started"`)
	assert.Contains(t, out, `"msg":"step completed"`)
	assert.Contains(t, out, `"msg":"simulation stopped"`)
	assert.Contains(t, out, `"rows":5`)
}
