package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/bitvec/life"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func lifeFlags(fs *pflag.FlagSet) {
	fs.Int("rows", 32, "grid rows")
	fs.Int("cols", 64, "grid columns")
	fs.Int("generations", 100, "generations to run (0 runs until interrupted)")
	fs.Float64("rate", 10, "generations per second (<= 0 is unthrottled)")
	fs.Int("workers", 0, "goroutines per step (0 uses GOMAXPROCS)")
	fs.Int64("seed", 1, "seed for the random start state")
	fs.Int("density", life.DefaultDensity, "one live cell per DENSITY cells in the random start state")
	fs.String("pattern", "", "pattern file to start from (.cells, .lif, optionally .zst or .lz4)")
	fs.String("out", "", "write the final grid to this pattern file")
	fs.String("name", "", "pattern name recorded in --out")
	fs.Bool("print", false, "print the grid after every generation")
}

func newLifeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Run Conway's Game of Life on a toroidal grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runLife(ctx, cmd.OutOrStdout())
		},
	}
	lifeFlags(cmd.Flags())
	return cmd
}

func (a *app) runLife(ctx context.Context, out io.Writer) error {
	v := a.v
	metrics := &life.BasicMetricsCollector{}

	sim, err := life.NewSimulation(v.GetInt("rows"), v.GetInt("cols"),
		life.WithLogger(a.logger),
		life.WithMetricsCollector(metrics),
		life.WithWorkers(v.GetInt("workers")),
		life.WithSeed(v.GetInt64("seed")),
		life.WithDensity(v.GetInt("density")),
	)
	if err != nil {
		return err
	}

	if path := v.GetString("pattern"); path != "" {
		if _, err := sim.LoadFile(ctx, path); err != nil {
			return err
		}
	} else {
		sim.Randomize()
	}

	show := v.GetBool("print")
	if show {
		if err := printGrid(out, 0, sim.Grid()); err != nil {
			return err
		}
	}

	start := time.Now()
	runner := life.NewRunner(sim, v.GetFloat64("rate"))
	err = runner.Run(ctx, v.GetInt("generations"), func(gen uint64, g *life.Grid) error {
		if !show {
			return nil
		}
		return printGrid(out, gen, g)
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	elapsed := time.Since(start)

	if path := v.GetString("out"); path != "" {
		name := v.GetString("name")
		if name == "" {
			name = "bitvec " + a.runID
		}
		if err := sim.SaveFile(context.WithoutCancel(ctx), path, name); err != nil {
			return err
		}
	}

	stats := metrics.GetStats()
	_, err = fmt.Fprintf(out, "generations: %s, population: %s (peak %s), avg step: %s, elapsed: %s\n",
		humanize.Comma(int64(sim.Generation())),
		humanize.Comma(int64(sim.Population())),
		humanize.Comma(stats.PeakPopulation),
		time.Duration(stats.StepAvgNanos),
		elapsed.Round(time.Millisecond),
	)
	return err
}

func printGrid(w io.Writer, gen uint64, g *life.Grid) error {
	_, err := fmt.Fprintf(w, "generation %s, population %s\n%s\n\n",
		humanize.Comma(int64(gen)), humanize.Comma(int64(g.Population())), g)
	return err
}
