package life

import (
	"context"

	"golang.org/x/time/rate"
)

// GenerationFunc observes the grid after each generation. Returning an error
// ends the run with that error.
type GenerationFunc func(generation uint64, g *Grid) error

// Runner drives a Simulation at a bounded number of generations per second.
type Runner struct {
	sim     *Simulation
	limiter *rate.Limiter
}

// NewRunner paces sim at genPerSec generations per second. A non-positive
// rate runs unthrottled.
func NewRunner(sim *Simulation, genPerSec float64) *Runner {
	limit := rate.Inf
	if genPerSec > 0 {
		limit = rate.Limit(genPerSec)
	}
	return &Runner{
		sim:     sim,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run starts the simulation and advances it until generations steps were
// taken (0 means no limit), ctx is done, fn fails or fn stops the
// simulation. The simulation is stopped again on return.
func (r *Runner) Run(ctx context.Context, generations int, fn GenerationFunc) error {
	r.sim.Start()
	defer r.sim.Stop()

	for i := 0; generations <= 0 || i < generations; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		if err := r.sim.Update(ctx); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(r.sim.Generation(), r.sim.Grid()); err != nil {
				return err
			}
		}
		if !r.sim.IsRunning() {
			return nil
		}
	}
	return nil
}
