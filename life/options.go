package life

import (
	"log/slog"
	"os"
	"runtime"
)

// DefaultDensity is the reciprocal probability of a live cell after
// Randomize: one cell in four.
const DefaultDensity = 4

type options struct {
	workers          int
	seed             int64
	density          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Simulation.
type Option func(*options)

// WithWorkers caps the number of goroutines evaluating rows during Step.
//
// Values <= 0 fall back to runtime.GOMAXPROCS(0). A value of 1 evaluates
// rows sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed fixes the seed used by Randomize so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithDensity sets the reciprocal live-cell probability used by Randomize.
// Values < 1 fall back to DefaultDensity.
func WithDensity(density int) Option {
	return func(o *options) {
		o.density = density
	}
}

// WithMetricsCollector configures a metrics collector for monitoring steps.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &life.BasicMetricsCollector{}
//	sim, _ := life.NewSimulation(64, 64, life.WithMetricsCollector(metrics))
//	// ... step sim ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for simulation events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := life.NewJSONLogger(os.Stderr, slog.LevelInfo)
//	sim, _ := life.NewSimulation(64, 64, life.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a stderr text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(os.Stderr, level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(os.Stderr, level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		seed:             1,
		density:          DefaultDensity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.density < 1 {
		o.density = DefaultDensity
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
