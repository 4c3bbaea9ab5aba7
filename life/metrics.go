package life

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting simulation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordStep is called after each generation step.
	// population is the number of live cells afterwards, err is nil if
	// successful.
	RecordStep(population int, duration time.Duration, err error)

	// RecordLoad is called after a pattern file was read.
	RecordLoad(bytes int64, duration time.Duration, err error)

	// RecordSave is called after a pattern file was written.
	RecordSave(bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordLoad(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	LastPopulation atomic.Int64
	PeakPopulation atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadBytes      atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveBytes      atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(population int, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}

	p := int64(population)
	b.LastPopulation.Store(p)
	for {
		peak := b.PeakPopulation.Load()
		if p <= peak || b.PeakPopulation.CompareAndSwap(peak, p) {
			break
		}
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int64, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadBytes.Add(bytes)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int64, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveBytes.Add(bytes)
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:      b.StepCount.Load(),
		StepErrors:     b.StepErrors.Load(),
		StepAvgNanos:   b.getAvgStepNanos(),
		LastPopulation: b.LastPopulation.Load(),
		PeakPopulation: b.PeakPopulation.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadBytes:      b.LoadBytes.Load(),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveBytes:      b.SaveBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount      int64
	StepErrors     int64
	StepAvgNanos   int64
	LastPopulation int64
	PeakPopulation int64
	LoadCount      int64
	LoadErrors     int64
	LoadBytes      int64
	SaveCount      int64
	SaveErrors     int64
	SaveBytes      int64
}
