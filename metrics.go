package unitgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    convertCounter   prometheus.Counter
//	    convertHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordConvert(duration time.Duration, err error) {
//	    p.convertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordConvert is called after each conversion.
	// duration is the total time taken, err is nil if successful.
	RecordConvert(duration time.Duration, err error)

	// RecordBatchConvert is called after each batch conversion.
	// count is the number of conversions attempted, failed is the number that failed.
	RecordBatchConvert(count, failed int, duration time.Duration)

	// RecordLookup is called after each lookup by name or symbol.
	RecordLookup(found bool)

	// RecordDefine is called after each attempt to define a unit.
	RecordDefine(err error)

	// RecordSnapshot is called after each snapshot save or load.
	// size is the encoded snapshot size in bytes.
	RecordSnapshot(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchConvert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordLookup(bool)                          {}
func (NoopMetricsCollector) RecordDefine(error)                         {}
func (NoopMetricsCollector) RecordSnapshot(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount       atomic.Int64
	ConvertErrors      atomic.Int64
	ConvertTotalNanos  atomic.Int64
	BatchConvertCount  atomic.Int64
	BatchConvertItems  atomic.Int64
	BatchConvertFailed atomic.Int64
	LookupHits         atomic.Int64
	LookupMisses       atomic.Int64
	DefineCount        atomic.Int64
	DefineErrors       atomic.Int64
	SnapshotCount      atomic.Int64
	SnapshotErrors     atomic.Int64
	SnapshotBytes      atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
	}
}

// RecordBatchConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchConvert(count, failed int, _ time.Duration) {
	b.BatchConvertCount.Add(1)
	b.BatchConvertItems.Add(int64(count))
	b.BatchConvertFailed.Add(int64(failed))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(found bool) {
	if found {
		b.LookupHits.Add(1)
	} else {
		b.LookupMisses.Add(1)
	}
}

// RecordDefine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDefine(err error) {
	b.DefineCount.Add(1)
	if err != nil {
		b.DefineErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(size int, _ time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
		return
	}
	b.SnapshotBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConvertCount:       b.ConvertCount.Load(),
		ConvertErrors:      b.ConvertErrors.Load(),
		ConvertAvgNanos:    b.getAvgConvertNanos(),
		BatchConvertCount:  b.BatchConvertCount.Load(),
		BatchConvertItems:  b.BatchConvertItems.Load(),
		BatchConvertFailed: b.BatchConvertFailed.Load(),
		LookupHits:         b.LookupHits.Load(),
		LookupMisses:       b.LookupMisses.Load(),
		DefineCount:        b.DefineCount.Load(),
		DefineErrors:       b.DefineErrors.Load(),
		SnapshotCount:      b.SnapshotCount.Load(),
		SnapshotErrors:     b.SnapshotErrors.Load(),
		SnapshotBytes:      b.SnapshotBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgConvertNanos() int64 {
	count := b.ConvertCount.Load()
	if count == 0 {
		return 0
	}
	return b.ConvertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConvertCount       int64
	ConvertErrors      int64
	ConvertAvgNanos    int64
	BatchConvertCount  int64
	BatchConvertItems  int64
	BatchConvertFailed int64
	LookupHits         int64
	LookupMisses       int64
	DefineCount        int64
	DefineErrors       int64
	SnapshotCount      int64
	SnapshotErrors     int64
	SnapshotBytes      int64
}
