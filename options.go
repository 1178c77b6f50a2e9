package unitgo

import (
	"log/slog"

	"github.com/hupe1980/unitgo/blobstore"
	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/codec"
)

type options struct {
	codec            codec.Codec
	compression      catalog.Compression
	store            blobstore.Store
	concurrency      int
	builtins         bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures New.
type Option func(*options)

// WithCodec configures the codec used to encode snapshot payloads.
// Loading selects the codec recorded in the snapshot header.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied to snapshot payloads.
// Payloads that do not shrink are stored uncompressed.
func WithCompression(c catalog.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithStore configures the blob store used by Save and Load.
//
// Example with a local directory:
//
//	reg, _ := unitgo.New(unitgo.WithStore(blobstore.NewLocalStore("./snapshots")))
//	_ = reg.Save(ctx, "custom.snap")
func WithStore(s blobstore.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithConcurrency limits the number of goroutines used by ConvertBatch.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithoutBuiltins starts from an empty registry instead of the SI catalogue.
func WithoutBuiltins() Option {
	return func(o *options) {
		o.builtins = false
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unitgo.BasicMetricsCollector{}
//	reg, _ := unitgo.New(unitgo.WithMetricsCollector(metrics))
//	// ... use reg ...
//	stats := metrics.GetStats()
//	fmt.Printf("Conversions: %d, Avg latency: %dns\n", stats.ConvertCount, stats.ConvertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := unitgo.NewJSONLogger(slog.LevelInfo)
//	reg, _ := unitgo.New(unitgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
