package shufflerooster

import (
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Grouper or Session with optional dependencies.
type Option func(*options)

// options holds optional Grouper and Session configuration.
type options struct {
	seed        uint64
	seeded      bool
	random      RandomSource
	noShuffle   bool
	groupColumn string
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
	tracer      trace.Tracer
}

// WithSeed makes grouping reproducible.
//
// Every Group call builds a fresh generator from the seed, so the same input
// and seed always yield the same partition, and concurrent calls never share
// generator state.
//
// Parameters:
//   - seed: Generator seed (see rng.ParseSeed for text seeds)
//
// Returns:
//   - Option: Functional option for NewGrouper and NewSession
//
// Example:
//
//	g := shufflerooster.NewGrouper(shufflerooster.WithSeed(2024))
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRandomSource supplies the random source used for every draw.
//
// The source is shared by all calls; the caller owns its synchronization.
// Takes precedence over WithSeed.
//
// Parameters:
//   - src: RandomSource implementation
//
// Returns:
//   - Option: Functional option for NewGrouper and NewSession
//
// Example:
//
//	g := shufflerooster.NewGrouper(shufflerooster.WithRandomSource(rng.NewSequence(0, 1)))
func WithRandomSource(src RandomSource) Option {
	return func(o *options) {
		o.random = src
	}
}

// WithShuffle enables or disables the shuffle step (default: enabled).
//
// Without shuffling, records are bucketed in input order; redistribution of
// an undersized trailing group is still random.
func WithShuffle(enabled bool) Option {
	return func(o *options) {
		o.noShuffle = !enabled
	}
}

// WithGroupColumn sets the name of the group id column in tabular output
// (default: "GROUP").
func WithGroupColumn(name string) Option {
	return func(o *options) {
		o.groupColumn = name
	}
}

// WithHooks sets lifecycle event hooks. Only a Session invokes hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSession
//
// Example:
//
//	hooks := &shufflerooster.Hooks{
//	    OnPartitioned: func(ctx context.Context, p *shufflerooster.Partition) error {
//	        return notify(p.GroupCount())
//	    },
//	}
//	s := shufflerooster.NewSession(shufflerooster.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewGrouper and NewSession
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.NewRegistry(), "")
//	g := shufflerooster.NewGrouper(shufflerooster.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation, e.g. logging.SlogLogger
//
// Returns:
//   - Option: Functional option for NewGrouper and NewSession
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	g := shufflerooster.NewGrouper(shufflerooster.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer used for Session spans
// (default: the global tracer provider).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
