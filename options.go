package kmeanstree

import "kmeanstree/kmeans"

type options struct {
	branching   int
	iterations  int
	seed        kmeans.SeedStrategy
	cbIndex     float64
	copyDataset bool
	distance    kmeans.Distance
	rng         kmeans.Rng
	logger      *Logger
	rngSeed     int64
}

// Option configures New/Builder behavior.
type Option func(*options)

// WithBranching sets the number of children each internal node splits
// into. Default 32.
func WithBranching(n int) Option {
	return func(o *options) { o.branching = n }
}

// WithIterations caps Lloyd refinement rounds per node. Negative means
// unbounded. Default 11.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithSeedStrategy selects the center-seeding algorithm. Default
// kmeans.SeedRandom.
func WithSeedStrategy(s kmeans.SeedStrategy) Option {
	return func(o *options) { o.seed = s }
}

// WithCbIndex sets the approximate search's variance-boost coefficient.
// Default 0.4.
func WithCbIndex(cbIndex float64) Option {
	return func(o *options) { o.cbIndex = cbIndex }
}

// WithCopyDataset makes the index take an owned copy of the dataset handed
// to New, rather than aliasing the caller's Matrix.
func WithCopyDataset() Option {
	return func(o *options) { o.copyDataset = true }
}

// WithDistance overrides the distance oracle. Default metric.SquaredL2.
func WithDistance(d kmeans.Distance) Option {
	return func(o *options) { o.distance = d }
}

// WithRng overrides the random source. Default a rng.Source seeded from
// WithRngSeed (0 if not set).
func WithRng(r kmeans.Rng) Option {
	return func(o *options) { o.rng = r }
}

// WithRngSeed seeds the default rng.Source. Ignored if WithRng is also
// passed.
func WithRngSeed(seed int64) Option {
	return func(o *options) { o.rngSeed = seed }
}

// WithLogger configures structured logging for operations. Pass nil to
// disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) { o.logger = logger }
}

func defaultOptions() options {
	d := kmeans.DefaultParams()
	return options{
		branching:   d.Branching,
		iterations:  d.MaxIter,
		seed:        d.SeedStrategy,
		cbIndex:     d.CbIndex,
		copyDataset: false,
		logger:      NoopLogger(),
	}
}

func (o options) params() kmeans.Params {
	return kmeans.Params{
		Branching:    o.branching,
		MaxIter:      o.iterations,
		SeedStrategy: o.seed,
		CbIndex:      o.cbIndex,
		CopyDataset:  o.copyDataset,
	}
}
