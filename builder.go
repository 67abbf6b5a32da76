package kmeanstree

import "kmeanstree/kmeans"

// Builder is a fluent, immutable Index builder: each method returns a new
// Builder with the updated configuration, so a partially configured
// Builder can be reused as a base for several variants.
type Builder struct {
	dataset kmeans.Matrix
	opts    []Option
}

// NewBuilder starts a Builder over dataset.
func NewBuilder(dataset kmeans.Matrix) Builder {
	return Builder{dataset: dataset}
}

// Branching sets the branching factor. See WithBranching.
func (b Builder) Branching(n int) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithBranching(n))
	return b
}

// Iterations caps refinement rounds. See WithIterations.
func (b Builder) Iterations(n int) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithIterations(n))
	return b
}

// SeedStrategy selects the seeding algorithm. See WithSeedStrategy.
func (b Builder) SeedStrategy(s kmeans.SeedStrategy) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithSeedStrategy(s))
	return b
}

// CbIndex sets the approximate search's variance-boost coefficient. See
// WithCbIndex.
func (b Builder) CbIndex(cbIndex float64) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithCbIndex(cbIndex))
	return b
}

// CopyDataset makes the built Index own its dataset. See WithCopyDataset.
func (b Builder) CopyDataset() Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithCopyDataset())
	return b
}

// Distance overrides the distance oracle. See WithDistance.
func (b Builder) Distance(d kmeans.Distance) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithDistance(d))
	return b
}

// Rng overrides the random source. See WithRng.
func (b Builder) Rng(r kmeans.Rng) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithRng(r))
	return b
}

// RngSeed seeds the default random source. See WithRngSeed.
func (b Builder) RngSeed(seed int64) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithRngSeed(seed))
	return b
}

// Logger configures structured logging. See WithLogger.
func (b Builder) Logger(logger *Logger) Builder {
	b.opts = append(append([]Option(nil), b.opts...), WithLogger(logger))
	return b
}

// Build constructs the Index.
func (b Builder) Build() (*Index, error) {
	return New(b.dataset, b.opts...)
}
