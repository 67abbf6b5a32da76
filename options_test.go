package kmeanstree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kmeanstree/kmeans"
)

func TestDefaultOptionsMatchKmeansDefaults(t *testing.T) {
	o := defaultOptions()
	d := kmeans.DefaultParams()
	assert.Equal(t, d.Branching, o.branching)
	assert.Equal(t, d.MaxIter, o.iterations)
	assert.Equal(t, d.SeedStrategy, o.seed)
	assert.Equal(t, d.CbIndex, o.cbIndex)
	assert.False(t, o.copyDataset)
}

func TestOptionsApplyOverDefaults(t *testing.T) {
	o := defaultOptions()
	for _, fn := range []Option{
		WithBranching(16),
		WithIterations(3),
		WithSeedStrategy(kmeans.SeedGonzales),
		WithCbIndex(0.7),
		WithCopyDataset(),
	} {
		fn(&o)
	}
	p := o.params()
	assert.Equal(t, 16, p.Branching)
	assert.Equal(t, 3, p.MaxIter)
	assert.Equal(t, kmeans.SeedGonzales, p.SeedStrategy)
	assert.Equal(t, 0.7, p.CbIndex)
	assert.True(t, p.CopyDataset)
}
