package kmeanstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanstree/kmeans"
	"kmeanstree/matrix"
)

func gridDataset() *matrix.Matrix {
	rows := make([][]float64, 0, 40)
	centers := [][2]float64{{0, 0}, {100, 0}, {0, 100}, {100, 100}}
	for _, c := range centers {
		for i := 0; i < 10; i++ {
			rows = append(rows, []float64{c[0] + float64(i)*0.1, c[1] + float64(i)*0.1})
		}
	}
	return matrix.FromRows(rows)
}

func TestNewBuildsAndSearches(t *testing.T) {
	ds := gridDataset()
	ix, err := New(ds, WithBranching(4), WithRngSeed(1))
	require.NoError(t, err)
	assert.Equal(t, ds.Rows(), ix.Size())
	assert.Equal(t, ds.Cols(), ix.Dim())

	results, err := ix.Search([]float64{0, 0}, 3, kmeans.Unlimited)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchRejectsNonPositiveK(t *testing.T) {
	ix, err := New(gridDataset())
	require.NoError(t, err)
	_, err = ix.Search([]float64{0, 0}, 0, kmeans.Unlimited)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestSearchDimensionMismatchIsTranslated(t *testing.T) {
	ix, err := New(gridDataset())
	require.NoError(t, err)
	_, err = ix.Search([]float64{0}, 1, kmeans.Unlimited)
	require.Error(t, err)
	var dimErr *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dimErr)
}

func TestAddPointsGrowsIndex(t *testing.T) {
	ix, err := New(gridDataset(), WithBranching(4))
	require.NoError(t, err)
	before := ix.Size()

	require.NoError(t, ix.AddPoints(matrix.FromRows([][]float64{{500, 500}}), 0))
	assert.Equal(t, before+1, ix.Size())
}

func TestClusterCenters(t *testing.T) {
	ix, err := New(gridDataset(), WithBranching(4))
	require.NoError(t, err)
	centers, variance, err := ix.ClusterCenters(4)
	require.NoError(t, err)
	assert.Len(t, centers, 4)
	assert.GreaterOrEqual(t, variance, 0.0)
}

func TestBuilderProducesEquivalentIndex(t *testing.T) {
	ix, err := NewBuilder(gridDataset()).
		Branching(4).
		Iterations(5).
		SeedStrategy(kmeans.SeedKMeansPP).
		CbIndex(0.3).
		RngSeed(5).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 40, ix.Size())
}

func TestBuilderIsImmutableAcrossVariants(t *testing.T) {
	base := NewBuilder(gridDataset()).Branching(4)
	a := base.CbIndex(0.1)
	b := base.CbIndex(0.9)

	ixA, err := a.Build()
	require.NoError(t, err)
	ixB, err := b.Build()
	require.NoError(t, err)

	assert.NotSame(t, ixA, ixB)
	assert.Equal(t, 0.1, ixA.tree.Params.CbIndex)
	assert.Equal(t, 0.9, ixB.tree.Params.CbIndex)
}
