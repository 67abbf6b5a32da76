package kmeans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanstree/kmeans"
	"kmeanstree/matrix"
	"kmeanstree/metric"
	"kmeanstree/rng"
)

// gridDataset returns 4 well-separated 2D clusters of 5 points each, so
// seeding strategies have an unambiguous "right answer" to be checked
// against: each cluster should end up represented among the chosen seeds
// often enough to build a sane tree.
func gridDataset() *matrix.Matrix {
	rows := make([][]float64, 0, 20)
	centers := [][2]float64{{0, 0}, {100, 0}, {0, 100}, {100, 100}}
	for _, c := range centers {
		for i := 0; i < 5; i++ {
			rows = append(rows, []float64{c[0] + float64(i)*0.01, c[1] + float64(i)*0.01})
		}
	}
	return matrix.FromRows(rows)
}

func TestSeedStrategiesProduceUsableTrees(t *testing.T) {
	for _, s := range []kmeans.SeedStrategy{kmeans.SeedRandom, kmeans.SeedGonzales, kmeans.SeedKMeansPP} {
		t.Run(s.String(), func(t *testing.T) {
			ds := gridDataset()
			params := kmeans.DefaultParams()
			params.Branching = 4
			params.SeedStrategy = s

			tree, err := kmeans.NewTree(ds, params, metric.SquaredL2, rng.New(7))
			require.NoError(t, err)
			require.NoError(t, tree.Build())

			assert.Equal(t, ds.Rows(), tree.Root.Size)
			assert.False(t, tree.Root.IsLeaf())
		})
	}
}

func TestSeedStrategyStringer(t *testing.T) {
	assert.Equal(t, "random", kmeans.SeedRandom.String())
	assert.Equal(t, "gonzales", kmeans.SeedGonzales.String())
	assert.Equal(t, "kmeans++", kmeans.SeedKMeansPP.String())
	assert.Equal(t, "unknown", kmeans.SeedStrategy(99).String())
}
