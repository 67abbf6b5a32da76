// Package kmeanstree provides a ready-to-use hierarchical k-means
// approximate nearest-neighbor index, wiring together the collaborator-based
// core in package kmeans with default Distance, ResultSet, Heap, and Rng
// implementations from the metric, resultset, heap, and rng packages. The
// dataset is any kmeans.Matrix the caller supplies (matrix.Matrix, for
// example).
//
// Callers who want different collaborators (a custom distance, a
// memory-mapped Matrix, a deterministic Rng for tests) can bypass this
// package and drive kmeans.Tree directly.
package kmeanstree

import (
	"context"

	"kmeanstree/heap"
	"kmeanstree/kmeans"
	"kmeanstree/metric"
	"kmeanstree/resultset"
	"kmeanstree/rng"
)

// Index is a built hierarchical k-means tree ready for search, insertion,
// and cluster-cut queries.
type Index struct {
	tree   *kmeans.Tree
	logger *Logger
}

// New builds an Index over dataset. dataset must expose at least one row;
// its column count fixes the index's dimensionality.
func New(dataset kmeans.Matrix, optFns ...Option) (*Index, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.distance == nil {
		o.distance = metric.SquaredL2
	}
	if o.rng == nil {
		o.rng = rng.New(o.rngSeed)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	tree, err := kmeans.NewTree(dataset, o.params(), o.distance, o.rng)
	if err != nil {
		return nil, translateError(err)
	}
	err = tree.Build()
	o.logger.LogBuild(context.Background(), dataset.Rows(), dataset.Cols(), err)
	if err != nil {
		return nil, translateError(err)
	}
	return &Index{tree: tree, logger: o.logger}, nil
}

// Search returns query's k nearest neighbors. checks bounds the number of
// leaf points examined by the best-bin-first approximate search; pass
// kmeans.Unlimited for exact recursive-descent search.
func (ix *Index) Search(query []float64, k int, checks int) ([]resultset.Result, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	rs := resultset.NewKNN(k)
	var h *heap.MinHeap
	if checks != kmeans.Unlimited {
		h = heap.New(64)
	}
	err := ix.tree.FindNeighbors(rs, query, checks, h)
	results := rs.Results()
	ix.logger.LogSearch(context.Background(), k, checks, len(results), err)
	if err != nil {
		return nil, translateError(err)
	}
	return results, nil
}

// AddPoints appends points to the dataset, folding each new row into the
// tree online. If the dataset has grown to at least rebuildThreshold times
// its size at the last full build, the whole tree is rebuilt instead;
// rebuildThreshold <= 1 disables automatic rebuilding.
func (ix *Index) AddPoints(points kmeans.Matrix, rebuildThreshold float64) error {
	sizeBefore := ix.tree.NAtBuild
	err := ix.tree.AddPoints(points, rebuildThreshold)
	rebuilt := ix.tree.NAtBuild != sizeBefore
	ix.logger.LogInsert(context.Background(), points.Rows(), rebuilt, err)
	if rebuilt {
		ix.logger.LogRebuild(context.Background(), ix.tree.Size(), err)
	}
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ClusterCenters returns at most k representative points obtained by
// splitting the tree's frontier wherever it most reduces total weighted
// variance, along with the resulting mean per-point variance.
func (ix *Index) ClusterCenters(k int) ([][]float64, float64, error) {
	centers, variance, err := ix.tree.GetClusterCenters(k)
	ix.logger.LogCut(context.Background(), k, len(centers), err)
	if err != nil {
		return nil, 0, translateError(err)
	}
	return centers, variance, nil
}

// Size returns the number of points currently indexed.
func (ix *Index) Size() int { return ix.tree.Size() }

// Dim returns the dataset's dimensionality.
func (ix *Index) Dim() int { return ix.tree.Dim() }

// SetCbIndex updates the approximate search's variance-boost coefficient.
func (ix *Index) SetCbIndex(cbIndex float64) { ix.tree.SetCbIndex(cbIndex) }

// UsedMemory estimates the tree's node storage in bytes, not counting the
// dataset itself.
func (ix *Index) UsedMemory() int { return ix.tree.UsedMemory() }
