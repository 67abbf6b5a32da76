package kmeans

import "kmeanstree/core"

// baselineMemory approximates the fixed bookkeeping overhead the reference
// implementation charges before any node is allocated.
const baselineMemory = 128

// Tree is a hierarchical k-means index. The zero value is not usable; build
// one with NewTree followed by Build.
type Tree struct {
	Dataset Matrix
	Root    *Node
	Params  Params
	Dist    Distance
	Rng     Rng

	N        int
	NAtBuild int
}

// NewTree validates params and prepares a Tree over dataset. Call Build
// before searching, inserting, or cutting.
func NewTree(dataset Matrix, params Params, dist Distance, rng Rng) (*Tree, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ds := dataset
	if params.CopyDataset {
		ds = copyDataset(dataset)
	}
	return &Tree{Dataset: ds, Params: params, Dist: dist, Rng: rng, N: dataset.Rows()}, nil
}

// Build clusters the full dataset from scratch, replacing any existing
// tree.
func (t *Tree) Build() error {
	if err := t.Params.Validate(); err != nil {
		return err
	}
	n := t.Dataset.Rows()
	ids := make([]core.PointID, n)
	for i := range ids {
		ids[i] = core.PointID(i)
	}

	pivot, radius, variance := computeNodeStatistics(t.Dataset, ids, t.Dist)
	root := &Node{Pivot: pivot, Radius: radius, Variance: variance}

	ctx := &buildContext{dataset: t.Dataset, dist: t.Dist, rng: t.Rng, params: t.Params}
	clusterNode(root, ids, 0, ctx)

	t.Root = root
	t.N = n
	t.NAtBuild = n
	return nil
}

// Size returns the number of points currently indexed.
func (t *Tree) Size() int { return t.N }

// Dim returns the dataset's dimensionality.
func (t *Tree) Dim() int { return t.Dataset.Cols() }

// SetCbIndex updates the approximate search's variance-boost coefficient.
// It takes effect on the next search; no rebuild is needed.
func (t *Tree) SetCbIndex(cbIndex float64) { t.Params.CbIndex = cbIndex }

// UsedMemory estimates the tree's node storage: each node's pivot buffer
// (8 bytes per float64 element) plus a fixed baseline. It does not account
// for the dataset itself, whether aliased or copied.
func (t *Tree) UsedMemory() int {
	total := baselineMemory
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		total += n.pivotBytes()
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return total
}
