package kmeans

import (
	"sort"

	"kmeanstree/core"
)

// AddPoints appends newPoints to the dataset and folds each new row into
// the existing tree by walking to its nearest leaf, rather than rebuilding
// from scratch. If the dataset has grown by at least rebuildThreshold times
// its size at the last full Build (rebuildThreshold <= 1 disables this),
// the whole tree is rebuilt instead, which amortizes the cost of the
// online-insertion tree slowly drifting away from a freshly clustered one.
func (t *Tree) AddPoints(newPoints Matrix, rebuildThreshold float64) error {
	if t.Root == nil {
		return &ErrInvariantViolation{Detail: "AddPoints called before Build"}
	}
	if newPoints.Cols() != t.Dataset.Cols() {
		return &ErrDimensionMismatch{Expected: t.Dataset.Cols(), Actual: newPoints.Cols()}
	}

	oldRows := t.Dataset.Rows()
	addRows := newPoints.Rows()
	merged := newDenseDataset(oldRows+addRows, t.Dataset.Cols())
	for i := 0; i < oldRows; i++ {
		copy(merged.Row(i), t.Dataset.Row(i))
	}
	for i := 0; i < addRows; i++ {
		copy(merged.Row(oldRows+i), newPoints.Row(i))
	}
	t.Dataset = merged
	t.N += addRows

	if rebuildThreshold > 1 && float64(t.N) >= float64(t.NAtBuild)*rebuildThreshold {
		return t.Build()
	}

	ctx := &buildContext{dataset: t.Dataset, dist: t.Dist, rng: t.Rng, params: t.Params}
	for i := 0; i < addRows; i++ {
		id := core.PointID(oldRows + i)
		d := t.Dist(t.Dataset.Row(int(id)), t.Root.Pivot)
		addPointToTree(t.Root, id, d, ctx)
	}
	return nil
}

// addPointToTree updates node's size/radius/variance for the incoming
// point, then either appends it to a leaf (splitting the leaf once it
// reaches the branching factor) or recurses into the nearest child.
//
// Note: the running variance/radius update here is an O(1) approximation
// (radius only grows, variance is folded in incrementally) that is not
// recomputed exactly except at the leaf that actually receives the point —
// ancestors above it keep the approximate values. This mirrors the
// reference implementation's behavior rather than eagerly recomputing
// exact statistics on every ancestor.
func addPointToTree(node *Node, id core.PointID, distToPivot float64, ctx *buildContext) {
	if distToPivot > node.Radius {
		node.Radius = distToPivot
	}
	node.Variance = (float64(node.Size)*node.Variance + distToPivot) / float64(node.Size+1)
	node.Size++

	if node.IsLeaf() {
		node.Indices = append(node.Indices, id)
		sort.Slice(node.Indices, func(i, j int) bool { return node.Indices[i] < node.Indices[j] })
		pivot, radius, variance := computeNodeStatistics(ctx.dataset, node.Indices, ctx.dist)
		node.Pivot, node.Radius, node.Variance = pivot, radius, variance

		if len(node.Indices) >= ctx.params.Branching {
			ids := node.Indices
			node.Indices = nil
			clusterNode(node, ids, node.Level, ctx)
		}
		return
	}

	closest := 0
	bestDist := ctx.dist(node.Children[0].Pivot, ctx.dataset.Row(int(id)))
	for i := 1; i < len(node.Children); i++ {
		if d := ctx.dist(node.Children[i].Pivot, ctx.dataset.Row(int(id))); d < bestDist {
			bestDist = d
			closest = i
		}
	}
	addPointToTree(node.Children[closest], id, bestDist, ctx)
}
