package kmeans

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"kmeanstree/core"
)

// buildContext bundles the collaborators every recursive step of the build
// needs, so clusterNode and its helpers don't have to thread them
// individually.
type buildContext struct {
	dataset Matrix
	dist    Distance
	rng     Rng
	params  Params
}

// clusterNode turns node into a leaf or an internal node covering exactly
// ids, recursing into children as needed. It never touches node's own
// Pivot/Radius/Variance: the caller (Tree.Build for the root, clusterNode
// itself for children) is responsible for those.
func clusterNode(node *Node, ids []core.PointID, level int, ctx *buildContext) {
	node.Size = len(ids)
	node.Level = level

	branching := ctx.params.Branching
	if len(ids) < branching {
		makeLeaf(node, ids)
		return
	}

	centerIDs := seedCenters(ctx, ids, branching)
	if len(centerIDs) < branching {
		// Degenerate seed (too few distinct points): stop subdividing.
		makeLeaf(node, ids)
		return
	}

	dim := ctx.dataset.Cols()
	centers := make([][]float64, branching)
	for i, id := range centerIDs {
		centers[i] = append([]float64(nil), ctx.dataset.Row(int(id))...)
	}

	n := len(ids)
	belongsTo := make([]int, n)
	count := make([]int, branching)
	radiuses := make([]float64, branching)

	nearestCenter := func(row []float64) (best int, bestDist float64) {
		bestDist = ctx.dist(centers[0], row)
		for c := 1; c < branching; c++ {
			if d := ctx.dist(centers[c], row); d < bestDist {
				bestDist = d
				best = c
			}
		}
		return best, bestDist
	}

	// Initial assignment.
	for i, id := range ids {
		best, bestDist := nearestCenter(ctx.dataset.Row(int(id)))
		belongsTo[i] = best
		count[best]++
		if bestDist > radiuses[best] {
			radiuses[best] = bestDist
		}
	}

	// Lloyd refinement with empty-cluster recovery.
	maxIter := ctx.params.MaxIter
	unbounded := maxIter < 0
	converged := false
	for iteration := 0; !converged && (unbounded || iteration < maxIter); iteration++ {
		converged = true

		sums := make([][]float64, branching)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, id := range ids {
			floats.Add(sums[belongsTo[i]], ctx.dataset.Row(int(id)))
		}
		for c := 0; c < branching; c++ {
			if count[c] > 0 {
				floats.Scale(1/float64(count[c]), sums[c])
				copy(centers[c], sums[c])
			}
			radiuses[c] = 0
		}

		for i, id := range ids {
			best, bestDist := nearestCenter(ctx.dataset.Row(int(id)))
			if bestDist > radiuses[best] {
				radiuses[best] = bestDist
			}
			if best != belongsTo[i] {
				count[belongsTo[i]]--
				count[best]++
				belongsTo[i] = best
				converged = false
			}
		}

		for c := 0; c < branching; c++ {
			if count[c] != 0 {
				continue
			}
			j := (c + 1) % branching
			for count[j] <= 1 {
				j = (j + 1) % branching
			}
			for i := range ids {
				if belongsTo[i] == j {
					belongsTo[i] = c
					count[j]--
					count[c]++
					break
				}
			}
			converged = false
		}
	}

	// Partition ids in place into contiguous per-cluster runs, computing
	// each cluster's mean member distance (variance) as a byproduct.
	variances := make([]float64, branching)
	childStart := make([]int, branching)
	childEnd := make([]int, branching)
	end := 0
	for c := 0; c < branching; c++ {
		childStart[c] = end
		var variance float64
		for i := 0; i < n; i++ {
			if belongsTo[i] != c {
				continue
			}
			variance += ctx.dist(centers[c], ctx.dataset.Row(int(ids[i])))
			ids[i], ids[end] = ids[end], ids[i]
			belongsTo[i], belongsTo[end] = belongsTo[end], belongsTo[i]
			end++
		}
		if count[c] > 0 {
			variance /= float64(count[c])
		}
		variances[c] = variance
		childEnd[c] = end
	}

	node.Children = make([]*Node, branching)
	for c := 0; c < branching; c++ {
		child := &Node{Pivot: centers[c], Radius: radiuses[c], Variance: variances[c]}
		node.Children[c] = child
		clusterNode(child, ids[childStart[c]:childEnd[c]], level+1, ctx)
	}
}

func makeLeaf(node *Node, ids []core.PointID) {
	sorted := append([]core.PointID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	node.Indices = sorted
}
