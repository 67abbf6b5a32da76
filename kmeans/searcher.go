package kmeans

// Unlimited disables the check budget in FindNeighbors, selecting exact
// recursive-descent search instead of best-bin-first approximate search.
const Unlimited = -1

// prunable reports whether a node's whole subtree can be skipped given b
// (distance from the query to the node's pivot), the node's own radius,
// and the current worst distance retained in the result set. It implements
// the geometric bound val = b - r - w, prune when val > 0 && val*val -
// 4*r*w > 0, which only holds under squared-Euclidean-like metrics.
func prunable(node *Node, b, worst float64) bool {
	r := node.Radius
	val := b - r - worst
	if val <= 0 {
		return false
	}
	return val*val-4*r*worst > 0
}

// FindNeighbors searches the tree for query's nearest neighbors, using
// exact recursive descent if checks is Unlimited, or best-bin-first
// approximate search bounded by checks leaf-point examinations otherwise.
func (t *Tree) FindNeighbors(result ResultSet, query []float64, checks int, heap Heap) error {
	if t.Root == nil {
		return &ErrInvariantViolation{Detail: "FindNeighbors called before Build"}
	}
	if len(query) != t.Dataset.Cols() {
		return &ErrDimensionMismatch{Expected: t.Dataset.Cols(), Actual: len(query)}
	}
	if checks == Unlimited {
		exactSearch(t.Root, query, t.Dataset, t.Dist, result)
		return nil
	}
	approxSearch(t.Root, query, t.Dataset, t.Dist, result, checks, t.Params.CbIndex, heap)
	return nil
}

func exactSearch(node *Node, query []float64, dataset Matrix, dist Distance, result ResultSet) {
	b := dist(query, node.Pivot)
	if prunable(node, b, result.WorstDist()) {
		return
	}
	if node.IsLeaf() {
		for _, id := range node.Indices {
			result.AddPoint(dist(dataset.Row(int(id)), query), id)
		}
		return
	}
	for _, ci := range centerOrdering(node, query, dist) {
		exactSearch(node.Children[ci], query, dataset, dist, result)
	}
}

// centerOrdering returns node's children ordered by increasing distance
// from query, via the same insertion sort the reference implementation
// uses. On exact ties this ends up visiting the higher-index child first,
// since a new tie is inserted ahead of an equal-valued existing entry.
func centerOrdering(node *Node, query []float64, dist Distance) []int {
	b := len(node.Children)
	domainDistances := make([]float64, b)
	order := make([]int, b)
	for i := 0; i < b; i++ {
		d := dist(query, node.Children[i].Pivot)
		j := 0
		for j < i && domainDistances[j] < d {
			j++
		}
		for k := i; k > j; k-- {
			domainDistances[k] = domainDistances[k-1]
			order[k] = order[k-1]
		}
		domainDistances[j] = d
		order[j] = i
	}
	return order
}

func approxSearch(root *Node, query []float64, dataset Matrix, dist Distance, result ResultSet, maxChecks int, cbIndex float64, h Heap) {
	checks := 0
	findNNApprox(root, query, dataset, dist, result, &checks, maxChecks, cbIndex, h)
	for {
		item, ok := h.PopMin()
		if !ok {
			break
		}
		if checks >= maxChecks && result.Full() {
			break
		}
		findNNApprox(item.Node, query, dataset, dist, result, &checks, maxChecks, cbIndex, h)
	}
}

func findNNApprox(node *Node, query []float64, dataset Matrix, dist Distance, result ResultSet, checks *int, maxChecks int, cbIndex float64, h Heap) {
	b := dist(query, node.Pivot)
	if prunable(node, b, result.WorstDist()) {
		return
	}
	if node.IsLeaf() {
		if *checks >= maxChecks && result.Full() {
			return
		}
		*checks += node.Size
		for _, id := range node.Indices {
			result.AddPoint(dist(dataset.Row(int(id)), query), id)
		}
		return
	}
	closest := exploreBranches(node, query, dist, cbIndex, h)
	findNNApprox(node.Children[closest], query, dataset, dist, result, checks, maxChecks, cbIndex, h)
}

// exploreBranches finds node's child closest to query, pushes every other
// child onto h keyed by its distance minus cbIndex*variance (so branches
// with more internal spread look relatively more attractive), and returns
// the closest child's index for immediate recursion.
func exploreBranches(node *Node, query []float64, dist Distance, cbIndex float64, h Heap) int {
	b := len(node.Children)
	domainDistances := make([]float64, b)
	best := 0
	domainDistances[0] = dist(query, node.Children[0].Pivot)
	for i := 1; i < b; i++ {
		domainDistances[i] = dist(query, node.Children[i].Pivot)
		if domainDistances[i] < domainDistances[best] {
			best = i
		}
	}
	for i := 0; i < b; i++ {
		if i == best {
			continue
		}
		key := domainDistances[i] - cbIndex*node.Children[i].Variance
		h.Insert(HeapItem{Node: node.Children[i], Key: key})
	}
	return best
}

