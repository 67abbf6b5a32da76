package kmeans

import "math"

// GetClusterCenters flattens the tree's frontier into at most k clusters by
// repeatedly splitting whichever frontier node's split most reduces total
// weighted variance, starting from just the root. It returns each chosen
// node's pivot and the resulting mean per-point variance (total weighted
// variance divided by root size).
//
// Because a split always replaces one frontier node with Branching
// children, the returned center count can be less than k: splitting stops
// once no frontier node has children, or once the next split would push the
// frontier past k centers. The count never exceeds k.
func (t *Tree) GetClusterCenters(k int) ([][]float64, float64, error) {
	if k < 1 {
		return nil, 0, ErrInvalidK
	}
	if t.Root == nil {
		return nil, 0, &ErrInvariantViolation{Detail: "GetClusterCenters called before Build"}
	}

	frontier := []*Node{t.Root}
	meanVariance := t.Root.Variance * float64(t.Root.Size)
	branching := t.Params.Branching

	for len(frontier) < k {
		minVariance := math.MaxFloat64
		splitIdx := -1
		for i, node := range frontier {
			if node.IsLeaf() {
				continue
			}
			variance := meanVariance - node.Variance*float64(node.Size)
			for _, c := range node.Children {
				variance += c.Variance * float64(c.Size)
			}
			if variance < minVariance {
				minVariance = variance
				splitIdx = i
			}
		}
		if splitIdx == -1 {
			break
		}
		if branching+len(frontier)-1 > k {
			break
		}
		meanVariance = minVariance
		toSplit := frontier[splitIdx]
		frontier[splitIdx] = toSplit.Children[0]
		frontier = append(frontier, toSplit.Children[1:]...)
	}

	centers := make([][]float64, len(frontier))
	for i, node := range frontier {
		centers[i] = append([]float64(nil), node.Pivot...)
	}
	return centers, meanVariance / float64(t.Root.Size), nil
}
