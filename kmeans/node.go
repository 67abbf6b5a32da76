package kmeans

import "kmeanstree/core"

// Node is one node of the hierarchical k-means tree. A node is either a
// leaf (Indices non-nil, Children nil) or internal (Children non-nil,
// Indices nil) — never both.
type Node struct {
	Pivot    []float64
	Radius   float64
	Variance float64
	Size     int
	Level    int

	Indices  []core.PointID // leaf only, sorted ascending
	Children []*Node        // internal only, exactly Branching entries
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// pivotBytes returns the memory the node's pivot buffer occupies, used by
// Tree.UsedMemory.
func (n *Node) pivotBytes() int { return len(n.Pivot) * 8 }
