package kmeans

import "kmeanstree/core"

// Distance is the opaque similarity oracle the tree builds on. It must be
// symmetric and report zero for identical inputs; the best-bin-first
// pruning rule additionally assumes it behaves like squared Euclidean
// distance (see metric.SquaredL2).
type Distance func(a, b []float64) float64

// Matrix is random-access, row-major dataset storage. The tree treats rows
// as opaque coordinate vectors addressed by PointID.
type Matrix interface {
	Rows() int
	Cols() int
	Row(i int) []float64
}

// ResultSet collects nearest-neighbor candidates during a search. AddPoint
// may be called with candidates in any order and any number of times;
// implementations decide which ones survive.
type ResultSet interface {
	AddPoint(dist float64, id core.PointID)
	WorstDist() float64
	Full() bool
}

// HeapItem is a pending branch of the tree, keyed by its priority in the
// best-bin-first search (lower key explored first).
type HeapItem struct {
	Node *Node
	Key  float64
}

// Heap is a min-heap over HeapItem, used by the approximate searcher to
// pick the single most promising pending branch across the whole tree.
type Heap interface {
	Insert(item HeapItem)
	PopMin() (HeapItem, bool)
	Len() int
}

// UniqueDraw yields a permutation of [0, n) one value at a time, returning
// -1 once exhausted.
type UniqueDraw interface {
	Next() int
}

// Rng is the random source the Seeder and Clusterer draw from.
type Rng interface {
	RandInt(n int) int
	RandDouble(x float64) float64
	UniqueInts(n int) UniqueDraw
}
