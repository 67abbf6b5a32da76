// Package resultset provides the default ResultSet collaborator: a bounded
// k-nearest-neighbor collector backed by a max-heap over its retained
// candidates, so the current worst of the k best sits at the root and can
// be evicted in O(log k) as better candidates arrive.
package resultset

import (
	"container/heap"
	"math"

	"kmeanstree/core"
)

// Result is one collected neighbor.
type Result struct {
	ID   core.PointID
	Dist float64
}

// KNN collects the k closest points seen across any number of AddPoint
// calls, in any order.
type KNN struct {
	k     int
	items maxHeap
}

// NewKNN returns a collector that retains the k closest points added to it.
func NewKNN(k int) *KNN {
	return &KNN{k: k, items: make(maxHeap, 0, k)}
}

// AddPoint offers a candidate; it is retained only if the set isn't yet
// full or the candidate beats the current worst retained distance.
func (r *KNN) AddPoint(dist float64, id core.PointID) {
	if r.k <= 0 {
		return
	}
	if len(r.items) < r.k {
		heap.Push(&r.items, item{dist: dist, id: id})
		return
	}
	if dist < r.items[0].dist {
		r.items[0] = item{dist: dist, id: id}
		heap.Fix(&r.items, 0)
	}
}

// WorstDist returns the current worst retained distance, or math.MaxFloat64
// while the set isn't yet full (so the tree's pruning rule never discards a branch
// prematurely).
func (r *KNN) WorstDist() float64 {
	if len(r.items) < r.k {
		return math.MaxFloat64
	}
	return r.items[0].dist
}

// Full reports whether k candidates have been retained.
func (r *KNN) Full() bool { return len(r.items) >= r.k }

// Results returns the retained neighbors sorted by ascending distance. It
// works on a copy, so the collector itself is left unchanged.
func (r *KNN) Results() []Result {
	tmp := append(maxHeap(nil), r.items...)
	out := make([]Result, len(tmp))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = Result{ID: tmp[0].id, Dist: tmp[0].dist}
		heap.Pop(&tmp)
	}
	return out
}

type item struct {
	dist float64
	id   core.PointID
}

type maxHeap []item

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
