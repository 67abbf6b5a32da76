// Package heap provides the default Heap collaborator: a binary min-heap
// over pending search branches, used by the tree's best-bin-first
// approximate search.
package heap

import "kmeanstree/kmeans"

// MinHeap is a slice-backed binary min-heap over kmeans.HeapItem.
type MinHeap struct {
	items []kmeans.HeapItem
}

// New returns an empty heap with room for capacity items before it grows.
func New(capacity int) *MinHeap {
	return &MinHeap{items: make([]kmeans.HeapItem, 0, capacity)}
}

// Len returns the number of pending items.
func (h *MinHeap) Len() int { return len(h.items) }

// Insert adds item, maintaining the heap invariant.
func (h *MinHeap) Insert(item kmeans.HeapItem) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// PopMin removes and returns the lowest-key item, or reports false if the
// heap is empty.
func (h *MinHeap) PopMin() (kmeans.HeapItem, bool) {
	if len(h.items) == 0 {
		return kmeans.HeapItem{}, false
	}
	top := h.items[0]
	n := len(h.items) - 1
	h.items[0] = h.items[n]
	h.items = h.items[:n]
	if n > 0 {
		h.siftDown(0)
	}
	return top, true
}

func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Key >= h.items[parent].Key {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *MinHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		best := left
		if right := left + 1; right < n && h.items[right].Key < h.items[left].Key {
			best = right
		}
		if h.items[best].Key >= h.items[i].Key {
			break
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
