package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanstree/kmeans"
)

func TestPopMinOnEmpty(t *testing.T) {
	h := New(0)
	_, ok := h.PopMin()
	assert.False(t, ok)
}

func TestPopMinOrdersByKey(t *testing.T) {
	h := New(4)
	h.Insert(kmeans.HeapItem{Key: 5})
	h.Insert(kmeans.HeapItem{Key: 1})
	h.Insert(kmeans.HeapItem{Key: 3})
	h.Insert(kmeans.HeapItem{Key: 2})

	var order []float64
	for h.Len() > 0 {
		item, ok := h.PopMin()
		require.True(t, ok)
		order = append(order, item.Key)
	}
	assert.Equal(t, []float64{1, 2, 3, 5}, order)
}

func TestLenTracksSize(t *testing.T) {
	h := New(2)
	assert.Equal(t, 0, h.Len())
	h.Insert(kmeans.HeapItem{Key: 1})
	assert.Equal(t, 1, h.Len())
	h.PopMin()
	assert.Equal(t, 0, h.Len())
}
