package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, 0.0, SquaredL2([]float64{1, 2, 3}, []float64{1, 2, 3}))
	assert.Equal(t, 3.0, SquaredL2([]float64{0, 0, 0}, []float64{1, 1, 1}))
	assert.Equal(t, SquaredL2([]float64{1, 2}, []float64{3, 4}), SquaredL2([]float64{3, 4}, []float64{1, 2}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0.0, Manhattan([]float64{1, 2}, []float64{1, 2}))
	assert.Equal(t, 6.0, Manhattan([]float64{0, 0}, []float64{2, 4}))
}
