package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{3, 4}, m.Row(1))
}

func TestRowAliasesBackingArray(t *testing.T) {
	m := New(2, 2)
	row := m.Row(0)
	row[0] = 9
	assert.Equal(t, 9.0, m.Row(0)[0])
}

func TestAppendRowsLeavesOriginalUntouched(t *testing.T) {
	m := FromRows([][]float64{{1, 1}, {2, 2}})
	grown := m.AppendRows([][]float64{{3, 3}})

	assert.Equal(t, 2, m.Rows())
	require.Equal(t, 3, grown.Rows())
	assert.Equal(t, []float64{3, 3}, grown.Row(2))
}

func TestDense(t *testing.T) {
	m := FromRows([][]float64{{1, 2}, {3, 4}})
	d := m.Dense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, d.At(1, 0))
}
