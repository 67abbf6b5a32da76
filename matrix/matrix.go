// Package matrix provides the default Matrix collaborator: a row-major,
// growable dense buffer with a gonum-native view for callers who want one.
package matrix

import "gonum.org/v1/gonum/mat"

// Matrix is a row-major dense dataset backing store. It implements the
// kmeans package's Matrix collaborator interface structurally.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// New allocates a zeroed Matrix with the given shape.
func New(rows, cols int) *Matrix {
	return &Matrix{data: make([]float64, rows*cols), rows: rows, cols: cols}
}

// FromRows copies rows into a new owned Matrix. All rows must have the same
// length; the first row determines the column count.
func FromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		return &Matrix{}
	}
	m := New(len(rows), len(rows[0]))
	for i, row := range rows {
		copy(m.Row(i), row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Row returns a slice aliasing row i's backing storage; writes through it
// mutate m.
func (m *Matrix) Row(i int) []float64 { return m.data[i*m.cols : (i+1)*m.cols] }

// Dense returns a gonum-native view over the same backing array. Mutating
// through the returned *mat.Dense is visible through m, and vice versa,
// as long as m isn't grown afterward (AppendRows always reallocates).
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// AppendRows returns a new Matrix holding m's rows followed by extra. m is
// left untouched; mat.Dense can't grow a backing array in place, so growth
// always reallocates.
func (m *Matrix) AppendRows(extra [][]float64) *Matrix {
	cols := m.cols
	if cols == 0 && len(extra) > 0 {
		cols = len(extra[0])
	}
	out := New(m.rows+len(extra), cols)
	for i := 0; i < m.rows; i++ {
		copy(out.Row(i), m.Row(i))
	}
	for i, row := range extra {
		copy(out.Row(m.rows+i), row)
	}
	return out
}
