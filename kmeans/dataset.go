package kmeans

// denseDataset is the Tree's own owned dataset buffer, used whenever it
// must take a private copy of a caller's data (copy_dataset, or growing via
// AddPoints, which always reallocates a fresh backing array just like the
// reference implementation does).
type denseDataset struct {
	data []float64
	rows int
	cols int
}

func newDenseDataset(rows, cols int) *denseDataset {
	return &denseDataset{data: make([]float64, rows*cols), rows: rows, cols: cols}
}

func (d *denseDataset) Rows() int { return d.rows }
func (d *denseDataset) Cols() int { return d.cols }
func (d *denseDataset) Row(i int) []float64 { return d.data[i*d.cols : (i+1)*d.cols] }

func copyDataset(m Matrix) *denseDataset {
	d := newDenseDataset(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		copy(d.Row(i), m.Row(i))
	}
	return d
}
