package kmeans

import (
	"gonum.org/v1/gonum/floats"

	"kmeanstree/core"
)

// computeNodeStatistics computes the mean (pivot), the farthest member
// distance (radius), and the mean member distance (variance) for a set of
// member point ids. The mean is accumulated in wide precision via
// gonum/floats before being divided down, so a large membership doesn't
// lose low-order bits the way a naive running average can.
func computeNodeStatistics(dataset Matrix, ids []core.PointID, dist Distance) (pivot []float64, radius, variance float64) {
	dim := dataset.Cols()
	pivot = make([]float64, dim)
	for _, id := range ids {
		floats.Add(pivot, dataset.Row(int(id)))
	}
	if len(ids) > 0 {
		floats.Scale(1/float64(len(ids)), pivot)
	}
	for _, id := range ids {
		d := dist(pivot, dataset.Row(int(id)))
		if d > radius {
			radius = d
		}
		variance += d
	}
	if len(ids) > 0 {
		variance /= float64(len(ids))
	}
	return pivot, radius, variance
}
