// Package metric provides concrete Distance oracles for the kmeans package.
package metric

// Func is a symmetric distance oracle over equal-length vectors satisfying
// Func(x, x) == 0. The tree treats it as opaque: it never inspects
// coordinates itself, only distance values.
type Func func(a, b []float64) float64

// SquaredL2 is the squared Euclidean distance. The tree's best-bin-first
// pruning rule (val>0 && val*val-4*r*w>0) is only proven admissible for this
// metric; other metrics still work but the pruning becomes heuristic.
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan is the L1 (taxicab) distance.
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}
