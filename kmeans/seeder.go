package kmeans

import "kmeanstree/core"

// seedCenters chooses up to k centers from ids using ctx's configured
// strategy. Callers must check the returned slice's length: a degenerate
// point set can yield fewer than k centers under SeedRandom or
// SeedGonzales.
func seedCenters(ctx *buildContext, ids []core.PointID, k int) []core.PointID {
	switch ctx.params.SeedStrategy {
	case SeedGonzales:
		return seedGonzales(ctx, ids, k)
	case SeedKMeansPP:
		return seedKMeansPP(ctx, ids, k)
	default:
		return seedRandom(ctx, ids, k)
	}
}

// seedRandom draws centers uniformly without replacement, skipping any
// candidate that coincides (distance below a tiny epsilon) with a center
// already chosen. It can return fewer than k centers if the underlying
// point set doesn't have k distinct locations.
func seedRandom(ctx *buildContext, ids []core.PointID, k int) []core.PointID {
	const epsilon = 1e-16
	draw := ctx.rng.UniqueInts(len(ids))
	centers := make([]core.PointID, 0, k)
	for len(centers) < k {
		r := draw.Next()
		if r < 0 {
			break
		}
		candidate := ids[r]
		duplicate := false
		for _, c := range centers {
			if ctx.dist(ctx.dataset.Row(int(candidate)), ctx.dataset.Row(int(c))) < epsilon {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		centers = append(centers, candidate)
	}
	return centers
}

// seedGonzales picks a random first center, then repeatedly adds the point
// farthest (in min-distance-to-any-chosen-center terms) from what's already
// chosen. Ties keep the earliest-seen candidate.
func seedGonzales(ctx *buildContext, ids []core.PointID, k int) []core.PointID {
	n := len(ids)
	centers := make([]core.PointID, 0, k)
	centers = append(centers, ids[ctx.rng.RandInt(n)])

	for len(centers) < k {
		bestIdx := -1
		bestVal := 0.0
		for j := 0; j < n; j++ {
			row := ctx.dataset.Row(int(ids[j]))
			dmin := ctx.dist(ctx.dataset.Row(int(centers[0])), row)
			for c := 1; c < len(centers); c++ {
				if d := ctx.dist(ctx.dataset.Row(int(centers[c])), row); d < dmin {
					dmin = d
				}
			}
			if dmin > bestVal {
				bestVal = dmin
				bestIdx = j
			}
		}
		if bestIdx == -1 {
			break
		}
		centers = append(centers, ids[bestIdx])
	}
	return centers
}

// seedKMeansPP implements the k-means++ seeding distribution with a single
// local trial per new center (matching the reference implementation, which
// never does the multi-trial variant some descriptions of k-means++
// mention). It always returns exactly k centers.
func seedKMeansPP(ctx *buildContext, ids []core.PointID, k int) []core.PointID {
	n := len(ids)
	centers := make([]core.PointID, 0, k)

	first := ctx.rng.RandInt(n)
	centers = append(centers, ids[first])

	closestDistSq := make([]float64, n)
	currentPotential := 0.0
	for i := 0; i < n; i++ {
		d := ctx.dist(ctx.dataset.Row(int(ids[i])), ctx.dataset.Row(int(ids[first])))
		closestDistSq[i] = d
		currentPotential += d
	}

	for len(centers) < k {
		target := ctx.rng.RandDouble(currentPotential)
		idx := 0
		for idx < n-1 {
			if target <= closestDistSq[idx] {
				break
			}
			target -= closestDistSq[idx]
			idx++
		}
		centers = append(centers, ids[idx])

		newPotential := 0.0
		for i := 0; i < n; i++ {
			if d := ctx.dist(ctx.dataset.Row(int(ids[i])), ctx.dataset.Row(int(ids[idx]))); d < closestDistSq[i] {
				closestDistSq[i] = d
			}
			newPotential += closestDistSq[i]
		}
		currentPotential = newPotential
	}
	return centers
}
