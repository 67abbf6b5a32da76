// Package kmeans implements a hierarchical k-means tree for approximate
// nearest-neighbor search over opaque distance functions.
//
// # Features
//
//   - Three seeding strategies for choosing a level's initial cluster
//     centers: uniform random, Gonzales farthest-point, and k-means++.
//   - Lloyd-style refinement with empty-cluster recovery, so a degenerate
//     seed never leaves a cluster with zero members.
//   - Best-bin-first approximate search bounded by a check budget, and an
//     exact recursive-descent search for when the budget is unbounded.
//   - Online point insertion that walks to the nearest leaf, appends, and
//     re-clusters or rebuilds the whole tree once growth passes a
//     caller-chosen threshold.
//   - A variance-minimizing cluster cut that flattens the tree's frontier
//     into at most a requested number of clusters.
//
// Every numeric contract (distance, dataset access, priority queue, result
// collection, randomness) is an interface the caller supplies; kmeans never
// interprets coordinates itself beyond calling the supplied Distance.
//
// # Reference
//
// The clustering and search algorithms follow the hierarchical k-means
// index described in Muja & Lowe, "Scalable Nearest Neighbor Algorithms for
// High Dimensional Data" (FLANN).
package kmeans
