// Package dbscan implements Density-Based Spatial Clustering of Applications
// with Noise (DBSCAN), specialized for 2D points, as three interchangeable
// engines with the same label-vector contract:
//
//   - [Cluster]: all-pairs O(n²) baseline under the Euclidean metric, kept
//     as a correctness reference.
//   - [ClusterGrid]: a uniform spatial-hash grid under the Euclidean metric
//     with a lock-free atomic union-find for parallel core-point merging.
//   - [ClusterGridL1SoA] / [ClusterGridL1AoS]: a grid specialized for
//     non-negative 32-bit integer coordinates under the Manhattan metric,
//     with a choice of three interchangeable expansion strategies.
//
// Basic usage:
//
//	points := []dbscan.Point[float64]{{X: 0, Y: 0}, {X: 0.1, Y: 0.1}}
//	result, err := dbscan.Cluster(points, 0.5, 2)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
//	// result.NumClusters is the number of dense cluster ids in [0, NumClusters)
//
// For larger inputs, [ClusterGrid] and the grid-L1 entry points parallelize
// the expensive phases across a worker pool sized by GridOptions.NumThreads
// / GridL1Params.NumThreads (0 means runtime.NumCPU()).
//
// # Neighbor-count convention
//
// The baseline and grid engines historically disagreed on whether a point's
// own coordinates count toward its neighbor total. This package fixes one
// convention per engine and documents it on each entry point: [Cluster] and
// [ClusterGrid] exclude the query point itself (a point is core iff it has
// at least minSamples *other* points within eps); the grid-L1 engines
// include the query point (a point is core iff its closed eps-ball, self
// included, contains at least minSamples points). Both conventions are
// internally consistent and produce labelings that agree up to a relabeling
// across engines that share a metric.
package dbscan
