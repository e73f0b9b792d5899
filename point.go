package dbscan

// Float is the set of coordinate types accepted by the floating-point
// engines ([Cluster], [ClusterGrid]). Both widths share one implementation,
// specialized at compile time instead of dispatched at runtime.
type Float interface {
	~float32 | ~float64
}

// Point is a 2D coordinate pair for the floating-point engines.
type Point[F Float] struct {
	X, Y F
}

// Point32 is a 2D coordinate pair of non-negative 32-bit integers, the AoS
// input shape for the grid-L1 engine. It is laid out as two consecutive
// uint32 fields so a []Point32 slice can be reinterpreted as an
// interleaved []uint32 without copying (see [ClusterGridL1AoS]).
type Point32 struct {
	X, Y uint32
}

// noiseLabel is the sentinel label for points that are neither core nor
// border.
const noiseLabel int32 = -1

// ClusterResult is the output of any of the three engines: a label per
// input point (noiseLabel for noise, otherwise a dense id in
// [0, NumClusters)) plus the cluster count.
type ClusterResult struct {
	Labels      []int32
	NumClusters int32
}

func emptyClusterResult() *ClusterResult {
	return &ClusterResult{Labels: []int32{}, NumClusters: 0}
}
