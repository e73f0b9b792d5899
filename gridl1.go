package dbscan

import (
	"fmt"
	"sort"
	"unsafe"
)

// coordView is a strided view over a flat uint32 buffer: element i lives at
// data[offset+i*stride]. A contiguous []uint32 is the stride-1, offset-0
// case; the AoS entry point below builds two stride-2 views (offsets 0 and
// 1) over one shared buffer instead of copying x and y out into their own
// slices.
type coordView struct {
	data   []uint32
	offset int
	stride int
}

func soaView(data []uint32) coordView {
	return coordView{data: data, stride: 1}
}

func (v coordView) at(i int) uint32 {
	return v.data[v.offset+i*v.stride]
}

func (v coordView) len() int {
	if v.stride == 0 {
		return 0
	}
	return (len(v.data) - v.offset + v.stride - 1) / v.stride
}

// GridL1Params configures [ClusterGridL1SoA] and [ClusterGridL1AoS].
type GridL1Params struct {
	Eps        uint32
	MinSamples uint32
	// NumThreads is the worker count for every parallel phase; 0 means
	// [resolveThreads](0).
	NumThreads int
	// ChunkSize overrides the default per-phase work granularity used by
	// [Parallelize]; 0 lets each phase pick its own default.
	ChunkSize int
	Timing    *PerfTiming
}

// gridL1Context bundles the immutable, already-built grid state that every
// expansion strategy reads from. It corresponds to the reference
// ExpansionContext: a read-only view shared by whichever expansion
// function the caller selected.
type gridL1Context struct {
	x, y       coordView
	count      int
	eps        uint32
	minSamples uint32
	g          *grid
	isCore     []bool
	numThreads int
	chunkSize  int
}

func (c *gridL1Context) forEachNeighbor(pointIndex uint32, visit func(neighbor uint32) bool) {
	xa, ya := c.x.at(int(pointIndex)), c.y.at(int(pointIndex))
	c.g.forEachNeighborCell(c.g.cellX[pointIndex], c.g.cellY[pointIndex], func(idx uint32) bool {
		xb, yb := c.x.at(int(idx)), c.y.at(int(idx))
		if manhattanU32(xa, ya, xb, yb) <= uint64(c.eps) {
			return visit(idx)
		}
		return true
	})
}

// clusterGridL1 is the shared pipeline behind [ClusterGridL1SoA] and
// [ClusterGridL1AoS]: both entry points only differ in how x and y are
// viewed over their backing storage.
func clusterGridL1(x, y coordView, params GridL1Params, mode ExpansionMode) (*ClusterResult, error) {
	if x.len() != y.len() {
		return nil, fmt.Errorf("%w: x and y must have equal length, got %d and %d", ErrInvalidInput, x.len(), y.len())
	}
	if params.Eps == 0 {
		return nil, fmt.Errorf("%w: eps must be positive", ErrInvalidInput)
	}
	if params.MinSamples < 1 {
		return nil, fmt.Errorf("%w: minSamples must be >= 1", ErrInvalidInput)
	}
	n := x.len()
	if n == 0 {
		return emptyClusterResult(), nil
	}

	stopTotal := params.Timing.Scope("total")
	defer stopTotal()

	stop := params.Timing.Scope("precompute_cells")
	cellX := make([]uint32, n)
	cellY := make([]uint32, n)
	for i := 0; i < n; i++ {
		cellX[i] = x.at(i) / params.Eps
		cellY[i] = y.at(i) / params.Eps
	}
	stop()

	g := buildGridTimed(n, cellX, cellY, params.Timing)

	stop = params.Timing.Scope("core_detection")
	isCore := make([]bool, n)
	ctx := &gridL1Context{
		x: x, y: y, count: n,
		eps: params.Eps, minSamples: params.MinSamples,
		g: g, isCore: isCore,
		numThreads: resolveThreads(params.NumThreads),
		chunkSize:  params.ChunkSize,
	}
	coreChunk := params.ChunkSize
	if coreChunk == 0 {
		coreChunk = 512
	}
	err := Parallelize(0, n, ctx.numThreads, coreChunk, func(start, end int) {
		for i := start; i < end; i++ {
			var count uint32
			ctx.forEachNeighbor(uint32(i), func(neighbor uint32) bool {
				count++
				return count < params.MinSamples
			})
			if count >= params.MinSamples {
				isCore[i] = true
			}
		}
	})
	stop()
	if err != nil {
		return nil, err
	}

	stop = params.Timing.Scope("cluster_expansion")
	var labels []int32
	switch mode {
	case Sequential:
		labels = expandSequential(ctx)
	case FrontierParallel:
		labels = expandFrontierParallel(ctx)
	case UnionFind:
		labels = expandUnionFind(ctx)
	default:
		stop()
		return nil, fmt.Errorf("%w: unknown expansion mode %v", ErrInvalidInput, mode)
	}
	stop()

	numClusters := int32(0)
	seen := make(map[int32]bool)
	for _, l := range labels {
		if l != noiseLabel && !seen[l] {
			seen[l] = true
			numClusters++
		}
	}
	return &ClusterResult{Labels: labels, NumClusters: numClusters}, nil
}

// ClusterGridL1SoA runs grid-accelerated L1 (Manhattan) DBSCAN over
// structure-of-arrays coordinates using the given expansion strategy. x and
// y must have equal length; coordinates are non-negative uint32 grid
// positions rather than arbitrary floats, matching this engine's intended
// use over quantized or pixel-like coordinate spaces.
//
// A point is core when it has at least minSamples points within eps,
// counting itself, unlike [Cluster] and [ClusterGrid]. The neighbor scan
// never filters out the query point itself.
func ClusterGridL1SoA(x, y []uint32, params GridL1Params, mode ExpansionMode) (*ClusterResult, error) {
	return clusterGridL1(soaView(x), soaView(y), params, mode)
}

// ClusterGridL1AoS is the array-of-structs entry point for grid-L1 DBSCAN.
// It delegates to the shared SoA pipeline through a zero-copy
// reinterpretation of points as an interleaved coordinate buffer: Point32's
// two uint32 fields have no padding, so a slice of n points is bit-for-bit
// an interleaved slice of 2n uint32 values, and x and y are each a
// stride-2 view over that one buffer rather than two separately copied
// slices.
func ClusterGridL1AoS(points []Point32, params GridL1Params, mode ExpansionMode) (*ClusterResult, error) {
	if len(points) == 0 {
		return emptyClusterResult(), nil
	}
	interleaved := unsafe.Slice((*uint32)(unsafe.Pointer(&points[0])), len(points)*2)
	x := coordView{data: interleaved, offset: 0, stride: 2}
	y := coordView{data: interleaved, offset: 1, stride: 2}
	return clusterGridL1(x, y, params, mode)
}

// relabelSortedRoots maps the given set of representative root indices to
// dense ids [0, k) in ascending root order, matching the reference
// union-find expansion's "sort components by min index" relabeling.
func relabelSortedRoots(roots []uint32) map[uint32]int32 {
	unique := make([]uint32, 0, len(roots))
	seen := make(map[uint32]bool, len(roots))
	for _, r := range roots {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	out := make(map[uint32]int32, len(unique))
	for i, r := range unique {
		out[r] = int32(i)
	}
	return out
}
