package dbscan

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// GridOptions configures [ClusterGrid]. The zero value requests hardware
// concurrency and no performance timing.
type GridOptions struct {
	// NumThreads is the worker count for every parallel phase; 0 means
	// [resolveThreads](0).
	NumThreads int
	// Timing, if non-nil, receives one entry per pipeline phase.
	Timing *PerfTiming
}

// ClusterGrid runs the grid-accelerated L2 DBSCAN pipeline: bucket points
// into a uniform grid sized by eps, detect core points by scanning each
// point's 3x3 neighboring cells, union core points that are mutual
// eps-neighbors with an [AtomicUnionFind], label by union-find root, then
// attach border points to any adjacent core point's cluster. Produces the
// same partition as [Cluster] (up to label permutation), except that a
// border point within eps of core points from more than one cluster joins
// the first such core the cell scan reaches, which need not be the cluster
// [Cluster] gives it. Runs in roughly O(n) time for uniformly distributed
// inputs instead of O(n^2).
//
// A point is core when it has at least minSamples *other* points within
// eps, matching [Cluster]'s convention.
func ClusterGrid[F Float](points []Point[F], eps F, minSamples int, opts GridOptions) (*ClusterResult, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("%w: eps must be positive, got %v", ErrInvalidInput, eps)
	}
	if minSamples < 1 {
		return nil, fmt.Errorf("%w: minSamples must be >= 1, got %d", ErrInvalidInput, minSamples)
	}
	n := len(points)
	if n == 0 {
		return emptyClusterResult(), nil
	}

	numThreads := resolveThreads(opts.NumThreads)
	epsSq := eps * eps

	// Phase 1: bounds + grid build.
	stop := opts.Timing.Scope("grid-build")
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	cellXOf := make([]uint32, n)
	cellYOf := make([]uint32, n)
	for i, p := range points {
		cellXOf[i] = uint32(math.Floor(float64((p.X - minX) / eps)))
		cellYOf[i] = uint32(math.Floor(float64((p.Y - minY) / eps)))
	}
	g := buildGrid(n, cellXOf, cellYOf)
	stop()

	// Phase 2: core point detection.
	stop = opts.Timing.Scope("core-detection")
	isCore := bitset.New(uint(n))
	err := ParallelFor(0, n, numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			count := 0
			g.forEachNeighborCell(cellXOf[i], cellYOf[i], func(j uint32) bool {
				if int(j) == i {
					return true
				}
				if squaredEuclidean(points[i], points[int(j)]) <= epsSq {
					count++
				}
				return count < minSamples
			})
			if count >= minSamples {
				isCore.Set(uint(i))
			}
		}
	})
	stop()
	if err != nil {
		return nil, err
	}

	// Phase 3: union core-core edges.
	stop = opts.Timing.Scope("core-union")
	uf := NewAtomicUnionFind(n)
	err = ParallelFor(0, n, numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			if !isCore.Test(uint(i)) {
				continue
			}
			g.forEachNeighborCell(cellXOf[i], cellYOf[i], func(j uint32) bool {
				jj := int(j)
				if jj == i || !isCore.Test(uint(jj)) {
					return true
				}
				if squaredEuclidean(points[i], points[jj]) <= epsSq {
					uf.Unite(int32(i), int32(jj))
				}
				return true
			})
		}
	})
	stop()
	if err != nil {
		return nil, err
	}

	// Phase 4: label core points by union-find root.
	stop = opts.Timing.Scope("core-labeling")
	labels := make([]int32, n)
	for i := range labels {
		labels[i] = noiseLabel
	}
	err = ParallelFor(0, n, numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			if isCore.Test(uint(i)) {
				labels[i] = uf.Find(int32(i))
			}
		}
	})
	stop()
	if err != nil {
		return nil, err
	}

	// Phase 5: attach border points to an adjacent core point's cluster.
	stop = opts.Timing.Scope("border-assign")
	err = ParallelFor(0, n, numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			if isCore.Test(uint(i)) {
				continue
			}
			g.forEachNeighborCell(cellXOf[i], cellYOf[i], func(j uint32) bool {
				jj := int(j)
				if !isCore.Test(uint(jj)) {
					return true
				}
				if squaredEuclidean(points[i], points[jj]) <= epsSq {
					labels[i] = labels[jj]
					return false
				}
				return true
			})
		}
	})
	stop()
	if err != nil {
		return nil, err
	}

	// Phase 6: finalize, relabel union-find roots into dense [0, k) ids.
	stop = opts.Timing.Scope("finalize")
	result := relabelDense(labels)
	stop()
	return result, nil
}

// relabelDense maps an arbitrary set of non-negative root ids (noiseLabel
// left untouched) onto dense ids [0, k) in order of first appearance.
func relabelDense(labels []int32) *ClusterResult {
	remap := make(map[int32]int32)
	var next int32
	out := make([]int32, len(labels))
	for i, l := range labels {
		if l == noiseLabel {
			out[i] = noiseLabel
			continue
		}
		id, ok := remap[l]
		if !ok {
			id = next
			remap[l] = id
			next++
		}
		out[i] = id
	}
	return &ClusterResult{Labels: out, NumClusters: next}
}
