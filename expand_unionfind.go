package dbscan

import "sync/atomic"

// invalidParent marks a non-core point in the grid-L1 union-find
// expansion: it never has a root and never participates in unite.
const invalidParent = ^uint32(0)

// gridL1UnionFind is an atomic union-find restricted to core points, used
// only by [expandUnionFind]. Unlike [AtomicUnionFind] it must distinguish
// "not a member" (invalidParent) from "its own root", since only core
// points are ever inserted.
type gridL1UnionFind struct {
	parent []atomic.Uint32
}

func newGridL1UnionFind(isCore []bool) *gridL1UnionFind {
	uf := &gridL1UnionFind{parent: make([]atomic.Uint32, len(isCore))}
	for i, core := range isCore {
		if core {
			uf.parent[i].Store(uint32(i))
		} else {
			uf.parent[i].Store(invalidParent)
		}
	}
	return uf
}

func (uf *gridL1UnionFind) find(node uint32) uint32 {
	parent := uf.parent[node].Load()
	if parent == invalidParent {
		return invalidParent
	}
	for {
		grandparent := uf.parent[parent].Load()
		if grandparent == parent {
			if parent != node {
				uf.parent[node].Store(parent)
			}
			return parent
		}
		uf.parent[node].CompareAndSwap(parent, grandparent)
		node = parent
		parent = uf.parent[node].Load()
		if parent == invalidParent {
			return invalidParent
		}
	}
}

func (uf *gridL1UnionFind) unite(a, b uint32) {
	for {
		ra, rb := uf.find(a), uf.find(b)
		if ra == invalidParent || rb == invalidParent || ra == rb {
			return
		}
		if ra < rb {
			if uf.parent[rb].CompareAndSwap(rb, ra) {
				return
			}
		} else {
			if uf.parent[ra].CompareAndSwap(ra, rb) {
				return
			}
		}
	}
}

// expandUnionFind unions every core point with its core neighbors
// concurrently, independent of cluster boundaries, then derives dense
// labels from the resulting components: because unite always attaches the
// larger root under the smaller one, a component's final root is always
// its smallest member's index, so components can be dense-relabeled just
// by sorting the distinct roots. Border points are assigned afterward to
// whichever core neighbor has the smallest resulting label.
func expandUnionFind(ctx *gridL1Context) []int32 {
	uf := newGridL1UnionFind(ctx.isCore)

	unionChunk := ctx.chunkSize
	if unionChunk == 0 {
		unionChunk = 512
	}
	Parallelize(0, ctx.count, ctx.numThreads, unionChunk, func(begin, end int) {
		for idx := begin; idx < end; idx++ {
			if !ctx.isCore[idx] {
				continue
			}
			ctx.forEachNeighbor(uint32(idx), func(neighbor uint32) bool {
				if ctx.isCore[neighbor] {
					uf.unite(uint32(idx), neighbor)
				}
				return true
			})
		}
	})

	rootForPoint := make([]uint32, ctx.count)
	roots := make([]uint32, 0, ctx.count)
	for i := 0; i < ctx.count; i++ {
		if ctx.isCore[i] {
			r := uf.find(uint32(i))
			rootForPoint[i] = r
			roots = append(roots, r)
		} else {
			rootForPoint[i] = invalidParent
		}
	}
	rootLabel := relabelSortedRoots(roots)

	labels := make([]int32, ctx.count)
	for i := range labels {
		labels[i] = noiseLabel
	}
	for i := 0; i < ctx.count; i++ {
		if !ctx.isCore[i] {
			continue
		}
		labels[i] = rootLabel[rootForPoint[i]]
	}

	for i := 0; i < ctx.count; i++ {
		if ctx.isCore[i] {
			continue
		}
		bestLabel := noiseLabel
		ctx.forEachNeighbor(uint32(i), func(neighbor uint32) bool {
			if !ctx.isCore[neighbor] {
				return true
			}
			candidate := labels[neighbor]
			if candidate != noiseLabel && (bestLabel == noiseLabel || candidate < bestLabel) {
				bestLabel = candidate
			}
			return true
		})
		labels[i] = bestLabel
	}

	return labels
}
