package dbscan

import "sync/atomic"

// AtomicUnionFind is a lock-free disjoint-set over the indices 0..n, used
// by the grid-L2 core-core union phase ([ClusterGrid]); the grid-L1
// UnionFind expansion strategy uses its own core-only variant,
// gridL1UnionFind. Every Find compresses the path it
// walks, so repeated Find calls on the same node get cheaper over time;
// Unite resolves concurrent merges by always attaching the numerically
// larger root under
// the smaller one, so the final representative of any component is
// determined by the edge set alone, independent of scheduling.
type AtomicUnionFind struct {
	parent []atomic.Int32
}

// NewAtomicUnionFind creates a union-find over n elements, each initially
// its own root.
func NewAtomicUnionFind(n int) *AtomicUnionFind {
	uf := &AtomicUnionFind{parent: make([]atomic.Int32, n)}
	for i := range uf.parent {
		uf.parent[i].Store(int32(i))
	}
	return uf
}

// Find returns the root of the set containing i, compressing the path it
// walks with a best-effort CAS. A lost CAS just leaves a longer chain for
// the next Find to shorten; it never introduces a cycle or a non-root fixed
// point.
func (uf *AtomicUnionFind) Find(i int32) int32 {
	root := i
	for {
		parent := uf.parent[root].Load()
		if parent == root {
			break
		}
		root = parent
	}

	for i != root {
		parent := uf.parent[i].Load()
		if parent == root {
			break
		}
		uf.parent[i].CompareAndSwap(parent, root)
		i = parent
	}
	return root
}

// Unite merges the sets containing i and j. The numerically smaller of the
// two roots always becomes the new root; on CAS failure (a concurrent
// writer beat us to it) it retries from the top.
func (uf *AtomicUnionFind) Unite(i, j int32) {
	for {
		a, b := uf.Find(i), uf.Find(j)
		if a == b {
			return
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		if uf.parent[hi].CompareAndSwap(hi, lo) {
			return
		}
	}
}
