package dbscan

import "sort"

// cellKey packs a (cellX, cellY) pair into a single comparable uint64, cellX
// in the high 32 bits and cellY in the low 32 bits, matching the reference
// implementation's pack_cell so unique_keys sorts first by cellX then by
// cellY.
func cellKey(cx, cy uint32) uint64 {
	return uint64(cx)<<32 | uint64(cy)
}

// grid is a compressed-sparse-row uniform spatial hash used by both
// [ClusterGrid] and the grid-L1 family. Points are bucketed into
// non-negative integer cells, sorted by packed cell key, and indexed with a
// sorted unique-key array plus matching cell_offsets so a cell's members
// are the contiguous slice orderedIndices[cellOffsets[k]:cellOffsets[k+1]]
// for unique key uniqueKeys[k].
type grid struct {
	cellX          []uint32
	cellY          []uint32
	orderedIndices []uint32
	uniqueKeys     []uint64
	cellOffsets    []int
}

// buildGrid assigns every point (given by its per-point cell coordinates)
// into the CSR grid structure. cellXOf/cellYOf map a point index to its
// cell coordinates; both slices must have length n.
func buildGrid(n int, cellXOf, cellYOf []uint32) *grid {
	return buildGridTimed(n, cellXOf, cellYOf, nil)
}

// buildGridTimed is [buildGrid] with its two phases recorded separately on
// timing: sort_indices (ordering points by packed cell key) and
// build_cell_offsets (collapsing the sorted order into unique_keys/
// cell_offsets).
func buildGridTimed(n int, cellXOf, cellYOf []uint32, timing *PerfTiming) *grid {
	g := &grid{cellX: cellXOf, cellY: cellYOf}
	if n == 0 {
		g.orderedIndices = []uint32{}
		g.uniqueKeys = []uint64{}
		g.cellOffsets = []int{0}
		return g
	}

	stop := timing.Scope("sort_indices")
	keys := make([]uint64, n)
	for i := 0; i < n; i++ {
		keys[i] = cellKey(cellXOf[i], cellYOf[i])
	}

	order := make([]uint32, n)
	for i := range order {
		order[i] = uint32(i)
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if ka != kb {
			return ka < kb
		}
		return order[a] < order[b]
	})
	stop()

	stop = timing.Scope("build_cell_offsets")
	uniqueKeys := make([]uint64, 0, n)
	offsets := make([]int, 0, n+1)
	var last uint64
	for pos, idx := range order {
		k := keys[idx]
		if pos == 0 || k != last {
			uniqueKeys = append(uniqueKeys, k)
			offsets = append(offsets, pos)
			last = k
		}
	}
	offsets = append(offsets, n)
	stop()

	g.orderedIndices = order
	g.uniqueKeys = uniqueKeys
	g.cellOffsets = offsets
	return g
}

// cellRange returns the [begin, end) slice bounds into orderedIndices for
// the cell at (cx, cy), and false if that cell holds no points.
func (g *grid) cellRange(cx, cy uint32) (begin, end int, ok bool) {
	key := cellKey(cx, cy)
	i := sort.Search(len(g.uniqueKeys), func(i int) bool { return g.uniqueKeys[i] >= key })
	if i >= len(g.uniqueKeys) || g.uniqueKeys[i] != key {
		return 0, 0, false
	}
	return g.cellOffsets[i], g.cellOffsets[i+1], true
}

// forEachNeighborCell calls visit once per point index found in the 3x3
// block of cells centered on (cx, cy), including (cx, cy) itself, stopping
// as soon as visit returns false. Cell coordinates below 0 (after applying
// dx/dy) are skipped rather than wrapped, matching the unsigned-coordinate
// reference behavior.
func (g *grid) forEachNeighborCell(cx, cy uint32, visit func(pointIndex uint32) bool) {
	for dx := -1; dx <= 1; dx++ {
		nx64 := int64(cx) + int64(dx)
		if nx64 < 0 {
			continue
		}
		nx := uint32(nx64)
		for dy := -1; dy <= 1; dy++ {
			ny64 := int64(cy) + int64(dy)
			if ny64 < 0 {
				continue
			}
			ny := uint32(ny64)
			begin, end, ok := g.cellRange(nx, ny)
			if !ok {
				continue
			}
			for _, idx := range g.orderedIndices[begin:end] {
				if !visit(idx) {
					return
				}
			}
		}
	}
}
