package dbscan

import (
	"sort"
	"sync"
	"sync/atomic"
)

// expandFrontierParallel grows one cluster at a time, like
// [expandSequential], but expands each wave of a cluster's frontier across
// multiple goroutines via [Parallelize]: every point in the current
// frontier has its neighbors scanned concurrently, newly-claimed core
// points (via a CAS against the unvisited sentinel) become next wave's
// frontier, newly-claimed border points keep the label without being
// expanded, and the wave repeats until it runs dry.
func expandFrontierParallel(ctx *gridL1Context) []int32 {
	sharedLabels := make([]atomic.Int32, ctx.count)
	for i := range sharedLabels {
		sharedLabels[i].Store(noiseLabel)
	}

	frontierChunk := ctx.chunkSize
	if frontierChunk == 0 {
		frontierChunk = 64
	}

	var nextLabel int32
	frontier := make([]uint32, 0, 256)

	for seed := 0; seed < ctx.count; seed++ {
		if !ctx.isCore[seed] || sharedLabels[seed].Load() != noiseLabel {
			continue
		}

		label := nextLabel
		nextLabel++
		sharedLabels[seed].Store(label)
		frontier = frontier[:0]
		frontier = append(frontier, uint32(seed))

		for len(frontier) > 0 {
			var mu sync.Mutex
			var nextFrontier []uint32

			Parallelize(0, len(frontier), ctx.numThreads, frontierChunk, func(begin, end int) {
				localNext := make([]uint32, 0, 32)
				var neighborBuf []uint32

				for idx := begin; idx < end; idx++ {
					current := frontier[idx]

					neighborBuf = neighborBuf[:0]
					ctx.forEachNeighbor(current, func(neighbor uint32) bool {
						neighborBuf = append(neighborBuf, neighbor)
						return true
					})

					for _, neighbor := range neighborBuf {
						if sharedLabels[neighbor].CompareAndSwap(noiseLabel, label) {
							if ctx.isCore[neighbor] {
								localNext = append(localNext, neighbor)
							}
						}
					}
				}

				if len(localNext) > 0 {
					sort.Slice(localNext, func(i, j int) bool { return localNext[i] < localNext[j] })
					localNext = dedupSortedU32(localNext)
					mu.Lock()
					nextFrontier = append(nextFrontier, localNext...)
					mu.Unlock()
				}
			})

			if len(nextFrontier) == 0 {
				break
			}
			sort.Slice(nextFrontier, func(i, j int) bool { return nextFrontier[i] < nextFrontier[j] })
			frontier = append(frontier[:0], dedupSortedU32(nextFrontier)...)
		}
	}

	labels := make([]int32, ctx.count)
	for i := range labels {
		labels[i] = sharedLabels[i].Load()
	}
	return labels
}

// dedupSortedU32 removes adjacent duplicates from an already-sorted slice,
// in place, returning the deduplicated prefix.
func dedupSortedU32(s []uint32) []uint32 {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
