package dbscan

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// resolveThreads turns the "0 means hardware concurrency" convention used
// throughout the package's parallel entry points into a concrete worker
// count of at least 1.
func resolveThreads(numThreads int) int {
	if numThreads > 0 {
		return numThreads
	}
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// ParallelFor partitions [begin, end) into numThreads contiguous chunks
// (static split: the last chunk absorbs the remainder) and runs fn once per
// non-empty chunk on its own goroutine. It returns once every worker has
// finished. numThreads == 0 means [resolveThreads](0); an empty range never
// invokes fn.
//
// Workers are joined through an errgroup.Group. fn returns nothing, so the
// returned error is always nil; a panic inside fn is not recovered.
func ParallelFor(begin, end, numThreads int, fn func(start, stop int)) error {
	if begin >= end {
		return nil
	}
	numThreads = resolveThreads(numThreads)

	total := end - begin
	chunk := total / numThreads

	var g errgroup.Group
	for t := 0; t < numThreads; t++ {
		start := begin + t*chunk
		stop := start + chunk
		if t == numThreads-1 {
			stop = end
		}
		if start >= stop {
			continue
		}
		g.Go(func() error {
			fn(start, stop)
			return nil
		})
	}
	return g.Wait()
}

// Parallelize runs fn over [begin, end) using a dynamic work-stealing
// dispatch: numThreads workers repeatedly fetch-and-add chunkSize from a
// shared atomic cursor to claim the next slice, until the cursor reaches
// end. chunkSize == 0 defaults to ceil((end-begin)/numThreads). numThreads
// == 0 means [resolveThreads](0); an empty range never invokes fn.
func Parallelize(begin, end, numThreads, chunkSize int, fn func(start, stop int)) error {
	if begin >= end {
		return nil
	}
	numThreads = resolveThreads(numThreads)
	if chunkSize <= 0 {
		chunkSize = max(1, (end-begin+numThreads-1)/numThreads)
	}

	var cursor atomic.Int64
	cursor.Store(int64(begin))

	var g errgroup.Group
	for w := 0; w < numThreads; w++ {
		g.Go(func() error {
			for {
				start := int(cursor.Add(int64(chunkSize))) - chunkSize
				if start >= end {
					return nil
				}
				stop := min(start+chunkSize, end)
				fn(start, stop)
			}
		})
	}
	return g.Wait()
}
