package dbscan

// expandSequential grows clusters one at a time with a depth-first stack,
// the simplest of the three grid-L1 expansion strategies and the one used
// when the caller has no reason to pay for concurrency. Border points
// (reached from a core point but not themselves core) are labeled but not
// pushed back onto the stack, so expansion never walks past the core
// frontier.
func expandSequential(ctx *gridL1Context) []int32 {
	labels := make([]int32, ctx.count)
	for i := range labels {
		labels[i] = noiseLabel
	}

	stack := make([]uint32, 0, ctx.count)
	var neighborBuf []uint32
	var nextLabel int32

	for i := 0; i < ctx.count; i++ {
		if !ctx.isCore[i] || labels[i] != noiseLabel {
			continue
		}

		labels[i] = nextLabel
		stack = stack[:0]
		stack = append(stack, uint32(i))

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighborBuf = neighborBuf[:0]
			ctx.forEachNeighbor(current, func(neighbor uint32) bool {
				neighborBuf = append(neighborBuf, neighbor)
				return true
			})

			for _, neighbor := range neighborBuf {
				if labels[neighbor] == noiseLabel {
					labels[neighbor] = nextLabel
					if ctx.isCore[neighbor] {
						stack = append(stack, neighbor)
					}
				}
			}
		}

		nextLabel++
	}

	return labels
}
