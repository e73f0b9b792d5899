package dbscan

// combination2 returns C(n, 2), the number of unordered pairs among n
// items, as a float64 to match the chance-correction arithmetic below.
func combination2(n int64) float64 {
	if n <= 1 {
		return 0.0
	}
	return float64(n) * float64(n-1) / 2.0
}

// AdjustedRandIndex computes the chance-corrected agreement between two
// label partitions of the same n points, following the standard
// contingency-table formulation. Labels need not share a value space or
// ordering; -1 (noise) is treated as an ordinary label, not specially
// excluded. Returns 1.0 when a and b are
// identical up to relabeling, and when both degenerate to a single group
// (denominator zero, by convention a perfect match). Panics if len(a) !=
// len(b); callers compare label vectors of equal length by construction.
func AdjustedRandIndex(a, b []int32) float64 {
	if len(a) != len(b) {
		panic("dbscan: AdjustedRandIndex requires equal-length label vectors")
	}
	n := len(a)
	if n == 0 {
		return 1.0
	}

	aIndex := make(map[int32]int)
	bIndex := make(map[int32]int)
	for _, l := range a {
		if _, ok := aIndex[l]; !ok {
			aIndex[l] = len(aIndex)
		}
	}
	for _, l := range b {
		if _, ok := bIndex[l]; !ok {
			bIndex[l] = len(bIndex)
		}
	}

	rows, cols := len(aIndex), len(bIndex)
	contingency := make([]int64, rows*cols)
	aCounts := make([]int64, rows)
	bCounts := make([]int64, cols)

	for i := 0; i < n; i++ {
		r := aIndex[a[i]]
		c := bIndex[b[i]]
		contingency[r*cols+c]++
		aCounts[r]++
		bCounts[c]++
	}

	var sumComb float64
	for _, count := range contingency {
		sumComb += combination2(count)
	}
	var aComb, bComb float64
	for _, count := range aCounts {
		aComb += combination2(count)
	}
	for _, count := range bCounts {
		bComb += combination2(count)
	}

	totalPairs := combination2(int64(n))
	var expectedIndex float64
	if totalPairs > 0 {
		expectedIndex = (aComb * bComb) / totalPairs
	}

	maxIndex := 0.5 * (aComb + bComb)
	denominator := maxIndex - expectedIndex
	if denominator == 0 {
		return 1.0
	}
	return (sumComb - expectedIndex) / denominator
}
