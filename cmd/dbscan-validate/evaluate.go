package main

import "github.com/bolu-atx/dbscan2d"

// evaluationMetrics reports a chance-corrected agreement score plus a
// majority-vote accuracy that is easier for a human to read off a
// terminal.
type evaluationMetrics struct {
	AdjustedRand      float64
	RemappedAccuracy  float64
	MismatchedPoints  int
	PredictedClusters int
	TruthClusters     int
	PredictedNoise    int
	TruthNoise        int
	Passed            bool
}

// evaluate compares predicted labels against ground truth: the adjusted
// Rand index for chance-corrected agreement, plus a majority-vote remap of
// predicted cluster ids onto truth cluster ids to report how many points
// land on a mismatched label after that remap. mismatchIndices, if
// non-nil, is filled with the indices that disagree after remapping.
func evaluate(predicted, truth []int32, mismatchIndices *[]int) evaluationMetrics {
	n := len(truth)

	predictedValues, predictedIndex := labelIndex(predicted)
	truthValues, truthIndex := labelIndex(truth)

	predictedSize, truthSize := len(predictedValues), len(truthValues)
	contingency := make([]int64, predictedSize*truthSize)
	predictedCounts := make([]int64, predictedSize)
	truthCounts := make([]int64, truthSize)

	for i := 0; i < n; i++ {
		row := predictedIndex[predicted[i]]
		col := truthIndex[truth[i]]
		contingency[row*truthSize+col]++
		predictedCounts[row]++
		truthCounts[col]++
	}

	remap := make(map[int32]int32, predictedSize)
	for row, label := range predictedValues {
		if label == -1 {
			remap[label] = -1
			continue
		}
		bestCol, bestCount := 0, int64(-1)
		rowOffset := row * truthSize
		for col := 0; col < truthSize; col++ {
			if contingency[rowOffset+col] > bestCount {
				bestCount = contingency[rowOffset+col]
				bestCol = col
			}
		}
		remap[label] = truthValues[bestCol]
	}

	if mismatchIndices != nil {
		*mismatchIndices = (*mismatchIndices)[:0]
	}
	matches := 0
	for i := 0; i < n; i++ {
		mapped, ok := remap[predicted[i]]
		if !ok {
			mapped = predicted[i]
		}
		if mapped == truth[i] {
			matches++
		} else if mismatchIndices != nil {
			*mismatchIndices = append(*mismatchIndices, i)
		}
	}

	remappedAccuracy := 1.0
	if n > 0 {
		remappedAccuracy = float64(matches) / float64(n)
	}
	mismatched := n - matches
	if mismatchIndices != nil {
		mismatched = len(*mismatchIndices)
	}

	metrics := evaluationMetrics{
		AdjustedRand:      dbscan.AdjustedRandIndex(predicted, truth),
		RemappedAccuracy:  remappedAccuracy,
		MismatchedPoints:  mismatched,
		PredictedClusters: countClusters(predicted),
		TruthClusters:     countClusters(truth),
		PredictedNoise:    countNoise(predicted),
		TruthNoise:        countNoise(truth),
	}
	metrics.Passed = metrics.MismatchedPoints == 0 && metrics.PredictedClusters == metrics.TruthClusters
	return metrics
}

// labelIndex assigns each distinct label a dense row/column index in
// first-appearance order.
func labelIndex(labels []int32) (values []int32, index map[int32]int) {
	index = make(map[int32]int)
	for _, l := range labels {
		if _, ok := index[l]; !ok {
			index[l] = len(values)
			values = append(values, l)
		}
	}
	return values, index
}

func countClusters(labels []int32) int {
	seen := make(map[int32]bool)
	for _, l := range labels {
		if l != -1 {
			seen[l] = true
		}
	}
	return len(seen)
}

func countNoise(labels []int32) int {
	n := 0
	for _, l := range labels {
		if l == -1 {
			n++
		}
	}
	return n
}
