package dbscan

import "fmt"

// Cluster runs the reference all-pairs DBSCAN: every point's neighborhood is
// found by scanning the full point set, so cost grows as O(n^2). It exists
// as the correctness oracle the grid-accelerated engines are checked
// against, not as a production-scale path.
//
// A point is core when it has at least minSamples *other* points within eps
// (self is excluded from the neighbor count). Returns ErrInvalidInput if eps
// <= 0 or minSamples < 1.
func Cluster[F Float](points []Point[F], eps F, minSamples int) (*ClusterResult, error) {
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

	epsSq := eps * eps
	labels := make([]int32, n)
	const unvisited int32 = -1
	const pendingNoise int32 = -2
	for i := range labels {
		labels[i] = unvisited
	}

	findNeighbors := func(idx int) []int32 {
		target := points[idx]
		var neighbors []int32
		for j := 0; j < n; j++ {
			if j == idx {
				continue
			}
			if squaredEuclidean(target, points[j]) <= epsSq {
				neighbors = append(neighbors, int32(j))
			}
		}
		return neighbors
	}

	var nextClusterID int32
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}

		neighbors := findNeighbors(i)
		if len(neighbors) < minSamples {
			labels[i] = pendingNoise
			continue
		}

		clusterID := nextClusterID
		nextClusterID++
		labels[i] = clusterID

		seeds := append([]int32{}, neighbors...)
		for len(seeds) > 0 {
			current := seeds[0]
			seeds = seeds[1:]

			if labels[current] == pendingNoise {
				labels[current] = clusterID
				continue
			}
			if labels[current] != unvisited {
				continue
			}
			labels[current] = clusterID

			currentNeighbors := findNeighbors(int(current))
			if len(currentNeighbors) >= minSamples {
				for _, nb := range currentNeighbors {
					if labels[nb] == unvisited || labels[nb] == pendingNoise {
						seeds = append(seeds, nb)
					}
				}
			}
		}
	}

	for i, l := range labels {
		if l == pendingNoise {
			labels[i] = noiseLabel
		}
	}

	return &ClusterResult{Labels: labels, NumClusters: nextClusterID}, nil
}
