package dbscan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestEquivalence_BaselineAndGrid checks that the all-pairs baseline and
// the grid-accelerated L2 engine produce the same partition (up to label
// permutation) on a battery of small, hand-built inputs that exercise
// noise, borders, and multiple clusters.
func TestEquivalence_BaselineAndGrid(t *testing.T) {
	cases := []struct {
		name       string
		points     []Point[float64]
		eps        float64
		minSamples int
	}{
		{
			name: "two-clusters-and-noise",
			points: []Point[float64]{
				{X: 0, Y: 0}, {X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2},
				{X: 5, Y: 5}, {X: 5.1, Y: 5.1}, {X: 5.2, Y: 5.2},
				{X: 10, Y: 10},
			},
			eps: 0.5, minSamples: 2,
		},
		{
			name:       "single-point",
			points:     []Point[float64]{{X: 1, Y: 2}},
			eps:        0.5,
			minSamples: 3,
		},
		{
			name: "all-noise",
			points: []Point[float64]{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			},
			eps: 0.1, minSamples: 5,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			base, err := Cluster(c.points, c.eps, c.minSamples)
			require.NoError(t, err)
			grid, err := ClusterGrid(c.points, c.eps, c.minSamples, GridOptions{})
			require.NoError(t, err)
			require.Equal(t, len(base.Labels), len(grid.Labels))
			require.Equal(t, 1.0, AdjustedRandIndex(base.Labels, grid.Labels))
		})
	}
}

// TestEquivalence_GridL1ExpansionModes checks that the three grid-L1
// expansion strategies agree with each other on a battery of inputs.
func TestEquivalence_GridL1ExpansionModes(t *testing.T) {
	cases := []struct {
		name       string
		x, y       []uint32
		eps        uint32
		minSamples uint32
	}{
		{name: "three-close-one-far", x: []uint32{0, 1, 2, 100}, y: []uint32{0, 0, 1, 200}, eps: 4, minSamples: 3},
		{name: "all-below-threshold", x: []uint32{0, 2, 4}, y: []uint32{0, 2, 4}, eps: 3, minSamples: 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params := GridL1Params{Eps: c.eps, MinSamples: c.minSamples}
			seq, err := ClusterGridL1SoA(c.x, c.y, params, Sequential)
			require.NoError(t, err)
			frontier, err := ClusterGridL1SoA(c.x, c.y, params, FrontierParallel)
			require.NoError(t, err)
			uf, err := ClusterGridL1SoA(c.x, c.y, params, UnionFind)
			require.NoError(t, err)

			require.Equal(t, 1.0, AdjustedRandIndex(seq.Labels, frontier.Labels))
			require.Equal(t, 1.0, AdjustedRandIndex(seq.Labels, uf.Labels))
		})
	}
}

// TestEquivalence_RandomizedTrials runs many randomized instances across
// the baseline and grid-L2 engines, both to check ARI == 1.0 on each trial
// and to report aggregate statistics over the number of clusters found
// per trial using gonum/stat, the way a diagnostics-minded test suite
// would summarize a fuzz-style sweep instead of only asserting pass/fail.
func TestEquivalence_RandomizedTrials(t *testing.T) {
	const trials = 30
	rng := rand.New(rand.NewSource(7))

	clusterCounts := make([]float64, 0, trials)
	for trial := 0; trial < trials; trial++ {
		n := 10 + rng.Intn(40)
		points := make([]Point[float64], n)
		for i := range points {
			// Cluster coordinates into a handful of blobs so there's
			// usually some real structure to agree on, not just noise.
			blob := float64(rng.Intn(4)) * 20
			points[i] = Point[float64]{
				X: blob + rng.Float64()*3,
				Y: blob + rng.Float64()*3,
			}
		}
		eps := 2.0
		minSamples := 3

		base, err := Cluster(points, eps, minSamples)
		require.NoError(t, err)
		grid, err := ClusterGrid(points, eps, minSamples, GridOptions{})
		require.NoError(t, err)

		require.Equalf(t, 1.0, AdjustedRandIndex(base.Labels, grid.Labels),
			"trial %d: baseline and grid disagree", trial)
		clusterCounts = append(clusterCounts, float64(base.NumClusters))
	}

	mean, stddev := stat.MeanStdDev(clusterCounts, nil)
	t.Logf("over %d randomized trials: mean clusters = %.2f, stddev = %.2f", trials, mean, stddev)
	require.GreaterOrEqual(t, mean, 0.0)
}
