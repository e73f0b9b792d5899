package dbscan

import (
	"math/rand"
	"testing"
)

func generatePoints(n int) []Point[float64] {
	rng := rand.New(rand.NewSource(42))
	points := make([]Point[float64], n)
	for i := range points {
		points[i] = Point[float64]{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return points
}

func generateGridL1Coords(n int) (x, y []uint32) {
	rng := rand.New(rand.NewSource(42))
	x = make([]uint32, n)
	y = make([]uint32, n)
	for i := range x {
		x[i] = uint32(rng.Intn(1000))
		y[i] = uint32(rng.Intn(1000))
	}
	return x, y
}

func benchBaseline(b *testing.B, n int) {
	b.Helper()
	points := generatePoints(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Cluster(points, 5.0, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBaseline_100(b *testing.B) { benchBaseline(b, 100) }
func BenchmarkBaseline_500(b *testing.B) { benchBaseline(b, 500) }

func benchClusterGrid(b *testing.B, n int) {
	b.Helper()
	points := generatePoints(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ClusterGrid(points, 5.0, 5, GridOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClusterGrid_100(b *testing.B)   { benchClusterGrid(b, 100) }
func BenchmarkClusterGrid_500(b *testing.B)   { benchClusterGrid(b, 500) }
func BenchmarkClusterGrid_5000(b *testing.B)  { benchClusterGrid(b, 5000) }
func BenchmarkClusterGrid_20000(b *testing.B) { benchClusterGrid(b, 20000) }

func benchClusterGridL1(b *testing.B, n int, mode ExpansionMode) {
	b.Helper()
	x, y := generateGridL1Coords(n)
	params := GridL1Params{Eps: 20, MinSamples: 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ClusterGridL1SoA(x, y, params, mode); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClusterGridL1_Sequential_5000(b *testing.B) {
	benchClusterGridL1(b, 5000, Sequential)
}
func BenchmarkClusterGridL1_FrontierParallel_5000(b *testing.B) {
	benchClusterGridL1(b, 5000, FrontierParallel)
}
func BenchmarkClusterGridL1_UnionFind_5000(b *testing.B) {
	benchClusterGridL1(b, 5000, UnionFind)
}
func BenchmarkClusterGridL1_UnionFind_20000(b *testing.B) {
	benchClusterGridL1(b, 20000, UnionFind)
}

func BenchmarkAtomicUnionFind_Unite(b *testing.B) {
	const n = 10000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf := NewAtomicUnionFind(n)
		for j := 0; j < n-1; j++ {
			uf.Unite(int32(j), int32(j+1))
		}
	}
}
