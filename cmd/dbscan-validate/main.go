// Command dbscan-validate runs one or more DBSCAN engines over a binary
// point/truth dataset and reports how closely each engine's output matches
// the ground truth.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bolu-atx/dbscan2d"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/stat"
)

var (
	dataPath       string
	truthPath      string
	eps            float64
	minSamples     int
	impl           string
	dumpMismatches string
)

func main() {
	root := &cobra.Command{
		Use:   "dbscan-validate",
		Short: "Validate DBSCAN engine output against a ground-truth label file",
		RunE:  run,
	}

	var flags *pflag.FlagSet = root.Flags()
	flags.StringVar(&dataPath, "data", "data.bin", "path to the binary point file (raw little-endian (y,x) uint32 pairs)")
	flags.StringVar(&truthPath, "truth", "truth.bin", "path to the binary ground-truth label file (raw little-endian int32 labels)")
	flags.Float64Var(&eps, "eps", 60.0, "neighborhood radius")
	flags.IntVar(&minSamples, "min-samples", 16, "minimum neighbor count for a core point")
	flags.StringVar(&impl, "impl", "all", "which engine(s) to run: baseline|optimized|grid|both|all")
	flags.StringVar(&dumpMismatches, "dump-mismatches", "", "directory to write a JSON mismatch report into, one per engine that has mismatches, if set")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type engineSelection struct {
	runBaseline  bool
	runOptimized bool
	runGridL1    bool
}

func resolveImpl(value string) (engineSelection, error) {
	switch value {
	case "baseline":
		return engineSelection{runBaseline: true}, nil
	case "optimized":
		return engineSelection{runOptimized: true}, nil
	case "grid", "grid_l1":
		return engineSelection{runGridL1: true}, nil
	case "both":
		return engineSelection{runBaseline: true, runOptimized: true}, nil
	case "all":
		return engineSelection{runBaseline: true, runOptimized: true, runGridL1: true}, nil
	default:
		return engineSelection{}, fmt.Errorf("--impl expects one of: baseline, optimized, grid, both, all (got %q)", value)
	}
}

type runResult struct {
	name    string
	metrics evaluationMetrics
}

func run(cmd *cobra.Command, args []string) error {
	if eps <= 0 {
		return fmt.Errorf("--eps must be positive")
	}
	if minSamples <= 0 {
		return fmt.Errorf("--min-samples must be positive")
	}
	selection, err := resolveImpl(impl)
	if err != nil {
		return err
	}

	dataFile, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("opening data file: %w", err)
	}
	defer dataFile.Close()
	points, x, y, err := dbscan.ReadPointFile(dataFile)
	if err != nil {
		return fmt.Errorf("loading data file: %w", err)
	}

	truthFile, err := os.Open(truthPath)
	if err != nil {
		return fmt.Errorf("opening truth file: %w", err)
	}
	defer truthFile.Close()
	truthLabels, err := dbscan.ReadLabelFile(truthFile)
	if err != nil {
		return fmt.Errorf("loading truth file: %w", err)
	}

	if len(points) != len(truthLabels) {
		return fmt.Errorf("point count (%d) and truth label count (%d) differ", len(points), len(truthLabels))
	}

	fmt.Printf("Loaded %d points from %s\n", len(points), dataPath)
	fmt.Printf("Using eps=%v, min-samples=%d\n", eps, minSamples)
	fmt.Printf("Ground truth clusters: %d; noise points: %d\n", countClusters(truthLabels), countNoise(truthLabels))

	var results []runResult
	mismatchesByEngine := make(map[string][]int)

	runOne := func(name string, cluster func() (*dbscan.ClusterResult, error)) error {
		fmt.Printf("\n[%s] Running clustering...", name)
		start := time.Now()
		clustering, err := cluster()
		if err != nil {
			return fmt.Errorf("%s engine: %w", name, err)
		}
		var mismatches []int
		var mismatchDest *[]int
		if dumpMismatches != "" {
			mismatchDest = &mismatches
		}
		metrics := evaluate(clustering.Labels, truthLabels, mismatchDest)
		fmt.Printf(" done in %v\n", time.Since(start).Round(time.Millisecond))
		results = append(results, runResult{name: name, metrics: metrics})
		if mismatchDest != nil {
			mismatchesByEngine[name] = mismatches
		}
		return nil
	}

	if selection.runBaseline {
		if err := runOne("baseline", func() (*dbscan.ClusterResult, error) {
			return dbscan.Cluster(points, eps, minSamples)
		}); err != nil {
			return err
		}
	}
	if selection.runOptimized {
		if err := runOne("optimized", func() (*dbscan.ClusterResult, error) {
			return dbscan.ClusterGrid(points, eps, minSamples, dbscan.GridOptions{})
		}); err != nil {
			return err
		}
	}
	if selection.runGridL1 {
		if err := runOne("grid_l1", func() (*dbscan.ClusterResult, error) {
			return dbscan.ClusterGridL1SoA(x, y, dbscan.GridL1Params{
				Eps:        uint32(eps),
				MinSamples: uint32(minSamples),
			}, dbscan.UnionFind)
		}); err != nil {
			return err
		}
	}

	fmt.Println()
	printSummary(results)

	if dumpMismatches != "" {
		if err := dumpMismatchReports(dumpMismatches, mismatchesByEngine); err != nil {
			return err
		}
	}

	allPassed := true
	for _, r := range results {
		if !r.metrics.Passed {
			allPassed = false
		}
	}
	if !allPassed {
		os.Exit(1)
	}
	return nil
}

func printSummary(results []runResult) {
	adjustedRands := make([]float64, len(results))
	for i, r := range results {
		status := "PASS"
		if !r.metrics.Passed {
			status = "FAIL"
		}
		fmt.Printf("%-10s %s  ari=%.4f  accuracy=%.4f  mismatches=%d  clusters=%d (truth %d)\n",
			r.name, status, r.metrics.AdjustedRand, r.metrics.RemappedAccuracy,
			r.metrics.MismatchedPoints, r.metrics.PredictedClusters, r.metrics.TruthClusters)
		adjustedRands[i] = r.metrics.AdjustedRand
	}
	if len(adjustedRands) > 1 {
		mean, stddev := stat.MeanStdDev(adjustedRands, nil)
		fmt.Printf("\nacross %d engines: mean ari=%.4f, stddev=%.4f\n", len(adjustedRands), mean, stddev)
	}
}

type mismatchReport struct {
	Engine     string `json:"engine"`
	Mismatches []int  `json:"mismatches"`
}

func dumpMismatchReports(dir string, byEngine map[string][]int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating mismatch output directory: %w", err)
	}
	for engine, indices := range byEngine {
		if len(indices) == 0 {
			continue
		}
		report := mismatchReport{Engine: engine, Mismatches: indices}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling mismatch report for %s: %w", engine, err)
		}
		path := filepath.Join(dir, engine+"_mismatches.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing mismatch report for %s: %w", engine, err)
		}
	}
	return nil
}
