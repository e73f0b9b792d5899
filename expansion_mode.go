package dbscan

// ExpansionMode selects how the grid-L1 engine grows clusters outward from
// core points once core detection has finished. The set is closed and
// small enough that a tagged enum dispatching to a pure function per mode
// is clearer than a dynamic-dispatch interface.
type ExpansionMode int

const (
	// Sequential grows one cluster at a time with a depth-first stack,
	// visiting the whole point set on a single goroutine.
	Sequential ExpansionMode = iota
	// FrontierParallel grows one cluster at a time, but expands each
	// cluster's frontier in parallel wave by wave.
	FrontierParallel
	// UnionFind unions every core point with its core neighbors
	// concurrently, independent of cluster boundaries, then derives labels
	// from the resulting components in one pass.
	UnionFind
)

func (m ExpansionMode) String() string {
	switch m {
	case Sequential:
		return "Sequential"
	case FrontierParallel:
		return "FrontierParallel"
	case UnionFind:
		return "UnionFind"
	default:
		return "ExpansionMode(unknown)"
	}
}
