package dbscan

import "errors"

// Sentinel error categories. Engines report failures through these via
// errors.Is/errors.As rather than logging or panicking.
var (
	// ErrInvalidInput marks a bad parameter (non-positive eps, minSamples
	// below 1, x and y of unequal length, an unknown expansion mode) or a
	// malformed input file, detected before any expensive work begins.
	// Empty input is not an error; it yields an empty result.
	ErrInvalidInput = errors.New("dbscan: invalid input")

	// ErrOutOfMemory names the out-of-memory error category. No function in
	// this package returns it: grid construction allocates with make and
	// has no allocation-failure path.
	ErrOutOfMemory = errors.New("dbscan: out of memory")
)
