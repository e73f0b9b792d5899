package dbscan

import (
	"sync"
	"time"
)

// TimingEntry records how long a single labeled phase of an engine took.
type TimingEntry struct {
	Label string
	Dur   time.Duration
}

// PerfTiming accumulates an ordered sequence of [TimingEntry] values for one
// clustering call. Its zero value is ready to use. A *PerfTiming is shared
// across the phases of a single engine invocation and is expected to be
// used by one goroutine at a time, except through [PerfTiming.Record], which
// may be called concurrently (e.g. from within a parallel phase that wants
// to time a sub-step).
type PerfTiming struct {
	mu      sync.Mutex
	entries []TimingEntry
}

// Record appends a completed (label, duration) pair. Safe for concurrent use.
func (p *PerfTiming) Record(label string, dur time.Duration) {
	p.mu.Lock()
	p.entries = append(p.entries, TimingEntry{Label: label, Dur: dur})
	p.mu.Unlock()
}

// Entries returns the recorded entries in the order they were added.
func (p *PerfTiming) Entries() []TimingEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]TimingEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Total sums the duration of every recorded entry.
func (p *PerfTiming) Total() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var total time.Duration
	for _, e := range p.entries {
		total += e.Dur
	}
	return total
}

// Scope starts timing a phase named label and returns a function that, when
// called, records the elapsed time under that label. It is meant to be used
// with defer:
//
//	stop := timing.Scope("grid-build")
//	defer stop()
//
// A nil *PerfTiming is allowed; Scope then returns a no-op stop function, so
// engines can thread an optional timing sink through without branching at
// every call site.
func (p *PerfTiming) Scope(label string) func() {
	if p == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.Record(label, time.Since(start))
	}
}
