// Package corrstat provides bounded-memory simple linear regression and
// Pearson correlation over paired (X, Y) samples.
//
// The sample window is allocated once at construction and never grows,
// so worst-case latency and memory use are fixed at creation time. Once
// the window is full, ingestion either rejects new samples (fixed
// window) or overwrites the oldest in circular order (running mode,
// a sliding window over the most recent samples).
//
// # Core Features
//
//   - Fixed-capacity sample window, no allocation after construction
//   - Lazy recomputation: queries after an unchanged window are O(1)
//   - Least-squares line Y = A + B*X, Pearson r, r², residual E²
//   - Optional sliding-window (running) ingestion
//   - Hash-based pair registry (64-bit xxHash64) for tracking many
//     named series pairs
//   - Compact snapshot format with optional compression (None, Zstd,
//     S2, LZ4) and CRC32-C integrity check for in-process hand-off
//
// # Basic Usage
//
//	c, err := corrstat.New(20)
//	if err != nil {
//	    return err
//	}
//
//	c.Add(1, 2)
//	c.Add(2, 4)
//	c.Add(3, 6)
//
//	if c.Calculate(false) {
//	    fmt.Printf("Y = %.2f + %.2f*X, r=%.3f\n", c.A(), c.B(), c.R())
//	}
//
// Tracking many pairs:
//
//	tr, _ := tracker.New(tracker.WithCapacity(64), tracker.WithRunningCorrelation(true))
//	tr.Observe("cpu.temp", "fan.rpm", 71.5, 2400)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the corr
// package, which holds the window and the regression engine. The
// tracker package manages many named pairs, and the snapshot package
// serializes windows for hand-off between owners.
package corrstat

import (
	"github.com/arloliu/corrstat/corr"
	"github.com/arloliu/corrstat/internal/hash"
)

// New creates a correlation engine with a window of the given capacity.
// See corr.New for options.
func New(capacity int, opts ...corr.Option) (*corr.Correlation, error) {
	return corr.New(capacity, opts...)
}

// NewRunning creates a correlation engine in running (sliding-window)
// mode: once full, new samples overwrite the oldest.
func NewRunning(capacity int, opts ...corr.Option) (*corr.Correlation, error) {
	merged := append([]corr.Option{corr.WithRunningCorrelation(true)}, opts...)

	return corr.New(capacity, merged...)
}

// PairID computes the 64-bit identity of an ordered (X series, Y
// series) name pair, as used by the tracker package.
func PairID(xName, yName string) uint64 {
	return hash.PairID(xName, yName)
}

// SeriesID computes the xxHash64 of a single series name.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}
