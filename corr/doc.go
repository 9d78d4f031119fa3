// Package corr computes simple linear regression and Pearson
// correlation over a bounded window of paired (X, Y) samples.
//
// The window is allocated once at construction and never grows, making
// the package suitable for call sites with fixed memory and latency
// budgets. Two types split the work:
//
//   - SampleStore owns the fixed-capacity sample window and its
//     ingestion policy (reject when full, or circular overwrite in
//     running mode).
//   - Correlation owns the cached regression state and recomputes it
//     on demand from the store's live contents.
//
// # Basic Usage
//
//	c, err := corr.New(20)
//	if err != nil {
//	    return err
//	}
//
//	c.Add(1, 2)
//	c.Add(2, 4)
//	c.Add(3, 6)
//
//	if c.Calculate(false) {
//	    fmt.Printf("Y = %.2f + %.2f * X, r=%.3f\n", c.A(), c.B(), c.R())
//	}
//
// # Staleness
//
// Every successful mutation (Add, Clear, SetX/SetY/SetXY) marks the
// cached aggregates stale. Calculate(false) is O(1) while the cache is
// fresh and one pass over the window otherwise; Calculate(true) always
// recomputes. Accessors never recompute: they return whatever the last
// successful Calculate produced, and zero values before the first one.
//
// # Sliding window
//
// With running correlation enabled (WithRunningCorrelation or
// SetRunningCorrelation), a full window overwrites its oldest slot in
// circular order, so the fit always tracks the most recent Size()
// samples.
//
// # Degenerate fits
//
// When every X in the window is identical the slope denominator is
// zero, and B, A and R become IEEE Inf or NaN per ordinary float64
// arithmetic; Calculate still reports success. Likewise EstimateX
// divides by B and yields Inf/NaN for a horizontal fit. Callers that
// care should check math.IsNaN/math.IsInf on B before trusting
// estimates.
//
// # Concurrency
//
// Instances are not safe for concurrent use. The store and engine are
// meant to be exclusively owned by one caller context; wrap access in a
// mutex if an instance must be shared.
package corr
