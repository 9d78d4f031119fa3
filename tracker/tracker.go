// Package tracker maintains correlation engines for many named
// (X series, Y series) pairs.
//
// Pairs are identified by the 64-bit xxHash64 of their ordered names,
// so lookups cost one hash and one map probe regardless of name
// length. Each pair gets its own fixed-capacity window, created on
// first observation with the tracker's defaults.
//
// Like the corr package, a Tracker is exclusively owned by one caller
// context and provides no internal synchronization.
package tracker

import (
	"github.com/arloliu/corrstat/corr"
	"github.com/arloliu/corrstat/internal/hash"
	"github.com/arloliu/corrstat/internal/options"
)

// DefaultCapacity is the per-pair window capacity used when
// WithCapacity is not given.
const DefaultCapacity = 20

// Tracker maps pair IDs to correlation engines.
type Tracker struct {
	capacity int
	running  bool
	doR2     bool
	doE2     bool

	pairs map[uint64]*corr.Correlation
}

// Option is a functional option for configuring a Tracker.
type Option = options.Option[*Tracker]

// WithCapacity sets the window capacity for pairs created by Observe.
// Capacities below 1 are rejected when the first pair is created.
func WithCapacity(n int) Option {
	return options.NoError(func(t *Tracker) {
		t.capacity = n
	})
}

// WithRunningCorrelation sets the full-window ingestion policy for new
// pairs: circular overwrite when true, reject when false.
func WithRunningCorrelation(rc bool) Option {
	return options.NoError(func(t *Tracker) {
		t.running = rc
	})
}

// WithR2Calculation sets the R² calculation default for new pairs.
func WithR2Calculation(doR2 bool) Option {
	return options.NoError(func(t *Tracker) {
		t.doR2 = doR2
	})
}

// WithE2Calculation sets the E² calculation default for new pairs.
func WithE2Calculation(doE2 bool) Option {
	return options.NoError(func(t *Tracker) {
		t.doE2 = doE2
	})
}

// New creates an empty tracker.
func New(opts ...Option) (*Tracker, error) {
	t := &Tracker{
		capacity: DefaultCapacity,
		doR2:     true,
		doE2:     true,
		pairs:    make(map[uint64]*corr.Correlation),
	}

	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// PairID returns the 64-bit identity of an ordered pair of series
// names. PairID("a", "b") and PairID("b", "a") are distinct pairs.
func PairID(xName, yName string) uint64 {
	return hash.PairID(xName, yName)
}

// Observe records one (x, y) sample for the named pair, creating its
// engine on first use, and reports whether the sample was accepted.
// A full non-running window rejects samples, same as corr.Add.
func (t *Tracker) Observe(xName, yName string, x, y float64) (bool, error) {
	c, err := t.pair(PairID(xName, yName))
	if err != nil {
		return false, err
	}

	return c.Add(x, y), nil
}

// Pair returns the engine for the named pair, or false if it has never
// been observed.
func (t *Tracker) Pair(xName, yName string) (*corr.Correlation, bool) {
	return t.PairByID(PairID(xName, yName))
}

// PairByID returns the engine for a precomputed pair ID, or false if
// it has never been observed.
func (t *Tracker) PairByID(id uint64) (*corr.Correlation, bool) {
	c, ok := t.pairs[id]

	return c, ok
}

// IDs returns the IDs of all tracked pairs, in no particular order.
func (t *Tracker) IDs() []uint64 {
	ids := make([]uint64, 0, len(t.pairs))
	for id := range t.pairs {
		ids = append(ids, id)
	}

	return ids
}

// Len returns the number of tracked pairs.
func (t *Tracker) Len() int {
	return len(t.pairs)
}

// Reset drops all tracked pairs. Tracker defaults are untouched.
func (t *Tracker) Reset() {
	clear(t.pairs)
}

func (t *Tracker) pair(id uint64) (*corr.Correlation, error) {
	if c, ok := t.pairs[id]; ok {
		return c, nil
	}

	c, err := corr.New(t.capacity,
		corr.WithRunningCorrelation(t.running),
		corr.WithR2Calculation(t.doR2),
		corr.WithE2Calculation(t.doE2),
	)
	if err != nil {
		return nil, err
	}
	t.pairs[id] = c

	return c, nil
}
