package corr

import "errors"

// ErrInvalidCapacity is returned when a window capacity below 1 is requested.
var ErrInvalidCapacity = errors.New("corr: capacity must be at least 1")

// SampleStore is a fixed-capacity window of paired (X, Y) samples.
//
// Both columns are allocated once at construction. While the window is
// not full, samples append in arrival order. Once full, behavior
// depends on running mode: reject further samples, or overwrite the
// oldest slot in circular order (sliding window).
//
// Entries at indices >= Count() are unused and never observable through
// the accessors.
type SampleStore struct {
	capacity int
	count    int
	cursor   int
	running  bool
	dirty    bool

	xs []float64
	ys []float64
}

// NewSampleStore creates a store holding up to capacity sample pairs.
// Returns ErrInvalidCapacity if capacity < 1.
func NewSampleStore(capacity int) (*SampleStore, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &SampleStore{
		capacity: capacity,
		dirty:    true,
		xs:       make([]float64, capacity),
		ys:       make([]float64, capacity),
	}, nil
}

// Add stores the pair (x, y) and reports whether it was accepted.
//
// While the window has room the pair appends at the next free slot.
// On a full window, Add rejects the pair unless running correlation is
// enabled, in which case it overwrites the oldest slot and advances the
// circular cursor. Both columns are always updated together; a sample
// is never partially written.
func (s *SampleStore) Add(x, y float64) bool {
	if s.count < s.capacity {
		s.xs[s.count] = x
		s.ys[s.count] = y
		s.count++
		s.dirty = true

		return true
	}

	if !s.running {
		return false
	}

	s.xs[s.cursor] = x
	s.ys[s.cursor] = y
	s.cursor = (s.cursor + 1) % s.capacity
	s.dirty = true

	return true
}

// Clear empties the window. Capacity and mode flags are untouched.
func (s *SampleStore) Clear() {
	s.count = 0
	s.cursor = 0
	s.dirty = true
}

// SetX overwrites the X value of an existing slot. Returns false
// without mutation when idx is out of range.
func (s *SampleStore) SetX(idx int, x float64) bool {
	if idx < 0 || idx >= s.count {
		return false
	}
	s.xs[idx] = x
	s.dirty = true

	return true
}

// SetY overwrites the Y value of an existing slot. Returns false
// without mutation when idx is out of range.
func (s *SampleStore) SetY(idx int, y float64) bool {
	if idx < 0 || idx >= s.count {
		return false
	}
	s.ys[idx] = y
	s.dirty = true

	return true
}

// SetXY overwrites both values of an existing slot. Returns false
// without mutation when idx is out of range.
func (s *SampleStore) SetXY(idx int, x, y float64) bool {
	if idx < 0 || idx >= s.count {
		return false
	}
	s.xs[idx] = x
	s.ys[idx] = y
	s.dirty = true

	return true
}

// X returns the stored X value at idx, or 0 when idx is out of range.
//
// Unlike the setters, out-of-range access does not fail loudly; callers
// must bounds-check against Count() themselves when 0 is a meaningful
// sample value.
func (s *SampleStore) X(idx int) float64 {
	if idx < 0 || idx >= s.count {
		return 0
	}

	return s.xs[idx]
}

// Y returns the stored Y value at idx, or 0 when idx is out of range.
// See X for the out-of-range contract.
func (s *SampleStore) Y(idx int) float64 {
	if idx < 0 || idx >= s.count {
		return 0
	}

	return s.ys[idx]
}

// Count returns the number of valid sample pairs currently stored.
func (s *SampleStore) Count() int {
	return s.count
}

// Size returns the fixed capacity of the window.
func (s *SampleStore) Size() int {
	return s.capacity
}

// SetRunningCorrelation switches between reject-on-full (false) and
// circular-overwrite (true) ingestion.
func (s *SampleStore) SetRunningCorrelation(rc bool) {
	s.running = rc
}

// RunningCorrelation reports whether circular-overwrite ingestion is
// enabled.
func (s *SampleStore) RunningCorrelation() bool {
	return s.running
}
