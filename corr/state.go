package corr

import "fmt"

// State is a detached, deep copy of a correlation window: the live
// sample slots in physical order plus the cursor and mode flags needed
// to reconstruct an equivalent engine.
//
// State carries no cached regression results. An engine rebuilt via
// FromState starts stale, so its first Calculate recomputes from the
// samples. Mutating a State never affects the engine it came from.
type State struct {
	// Capacity is the fixed size of the window.
	Capacity int
	// Count is the number of valid sample pairs; Xs and Ys have this length.
	Count int
	// Cursor is the next overwrite position for a full running-mode window.
	Cursor int
	// Running reports circular-overwrite ingestion.
	Running bool
	// R2 and E2 mirror the engine's calculation toggles.
	R2 bool
	E2 bool
	// Xs and Ys hold the live slots in physical slot order.
	Xs []float64
	Ys []float64
}

// State returns a deep copy of the engine's window and flags.
func (c *Correlation) State() State {
	s := c.store
	st := State{
		Capacity: s.capacity,
		Count:    s.count,
		Cursor:   s.cursor,
		Running:  s.running,
		R2:       c.doR2,
		E2:       c.doE2,
		Xs:       make([]float64, s.count),
		Ys:       make([]float64, s.count),
	}
	copy(st.Xs, s.xs[:s.count])
	copy(st.Ys, s.ys[:s.count])

	return st
}

// FromState reconstructs a correlation engine from a detached window
// copy. The returned engine is stale; call Calculate before reading
// coefficients.
func FromState(st State) (*Correlation, error) {
	if st.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if st.Count < 0 || st.Count > st.Capacity {
		return nil, fmt.Errorf("corr: count %d out of range for capacity %d", st.Count, st.Capacity)
	}
	if st.Cursor < 0 || st.Cursor >= st.Capacity {
		return nil, fmt.Errorf("corr: cursor %d out of range for capacity %d", st.Cursor, st.Capacity)
	}
	if len(st.Xs) != st.Count || len(st.Ys) != st.Count {
		return nil, fmt.Errorf("corr: sample columns have lengths %d/%d, want %d", len(st.Xs), len(st.Ys), st.Count)
	}

	c, err := New(st.Capacity,
		WithRunningCorrelation(st.Running),
		WithR2Calculation(st.R2),
		WithE2Calculation(st.E2),
	)
	if err != nil {
		return nil, err
	}

	copy(c.store.xs, st.Xs)
	copy(c.store.ys, st.Ys)
	c.store.count = st.Count
	c.store.cursor = st.Cursor

	return c, nil
}
