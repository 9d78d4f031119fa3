package corr

import "math"

// Correlation is a lazy least-squares regression and Pearson
// correlation engine over a SampleStore window.
//
// It caches the fitted line Y = A + B*X, the correlation coefficient,
// and the supporting sums, recomputing them only when the window
// changed (or when forced). All accessors return cached values and are
// zero until the first successful Calculate.
type Correlation struct {
	store *SampleStore

	doR2 bool
	doE2 bool

	avgX float64
	avgY float64
	a    float64
	b    float64
	r    float64

	sumErrorSquare float64
	sumXiYi        float64
	sumXi2         float64
	sumYi2         float64
}

// New creates a correlation engine with a window of the given capacity.
// Returns ErrInvalidCapacity if capacity < 1.
//
// R² and E² calculation default to enabled; running correlation
// defaults to disabled. All three can be set via options or toggled
// later.
func New(capacity int, opts ...Option) (*Correlation, error) {
	store, err := NewSampleStore(capacity)
	if err != nil {
		return nil, err
	}

	c := &Correlation{
		store: store,
		doR2:  true,
		doE2:  true,
	}

	if err := applyOptions(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Store returns the underlying sample window.
func (c *Correlation) Store() *SampleStore {
	return c.store
}

// Add stores the pair (x, y) in the window. See SampleStore.Add for the
// full-window contract.
func (c *Correlation) Add(x, y float64) bool {
	return c.store.Add(x, y)
}

// Clear empties the window and marks the cached fit stale. The cached
// values themselves keep their last computed state until the next
// successful Calculate.
func (c *Correlation) Clear() {
	c.store.Clear()
}

// Count returns the number of sample pairs in the window.
func (c *Correlation) Count() int {
	return c.store.Count()
}

// Size returns the fixed capacity of the window.
func (c *Correlation) Size() int {
	return c.store.Size()
}

// SetX overwrites the X value of an existing slot. See SampleStore.SetX.
func (c *Correlation) SetX(idx int, x float64) bool {
	return c.store.SetX(idx, x)
}

// SetY overwrites the Y value of an existing slot. See SampleStore.SetY.
func (c *Correlation) SetY(idx int, y float64) bool {
	return c.store.SetY(idx, y)
}

// SetXY overwrites both values of an existing slot. See SampleStore.SetXY.
func (c *Correlation) SetXY(idx int, x, y float64) bool {
	return c.store.SetXY(idx, x, y)
}

// X returns the stored X value at idx, or 0 out of range. See SampleStore.X.
func (c *Correlation) X(idx int) float64 {
	return c.store.X(idx)
}

// Y returns the stored Y value at idx, or 0 out of range. See SampleStore.Y.
func (c *Correlation) Y(idx int) float64 {
	return c.store.Y(idx)
}

// Calculate fits the regression line over the window's current
// contents and reports success.
//
// It returns false when the window is empty, leaving all cached values
// untouched. When forced is false and nothing changed since the last
// successful Calculate, it returns true immediately without
// recomputation; forced bypasses that short-circuit.
//
// The pass accumulates Σx, Σy, Σxy and Σx² over the live samples. Σy²
// is accumulated only when R² or E² calculation is enabled. With all X
// values identical the slope denominator is zero and B, A, R come out
// as IEEE Inf/NaN; Calculate still returns true.
func (c *Correlation) Calculate(forced bool) bool {
	n := c.store.count
	if n == 0 {
		return false
	}
	if !forced && !c.store.dirty {
		return true
	}

	needSumY2 := c.doR2 || c.doE2

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		x := c.store.xs[i]
		y := c.store.ys[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		if needSumY2 {
			sumY2 += y * y
		}
	}

	nf := float64(n)
	c.avgX = sumX / nf
	c.avgY = sumY / nf
	c.b = (nf*sumXY - sumX*sumY) / (nf*sumX2 - sumX*sumX)
	c.a = c.avgY - c.b*c.avgX

	c.sumXiYi = sumXY
	c.sumXi2 = sumX2
	if needSumY2 {
		c.sumYi2 = sumY2
	}

	if c.doR2 {
		c.r = (nf*sumXY - sumX*sumY) /
			math.Sqrt((nf*sumX2-sumX*sumX)*(nf*sumY2-sumY*sumY))
	}

	if c.doE2 {
		// Second pass; needs the fitted line.
		var e2 float64
		for i := 0; i < n; i++ {
			d := c.store.ys[i] - (c.a + c.b*c.store.xs[i])
			e2 += d * d
		}
		c.sumErrorSquare = e2
	}

	c.store.dirty = false

	return true
}

// Stale reports whether the window changed since the last successful
// Calculate.
func (c *Correlation) Stale() bool {
	return c.store.dirty
}

// A returns the cached intercept of Y = A + B*X.
func (c *Correlation) A() float64 {
	return c.a
}

// B returns the cached slope of Y = A + B*X.
func (c *Correlation) B() float64 {
	return c.b
}

// R returns the cached Pearson correlation coefficient. The sign
// follows the slope: a perfect fit of Y = 2X yields +1.
func (c *Correlation) R() float64 {
	return c.r
}

// RSquared returns R*R, derived from the cached R on every call.
func (c *Correlation) RSquared() float64 {
	return c.r * c.r
}

// ESquared returns the cached residual sum of squares, the spread of
// the samples around the fitted line. The smaller the value, the closer
// the points sit to one line.
func (c *Correlation) ESquared() float64 {
	return c.sumErrorSquare
}

// AvgX returns the cached mean of the X column.
func (c *Correlation) AvgX() float64 {
	return c.avgX
}

// AvgY returns the cached mean of the Y column.
func (c *Correlation) AvgY() float64 {
	return c.avgY
}

// SumXiYi returns the cached Σ(x·y).
func (c *Correlation) SumXiYi() float64 {
	return c.sumXiYi
}

// SumXi2 returns the cached Σx².
func (c *Correlation) SumXi2() float64 {
	return c.sumXi2
}

// SumYi2 returns the cached Σy². Only kept current while R² or E²
// calculation is enabled.
func (c *Correlation) SumYi2() float64 {
	return c.sumYi2
}

// EstimateY predicts Y for the given x using the cached line. Callers
// are responsible for calling Calculate first; the cached coefficients
// are used regardless of freshness.
func (c *Correlation) EstimateY(x float64) float64 {
	return c.a + c.b*x
}

// EstimateX predicts X for the given y by inverting the cached line.
// A horizontal fit (B == 0) yields IEEE Inf/NaN.
func (c *Correlation) EstimateX(y float64) float64 {
	return (y - c.a) / c.b
}

// MinX scans the window for the smallest X value. Returns 0 when the
// window is empty.
func (c *Correlation) MinX() float64 {
	return minOf(c.store.xs, c.store.count)
}

// MaxX scans the window for the largest X value. Returns 0 when the
// window is empty.
func (c *Correlation) MaxX() float64 {
	return maxOf(c.store.xs, c.store.count)
}

// MinY scans the window for the smallest Y value. Returns 0 when the
// window is empty.
func (c *Correlation) MinY() float64 {
	return minOf(c.store.ys, c.store.count)
}

// MaxY scans the window for the largest Y value. Returns 0 when the
// window is empty.
func (c *Correlation) MaxY() float64 {
	return maxOf(c.store.ys, c.store.count)
}

// SetRunningCorrelation switches the window's full-ingestion policy.
// See SampleStore.SetRunningCorrelation.
func (c *Correlation) SetRunningCorrelation(rc bool) {
	c.store.SetRunningCorrelation(rc)
}

// RunningCorrelation reports whether circular-overwrite ingestion is
// enabled.
func (c *Correlation) RunningCorrelation() bool {
	return c.store.RunningCorrelation()
}

// SetR2Calculation enables or disables correlation coefficient
// computation. A pure performance knob: it never changes A or B, only
// whether R (and Σy²) are refreshed by the next real recomputation.
// Toggling does not mark the cache stale.
func (c *Correlation) SetR2Calculation(doR2 bool) {
	c.doR2 = doR2
}

// R2Calculation reports whether R computation is enabled.
func (c *Correlation) R2Calculation() bool {
	return c.doR2
}

// SetE2Calculation enables or disables residual sum-of-squares
// computation. Same contract as SetR2Calculation.
func (c *Correlation) SetE2Calculation(doE2 bool) {
	c.doE2 = doE2
}

// E2Calculation reports whether E² computation is enabled.
func (c *Correlation) E2Calculation() bool {
	return c.doE2
}

func minOf(vals []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	m := vals[0]
	for i := 1; i < n; i++ {
		if vals[i] < m {
			m = vals[i]
		}
	}

	return m
}

func maxOf(vals []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	m := vals[0]
	for i := 1; i < n; i++ {
		if vals[i] > m {
			m = vals[i]
		}
	}

	return m
}
