package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/corrstat/corr"
)

func TestObserveCreatesPair(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())

	ok, err := tr.Observe("temp", "fan.rpm", 20, 800)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, tr.Len())

	c, found := tr.Pair("temp", "fan.rpm")
	require.True(t, found)
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, DefaultCapacity, c.Size())
}

func TestObserveSamePairReusesEngine(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	for x := 1.0; x <= 3; x++ {
		_, err := tr.Observe("a", "b", x, 2*x)
		require.NoError(t, err)
	}
	require.Equal(t, 1, tr.Len())

	c, found := tr.Pair("a", "b")
	require.True(t, found)
	require.True(t, c.Calculate(false))
	assert.InDelta(t, 2.0, c.B(), 1e-9)
}

func TestPairsAreOrderedAndIsolated(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	_, err = tr.Observe("a", "b", 1, 1)
	require.NoError(t, err)
	_, err = tr.Observe("b", "a", 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len(), "reversed names are a distinct pair")

	ab, _ := tr.Pair("a", "b")
	ba, _ := tr.Pair("b", "a")
	assert.Equal(t, 1.0, ab.X(0))
	assert.Equal(t, 5.0, ba.X(0))
}

func TestPairByID(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	_, err = tr.Observe("x", "y", 1, 2)
	require.NoError(t, err)

	c, found := tr.PairByID(PairID("x", "y"))
	require.True(t, found)
	assert.Equal(t, 1, c.Count())

	_, found = tr.PairByID(PairID("never", "seen"))
	assert.False(t, found)

	ids := tr.IDs()
	require.Len(t, ids, 1)
	assert.Equal(t, PairID("x", "y"), ids[0])
}

func TestTrackerDefaultsPropagate(t *testing.T) {
	tr, err := New(
		WithCapacity(3),
		WithRunningCorrelation(true),
		WithR2Calculation(false),
		WithE2Calculation(false),
	)
	require.NoError(t, err)

	for v := 1.0; v <= 5; v++ {
		ok, err := tr.Observe("in", "out", v, v)
		require.NoError(t, err)
		assert.True(t, ok, "running window must accept overflow samples")
	}

	c, found := tr.Pair("in", "out")
	require.True(t, found)
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 3, c.Count())
	assert.True(t, c.RunningCorrelation())
	assert.False(t, c.R2Calculation())
	assert.False(t, c.E2Calculation())
}

func TestObserveRejectsOnFullFixedWindow(t *testing.T) {
	tr, err := New(WithCapacity(2))
	require.NoError(t, err)

	for v := 1.0; v <= 2; v++ {
		ok, err := tr.Observe("in", "out", v, v)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := tr.Observe("in", "out", 3, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestObserveInvalidCapacity(t *testing.T) {
	tr, err := New(WithCapacity(0))
	require.NoError(t, err)

	_, err = tr.Observe("a", "b", 1, 1)
	assert.ErrorIs(t, err, corr.ErrInvalidCapacity)
	assert.Equal(t, 0, tr.Len())
}

func TestReset(t *testing.T) {
	tr, err := New(WithCapacity(4))
	require.NoError(t, err)
	_, err = tr.Observe("a", "b", 1, 1)
	require.NoError(t, err)

	tr.Reset()
	assert.Equal(t, 0, tr.Len())

	// Defaults survive a reset.
	_, err = tr.Observe("a", "b", 1, 1)
	require.NoError(t, err)
	c, _ := tr.Pair("a", "b")
	assert.Equal(t, 4, c.Size())
}
