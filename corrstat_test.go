package corrstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/corrstat"
	"github.com/arloliu/corrstat/snapshot"
	"github.com/arloliu/corrstat/tracker"
)

func TestNewWrapper(t *testing.T) {
	c, err := corrstat.New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Size())
	assert.False(t, c.RunningCorrelation())

	_, err = corrstat.New(0)
	require.Error(t, err)
}

func TestNewRunning(t *testing.T) {
	c, err := corrstat.NewRunning(2)
	require.NoError(t, err)
	require.True(t, c.RunningCorrelation())

	for v := 1.0; v <= 4; v++ {
		assert.True(t, c.Add(v, v))
	}
	assert.Equal(t, 2, c.Count())
}

func TestPairIDMatchesTracker(t *testing.T) {
	assert.Equal(t, tracker.PairID("a", "b"), corrstat.PairID("a", "b"))
	assert.NotEqual(t, corrstat.PairID("a", "b"), corrstat.PairID("b", "a"))
}

// End-to-end: ingest via a tracker, hand a window off as a snapshot,
// and query the rebuilt engine.
func TestTrackerSnapshotFlow(t *testing.T) {
	tr, err := tracker.New(tracker.WithCapacity(16))
	require.NoError(t, err)

	for x := 1.0; x <= 8; x++ {
		ok, err := tr.Observe("load", "latency", x, 10+5*x)
		require.NoError(t, err)
		require.True(t, ok)
	}

	src, found := tr.Pair("load", "latency")
	require.True(t, found)

	img, err := snapshot.Encode(src)
	require.NoError(t, err)

	dst, err := snapshot.Decode(img)
	require.NoError(t, err)
	require.True(t, dst.Calculate(false))
	assert.InDelta(t, 10.0, dst.A(), 1e-9)
	assert.InDelta(t, 5.0, dst.B(), 1e-9)
	assert.InDelta(t, 1.0, dst.R(), 1e-9)
}
