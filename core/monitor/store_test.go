package monitor

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecord tests snapshot recording with name sanitization.
func TestRecord(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	core.Record("my metric!", 42.0, clock.Now(), nil)

	history := core.History("mymetric", 10)
	require.Len(t, history, 1)
	assert.Equal(t, "mymetric", history[0].MetricName)
	assert.Equal(t, 42.0, history[0].Value)
	assert.NotNil(t, history[0].Metadata)
	assert.Empty(t, history[0].Metadata)
}

// TestRecordNonFinite tests that NaN and Inf values are dropped.
func TestRecordNonFinite(t *testing.T) {
	core := New(DefaultAlertConfig())

	core.Record("m", math.NaN(), time.Now(), nil)
	core.Record("m", math.Inf(1), time.Now(), nil)
	core.Record("m", math.Inf(-1), time.Now(), nil)

	assert.Equal(t, 0, core.SnapshotCount())
	assert.Nil(t, core.History("m", 10))
}

// TestHistory tests limit clamping and ordering.
func TestHistory(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		core.Record("m", float64(i), clock.Now(), nil)
		clock.Advance(time.Minute)
	}

	t.Run("limit returns most recent oldest-first", func(t *testing.T) {
		history := core.History("m", 3)
		require.Len(t, history, 3)
		assert.Equal(t, 2.0, history[0].Value)
		assert.Equal(t, 4.0, history[2].Value)
	})

	t.Run("limit is clamped to at least one", func(t *testing.T) {
		history := core.History("m", 0)
		require.Len(t, history, 1)
		assert.Equal(t, 4.0, history[0].Value)
	})

	t.Run("unknown metric yields nil", func(t *testing.T) {
		assert.Nil(t, core.History("unknown", 10))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		history := core.History("m", 10)
		history[0].Value = -1
		assert.Equal(t, 0.0, core.History("m", 10)[0].Value)
	})
}

// TestMetricNames tests sorted name listing.
func TestMetricNames(t *testing.T) {
	core := New(DefaultAlertConfig())
	now := time.Now()
	core.Record("zeta", 1, now, nil)
	core.Record("alpha", 1, now, nil)
	core.Record("mid", 1, now, nil)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, core.MetricNames())
}

// TestPruneOlderThan tests age-based pruning and empty-metric removal.
func TestPruneOlderThan(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	now := clock.Now()
	core.Record("fresh", 1, now.AddDate(0, 0, -1), nil)
	core.Record("fresh", 2, now, nil)
	core.Record("stale", 3, now.AddDate(0, 0, -40), nil)

	removed := core.PruneOlderThan(30)
	assert.Equal(t, 1, removed)
	assert.Len(t, core.History("fresh", 10), 2)

	// The emptied metric is dropped entirely.
	assert.Equal(t, []string{"fresh"}, core.MetricNames())
}

// TestPruneOlderThanClamp tests that the day count is clamped to its range.
func TestPruneOlderThanClamp(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	core.Record("m", 1, clock.Now().AddDate(0, 0, -2), nil)

	// days=0 clamps to 1, so the two-day-old snapshot goes away.
	removed := core.PruneOlderThan(0)
	assert.Equal(t, 1, removed)
}

// TestEnforceMemoryLimit tests the lazy global memory bound: nothing is
// truncated while the total stays under the cap, and once it is crossed every
// long history settles at the retention floor.
func TestEnforceMemoryLimit(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(),
		WithClock(clock.Now),
		WithMaxSnapshots(8),
		WithRetainFloor(2),
	)

	// Direct recording does not enforce the cap; a long history may sit above
	// the floor while the global total is small.
	for i := 0; i < 6; i++ {
		core.Record("busy", float64(i), clock.Now(), nil)
	}
	assert.Len(t, core.History("busy", 1000), 6)

	// A profile pass pushes the total past the cap and triggers pruning.
	_, err := core.TrackProfile(sampleProfile(), "orders")
	require.NoError(t, err)

	busy := core.History("busy", 1000)
	require.Len(t, busy, 2)
	assert.Equal(t, 4.0, busy[0].Value)
	assert.Equal(t, 5.0, busy[1].Value)

	// Short histories are untouched.
	assert.Len(t, core.History("orders_amount_null_pct", 1000), 1)
}
