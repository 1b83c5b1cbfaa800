package monitor

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// Record appends one metric snapshot. Non-finite values are logged and
// dropped; the metric name is sanitized and truncated before use as a key.
func (c *Core) Record(name string, value float64, ts time.Time, metadata map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(name, value, ts, metadata)
}

// record is the lock-held implementation shared by Record and TrackProfile.
func (c *Core) record(name string, value float64, ts time.Time, metadata map[string]any) {
	if !isFiniteValue(value) {
		contract.Warnf("Skipping invalid metric value for %s: %v", name, value)
		return
	}
	safeName := sanitizeMetricName(name)
	if metadata == nil {
		metadata = map[string]any{}
	}
	c.history[safeName] = append(c.history[safeName], schema.MetricSnapshot{
		Timestamp:  ts,
		MetricName: safeName,
		Value:      value,
		Metadata:   metadata,
	})
}

// History returns the most recent snapshots for a metric, oldest first.
// The limit is clamped to [1,1000]. The returned slice is a copy.
func (c *Core) History(name string, limit int) []schema.MetricSnapshot {
	limit = clampInt(limit, 1, 1000)

	c.mu.Lock()
	defer c.mu.Unlock()

	history, ok := c.history[name]
	if !ok {
		return nil
	}
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]schema.MetricSnapshot, len(history))
	copy(out, history)
	return out
}

// MetricNames returns the sorted names of all tracked metrics.
func (c *Core) MetricNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.history))
	for name := range c.history {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SnapshotCount returns the total number of stored snapshots across metrics.
func (c *Core) SnapshotCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotCount()
}

func (c *Core) snapshotCount() int {
	total := 0
	for _, history := range c.history {
		total += len(history)
	}
	return total
}

// PruneOlderThan removes snapshots older than the given number of days,
// clamped to [1,365]. Metrics left with no snapshots are removed entirely.
// Returns the number of snapshots removed.
func (c *Core) PruneOlderThan(days int) int {
	days = clampInt(days, 1, schema.MaxHistoryDays)

	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().AddDate(0, 0, -days)
	removed := 0
	for name, history := range c.history {
		kept := history[:0]
		for _, snap := range history {
			if !snap.Timestamp.Before(cutoff) {
				kept = append(kept, snap)
			}
		}
		removed += len(history) - len(kept)
		if len(kept) == 0 {
			delete(c.history, name)
			continue
		}
		c.history[name] = kept
	}
	return removed
}

// enforceMemoryLimit applies the lazy global memory bound: only when the total
// snapshot count exceeds the global cap does any history get truncated, and
// then every history longer than the retention floor keeps just its most
// recent entries. Histories may grow past the floor while the global total
// stays under the cap; that slack is intentional.
func (c *Core) enforceMemoryLimit() {
	total := c.snapshotCount()
	if total <= c.maxSnapshots {
		return
	}
	contract.Warnf("Metric memory limit reached (%d snapshots), pruning old data", total)
	for name, history := range c.history {
		if len(history) > c.retainFloor {
			c.history[name] = append([]schema.MetricSnapshot(nil), history[len(history)-c.retainFloor:]...)
		}
	}
}

// sanitizeMetricName strips every rune outside alphanumerics, underscore and
// dash, then truncates to the metric name length cap.
func sanitizeMetricName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isMetricNameRune(r) {
			b.WriteRune(r)
		}
	}
	safe := b.String()
	if len(safe) > schema.MaxMetricNameLength {
		safe = safe[:schema.MaxMetricNameLength]
	}
	return safe
}

func isMetricNameRune(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isFiniteValue reports whether a metric value is a usable finite number.
func isFiniteValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
