package monitor

import (
	"time"

	"github.com/huangsam/driftwatch/schema"
)

// Default alert configuration values.
const (
	DefaultNullPercentageThreshold = 10.0
	DefaultAnomalyCountThreshold   = 5.0
	DefaultDriftScoreThreshold     = 0.15
	DefaultAlertRateLimit          = 300 * time.Second
	MaxAlertRateLimit              = 3600 * time.Second
)

// AlertConfig holds the thresholds and delivery settings for alerting.
// Values are validated and clamped at Core construction, so a Core never
// operates on out-of-range thresholds.
type AlertConfig struct {
	NullPercentageThreshold float64               // warning above this null percentage, in [0,100]
	AnomalyCountThreshold   float64               // critical above this anomaly count, in [0,10000]
	DriftScoreThreshold     float64               // drift score sensitivity, in [0,1]
	AlertChannels           []schema.AlertChannel // unknown channels are dropped
	AlertRateLimit          time.Duration         // per-metric alert cooldown, in [0,1h]
}

// DefaultAlertConfig returns the default alert configuration.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		NullPercentageThreshold: DefaultNullPercentageThreshold,
		AnomalyCountThreshold:   DefaultAnomalyCountThreshold,
		DriftScoreThreshold:     DefaultDriftScoreThreshold,
		AlertChannels:           []schema.AlertChannel{schema.LogChannel},
		AlertRateLimit:          DefaultAlertRateLimit,
	}
}

// sanitized returns a copy of the config with every field clamped to its valid
// range and unknown alert channels dropped. An empty channel list falls back
// to the local log channel.
func (c AlertConfig) sanitized() AlertConfig {
	out := c
	out.NullPercentageThreshold = clampFloat(c.NullPercentageThreshold, 0, 100)
	out.AnomalyCountThreshold = clampFloat(c.AnomalyCountThreshold, 0, 10000)
	out.DriftScoreThreshold = clampFloat(c.DriftScoreThreshold, 0, 1)
	out.AlertRateLimit = clampDuration(c.AlertRateLimit, 0, MaxAlertRateLimit)

	out.AlertChannels = nil
	for _, ch := range c.AlertChannels {
		if _, ok := schema.ValidAlertChannels[ch]; ok {
			out.AlertChannels = append(out.AlertChannels, ch)
		}
	}
	if len(out.AlertChannels) == 0 {
		out.AlertChannels = []schema.AlertChannel{schema.LogChannel}
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDuration(v, lo, hi time.Duration) time.Duration {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
