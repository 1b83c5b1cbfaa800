package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/driftwatch/schema"
)

// Default values for configuration.
const (
	DefaultStatePath    = ".driftwatch_state.json"
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 1000
	DefaultPruneDays    = 30
	MaxPruneDays        = 365
	DefaultTrendWindow  = 10
	MinTrendWindow      = 2
	MaxTrendWindow      = 100
	DefaultPrecision    = 2
)

// Default alert thresholds. The monitoring core clamps these again on
// construction; validation here gives the user an early error instead.
const (
	DefaultNullThreshold    = 10.0
	DefaultAnomalyThreshold = 5.0
	DefaultDriftThreshold   = 0.1
	DefaultRateLimitSeconds = 300
	MaxRateLimitSeconds     = 3600
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a driftwatch run.
// This struct remains the "final, validated" config.
type Config struct {
	DataFile    string
	DatasetName string

	Column string
	Method schema.AnomalyMethod

	BaselinePath string
	StatePath    string

	Metric       string
	HistoryLimit int
	PruneDays    int
	TrendWindow  int

	Output     schema.OutputMode
	OutputFile string
	Format     schema.OutputMode // export format (json or parquet)
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	DriftThreshold float64

	NullThreshold    float64
	AnomalyThreshold float64
	AlertChannels    []schema.AlertChannel
	RateLimitSeconds int

	ArchiveBackend   schema.DatabaseBackend
	ArchiveDBConnect string // Please use env var as this is plaintext
	MigrateTarget    int    // <0 = latest, 0 = rollback all, >0 = specific version

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
	State      string `mapstructure:"state"`

	// --- Fields from profile/anomalies/drift flags ---
	Dataset        string  `mapstructure:"dataset"`
	Column         string  `mapstructure:"column"`
	Method         string  `mapstructure:"method"`
	Baseline       string  `mapstructure:"baseline"`
	DriftThreshold float64 `mapstructure:"drift-threshold"`

	// --- Fields from history/prune/report flags ---
	Metric string `mapstructure:"metric"`
	Limit  int    `mapstructure:"limit"`
	Days   int    `mapstructure:"days"`
	Window int    `mapstructure:"window"`

	// --- Alerting fields from track flags and config file ---
	NullThreshold    float64 `mapstructure:"null-threshold"`
	AnomalyThreshold float64 `mapstructure:"anomaly-threshold"`
	Channels         string  `mapstructure:"channels"`
	RateLimit        int     `mapstructure:"rate-limit"`

	// --- Fields from export/archive/migrate flags ---
	Format           string `mapstructure:"format"`
	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`
	Target           int    `mapstructure:"target-version"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAlertSettings(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-alerting fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.DataFile = input.DataFileStr
	cfg.DatasetName = strings.TrimSpace(input.Dataset)
	cfg.Column = strings.TrimSpace(input.Column)
	cfg.BaselinePath = input.Baseline
	cfg.StatePath = input.State
	cfg.OutputFile = input.OutputFile
	cfg.Metric = strings.TrimSpace(input.Metric)
	cfg.Width = input.Width
	cfg.MigrateTarget = input.Target

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Method Validation ---
	cfg.Method = schema.AnomalyMethod(strings.ToLower(input.Method))
	if _, ok := schema.ValidAnomalyMethods[cfg.Method]; !ok {
		return fmt.Errorf("invalid method '%s'. must be iqr, zscore", input.Method)
	}

	// --- 2. Limit, Days, Window Validation ---
	if input.Limit < 1 || input.Limit > MaxHistoryLimit {
		return fmt.Errorf("limit must be between 1 and %d (received %d)", MaxHistoryLimit, input.Limit)
	}
	cfg.HistoryLimit = input.Limit

	if input.Days < 1 || input.Days > MaxPruneDays {
		return fmt.Errorf("days must be between 1 and %d (received %d)", MaxPruneDays, input.Days)
	}
	cfg.PruneDays = input.Days

	if input.Window < MinTrendWindow || input.Window > MaxTrendWindow {
		return fmt.Errorf("window must be between %d and %d (received %d)", MinTrendWindow, MaxTrendWindow, input.Window)
	}
	cfg.TrendWindow = input.Window

	// --- 3. Output, Precision, and Format Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok || cfg.Output == schema.ParquetOut {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	cfg.Format = schema.OutputMode(strings.ToLower(input.Format))
	if cfg.Format != schema.JSONOut && cfg.Format != schema.ParquetOut {
		return fmt.Errorf("invalid export format '%s'. must be json, parquet", input.Format)
	}

	// --- 4. Drift Threshold Validation ---
	if input.DriftThreshold < 0.0 || input.DriftThreshold > 1.0 {
		return fmt.Errorf("drift-threshold must be between 0.0 and 1.0 (received %.2f)", input.DriftThreshold)
	}
	cfg.DriftThreshold = input.DriftThreshold

	return nil
}

// processAlertSettings validates the alerting thresholds and channel list.
func processAlertSettings(cfg *Config, input *ConfigRawInput) error {
	if input.NullThreshold < 0.0 || input.NullThreshold > 100.0 {
		return fmt.Errorf("null-threshold must be between 0.0 and 100.0 (received %.2f)", input.NullThreshold)
	}
	cfg.NullThreshold = input.NullThreshold

	if input.AnomalyThreshold < 0.0 || input.AnomalyThreshold > 10000.0 {
		return fmt.Errorf("anomaly-threshold must be between 0 and 10000 (received %.2f)", input.AnomalyThreshold)
	}
	cfg.AnomalyThreshold = input.AnomalyThreshold

	if input.RateLimit < 0 || input.RateLimit > MaxRateLimitSeconds {
		return fmt.Errorf("rate-limit must be between 0 and %d seconds (received %d)", MaxRateLimitSeconds, input.RateLimit)
	}
	cfg.RateLimitSeconds = input.RateLimit

	cfg.AlertChannels = nil
	for part := range strings.SplitSeq(input.Channels, ",") {
		trimmed := strings.TrimSpace(strings.ToLower(part))
		if trimmed == "" {
			continue
		}
		channel := schema.AlertChannel(trimmed)
		if _, ok := schema.ValidAlertChannels[channel]; !ok {
			return fmt.Errorf("invalid alert channel '%s'. must be log, slack, email, pagerduty, webhook", trimmed)
		}
		cfg.AlertChannels = append(cfg.AlertChannels, channel)
	}
	if len(cfg.AlertChannels) == 0 {
		cfg.AlertChannels = []schema.AlertChannel{schema.LogChannel}
	}

	return nil
}

// validateBackendConfig validates the archive backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.ArchiveBackend = schema.DatabaseBackend(strings.ToLower(input.ArchiveBackend))
	if _, ok := schema.ValidArchiveBackends[cfg.ArchiveBackend]; !ok {
		return fmt.Errorf("invalid archive backend '%s'. must be sqlite, mysql, postgresql, none", input.ArchiveBackend)
	}
	cfg.ArchiveDBConnect = input.ArchiveDBConnect
	return ValidateDatabaseConnectionString(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
}
