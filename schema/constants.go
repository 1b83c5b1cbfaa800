package schema

// Custom string types for type safety.
type (
	// DataType represents the inferred type of a dataset column.
	DataType string

	// AnomalyMethod represents the statistical method used for anomaly search.
	AnomalyMethod string

	// Severity represents the severity level of an alert.
	Severity string

	// AlertChannel represents a delivery channel for alerts.
	AlertChannel string

	// TrendDirection represents the direction of a metric trend.
	TrendDirection string

	// TrendStatus represents the outcome of a trend analysis.
	TrendStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for archiving.
	DatabaseBackend string
)

// All column data types supported.
const (
	BooleanType  DataType = "boolean"
	IntegerType  DataType = "integer"
	FloatType    DataType = "float"
	StringType   DataType = "string"
	DatetimeType DataType = "datetime"
	UnknownType  DataType = "unknown"
)

// All anomaly search methods supported.
const (
	IQRMethod    AnomalyMethod = "iqr" // default
	ZScoreMethod AnomalyMethod = "zscore"
)

// All alert severities supported.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// All alert channels supported.
const (
	LogChannel       AlertChannel = "log" // default
	SlackChannel     AlertChannel = "slack"
	EmailChannel     AlertChannel = "email"
	PagerDutyChannel AlertChannel = "pagerduty"
	WebhookChannel   AlertChannel = "webhook"
)

// All trend directions supported.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// All trend analysis outcomes supported.
const (
	TrendSuccess          TrendStatus = "success"
	TrendInsufficientData TrendStatus = "insufficient_data"
	TrendError            TrendStatus = "error"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All archive backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Hard limits on monitoring state. These cap untrusted input sizes and keep
// long-lived monitoring processes memory-bounded.
const (
	MaxMetricNameLength   = 200  // metric and dataset names are truncated past this
	MaxAlertMessageLength = 1000 // alert messages are truncated with an ellipsis
	MaxRecommendations    = 10   // per-alert recommendation cap
	MaxSnapshotsInMemory  = 10000
	MaxAlertsInMemory     = 1000
	SnapshotRetainFloor   = 100 // per-metric retention floor during pruning
	MaxHistoryDays        = 365
	TopValueLimit         = 10 // top-K cap for categorical summaries
)

// ValidSeverities lists all valid alert severities.
var ValidSeverities = map[Severity]struct{}{
	SeverityCritical: {},
	SeverityWarning:  {},
	SeverityInfo:     {},
}

// ValidAlertChannels lists all valid alert channels.
var ValidAlertChannels = map[AlertChannel]struct{}{
	LogChannel:       {},
	SlackChannel:     {},
	EmailChannel:     {},
	PagerDutyChannel: {},
	WebhookChannel:   {},
}

// ValidAnomalyMethods lists all valid anomaly search methods.
var ValidAnomalyMethods = map[AnomalyMethod]struct{}{
	IQRMethod:    {},
	ZScoreMethod: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidArchiveBackends lists all valid archive backends.
var ValidArchiveBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
