// Package cmd defines the command-line interface for driftwatch.
package cmd

import (
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(anomaliesCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the archive subcommands to the parent archive command
	archiveCmd.AddCommand(archivePushCmd)
	archiveCmd.AddCommand(archiveStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("state", contract.DefaultStatePath, "Path to the monitoring state file")
	rootCmd.PersistentFlags().String("dataset", "", "Dataset name (defaults to the data file stem)")
	rootCmd.PersistentFlags().Float64("drift-threshold", contract.DefaultDriftThreshold, "Drift score threshold (0.0-1.0)")
	rootCmd.PersistentFlags().String("archive-backend", string(schema.SQLiteBackend), "Archive backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("archive-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of anomaliesCmd to Viper
	anomaliesCmd.Flags().StringP("column", "c", "", "Column to search for anomalous values")
	anomaliesCmd.Flags().String("method", string(schema.IQRMethod), "Detection method: iqr or zscore")
	if err := viper.BindPFlags(anomaliesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding anomalies flags", err)
	}

	// Bind all flags of driftCmd to Viper
	driftCmd.Flags().StringP("baseline", "b", "", "Path to the baseline profile JSON")
	if err := viper.BindPFlags(driftCmd.Flags()); err != nil {
		contract.LogFatal("Error binding drift flags", err)
	}

	// Bind all flags of trackCmd to Viper
	trackCmd.Flags().Float64("null-threshold", contract.DefaultNullThreshold, "Null percentage warning threshold (0-100)")
	trackCmd.Flags().Float64("anomaly-threshold", contract.DefaultAnomalyThreshold, "Anomaly count critical threshold (0-10000)")
	trackCmd.Flags().String("channels", string(schema.LogChannel), "Comma-separated alert channels: log, slack, email, pagerduty, webhook")
	trackCmd.Flags().Int("rate-limit", contract.DefaultRateLimitSeconds, "Per-metric alert cooldown in seconds (0-3600)")
	if err := viper.BindPFlags(trackCmd.Flags()); err != nil {
		contract.LogFatal("Error binding track flags", err)
	}

	// Bind all flags of historyCmd to Viper
	historyCmd.Flags().StringP("metric", "m", "", "Metric name to show history for")
	historyCmd.Flags().IntP("limit", "l", contract.DefaultHistoryLimit, "Number of measurements to display")
	if err := viper.BindPFlags(historyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history flags", err)
	}

	// Bind all flags of pruneCmd to Viper
	pruneCmd.Flags().Int("days", contract.DefaultPruneDays, "Remove measurements older than this many days")
	if err := viper.BindPFlags(pruneCmd.Flags()); err != nil {
		contract.LogFatal("Error binding prune flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().Int("window", contract.DefaultTrendWindow, "Trend window size for the report")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("format", string(schema.JSONOut), "Export format: json or parquet")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}
