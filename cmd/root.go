package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "driftwatch",
	Short:              "Profile tabular datasets and watch data quality metrics drift over time.",
	Long:               `Driftwatch profiles tabular data, finds statistical anomalies and distributional drift, and tracks derived quality metrics with threshold-based alerting.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig wires the config file and DRIFTWATCH_* env variables into viper.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".driftwatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("DRIFTWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Every bound key needs a default so unmarshal sees a value even when
	// no flag, env var, or config file sets it.
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("format", schema.JSONOut)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("method", schema.IQRMethod)
	viper.SetDefault("state", contract.DefaultStatePath)
	viper.SetDefault("limit", contract.DefaultHistoryLimit)
	viper.SetDefault("days", contract.DefaultPruneDays)
	viper.SetDefault("window", contract.DefaultTrendWindow)
	viper.SetDefault("drift-threshold", contract.DefaultDriftThreshold)
	viper.SetDefault("null-threshold", contract.DefaultNullThreshold)
	viper.SetDefault("anomaly-threshold", contract.DefaultAnomalyThreshold)
	viper.SetDefault("rate-limit", contract.DefaultRateLimitSeconds)
	viper.SetDefault("channels", string(schema.LogChannel))
	viper.SetDefault("archive-backend", schema.SQLiteBackend)
	viper.SetDefault("archive-db-connect", "")
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("color", "yes")
}

// sharedSetup merges defaults, config file, env, and flags, then validates
// the result into the global cfg. A missing config file is not an error.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// Positional data-file argument, which viper does not cover.
	if len(args) == 1 {
		input.DataFileStr = args[0]
	}

	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
