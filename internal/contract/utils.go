// Package contract holds the validated runtime configuration, dataset
// loading, and shared utilities used across driftwatch commands.
package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/huangsam/driftwatch/schema"
)

// Severity label constants.
const (
	CriticalValue = "Critical" // Critical severity
	WarningValue  = "Warning"  // Warning severity
	InfoValue     = "Info"     // Informational severity
	CleanValue    = "Clean"    // No drift / no issue
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)    // criticalColor represents standard danger.
	WarningColor  = color.New(color.FgYellow, color.Bold) // warningColor represents strong caution.
	InfoColor     = color.New(color.FgCyan)               // infoColor represents informational signal.
	CleanColor    = color.New(color.FgGreen)              // cleanColor represents a healthy state.
)

// GetPlainSeverityLabel returns a plain text label for an alert severity.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainSeverityLabel(sev schema.Severity) string {
	switch sev {
	case schema.SeverityCritical:
		return CriticalValue
	case schema.SeverityWarning:
		return WarningValue
	default:
		return InfoValue
	}
}

// GetColorSeverityLabel returns a colored text label for console output (table).
// It uses GetPlainSeverityLabel to determine the string, then applies the color.
func GetColorSeverityLabel(sev schema.Severity) string {
	text := GetPlainSeverityLabel(sev)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case WarningValue:
		return WarningColor.Sprint(text)
	default: // "Info"
		return InfoColor.Sprint(text)
	}
}

// GetPlainDriftLabel returns a plain text label for a drift score.
// Scores at or above 0.5 are critical, above zero are warnings.
func GetPlainDriftLabel(hasDrift bool, score float64) string {
	switch {
	case !hasDrift:
		return CleanValue
	case score >= 0.5:
		return CriticalValue
	default:
		return WarningValue
	}
}

// GetColorDriftLabel returns a colored drift label for console output.
func GetColorDriftLabel(hasDrift bool, score float64) string {
	text := GetPlainDriftLabel(hasDrift, score)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case WarningValue:
		return WarningColor.Sprint(text)
	default: // "Clean"
		return CleanColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// Warnf logs a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn "+format+"\n", args...)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetArchiveDBFilePath returns the path to the SQLite DB file for archive storage.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".driftwatch_archive.db"
	}
	return filepath.Join(homeDir, ".driftwatch_archive.db")
}

// TruncateValue truncates a display value to a maximum width with a trailing
// ellipsis. Requires maxWidth > 3 so there is room for both the ellipsis and
// at least one character of content.
func TruncateValue(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
