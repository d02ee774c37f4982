package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Score label constants.
const (
	ExcellentValue = "Excellent" // Excellent agreement
	GoodValue      = "Good"      // Good agreement
	FairValue      = "Fair"      // Fair agreement
	PoorValue      = "Poor"      // Poor agreement
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor represents near-perfect agreement.
	GoodColor      = color.New(color.FgCyan)              // goodColor represents solid agreement.
	FairColor      = color.New(color.FgYellow)            // fairColor represents partial agreement.
	PoorColor      = color.New(color.FgRed, color.Bold)   // poorColor represents weak agreement.
)

// GetPlainLabel returns a plain text label indicating the agreement level
// for an F1 value in [0,1]. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainLabel(f1 float64) string {
	switch {
	case f1 >= 0.9:
		return ExcellentValue
	case f1 >= 0.7:
		return GoodValue
	case f1 >= 0.4:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(f1 float64) string {
	text := GetPlainLabel(f1)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
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

// GetCacheDBFilePath returns the path to the SQLite DB file for extraction caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sdrfbench_cache.db"
	}
	return filepath.Join(homeDir, ".sdrfbench_cache.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sdrfbench_runs.db"
	}
	return filepath.Join(homeDir, ".sdrfbench_runs.db")
}

// TruncateValue truncates a cell value to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both content and the "..."
// suffix. Without this check, small maxWidth values could cause slice bounds
// errors in the truncation calculation.
func TruncateValue(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// JoinValues renders a value set for table output, comma separated and
// truncated as a whole.
func JoinValues(values []string, maxWidth int) string {
	return TruncateValue(strings.Join(values, ", "), maxWidth)
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
