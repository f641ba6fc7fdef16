package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/intentops/intentctl/schema"
)

// Confidence label constants.
const (
	StrongValue   = "Strong"
	ModerateValue = "Moderate"
	WeakValue     = "Weak"
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // strongColor marks high-confidence signal.
	ModerateColor = color.New(color.FgYellow)            // moderateColor marks standard caution.
	WeakColor     = color.New(color.FgCyan)              // weakColor marks informational / low signal.
	AlertColor    = color.New(color.FgRed, color.Bold)   // alertColor marks alert-eligible rows.
)

// GetPlainConfidenceLabel returns a plain text label for a confidence or
// match-rate value in [0,1]. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainConfidenceLabel(value float64) string {
	switch {
	case value >= 0.75:
		return StrongValue
	case value >= 0.4:
		return ModerateValue
	default:
		return WeakValue
	}
}

// GetColorConfidenceLabel returns a colored text label for console output.
// It uses GetPlainConfidenceLabel to determine the string, and then applies
// the appropriate color.
func GetColorConfidenceLabel(value float64) string {
	text := GetPlainConfidenceLabel(value)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// GetAlertLabel returns the two-state alert label, colored when requested.
// Eligibility is an opaque backend decision; no threshold is applied here.
func GetAlertLabel(eligible, useColors bool) string {
	if !eligible {
		return schema.AlertHoldLabel
	}
	if useColors {
		return AlertColor.Sprint(schema.AlertEligibleLabel)
	}
	return schema.AlertEligibleLabel
}

// FormatOptFloat formats an optional float with the given precision, or the
// absent sentinel when nil. Absent must never render as zero.
func FormatOptFloat(v *float64, precision int) string {
	if v == nil {
		return schema.AbsentValue
	}
	return fmt.Sprintf("%.*f", precision, *v)
}

// FormatPercent renders a [0,1] fraction as a whole percentage.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%d%%", RoundPercent(v))
}

// RoundPercent converts a [0,1] fraction to the nearest whole percent.
func RoundPercent(v float64) int {
	return int(v*100 + 0.5)
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// MaskKey obscures all but the last four characters of an API key for display.
func MaskKey(key string) string {
	runes := []rune(key)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
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
