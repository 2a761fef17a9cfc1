// Package validation checks command options before any input is read.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/work-metrics/internal/models"
)

// IsValidReportFormat checks if the given report format is supported.
func IsValidReportFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'json', 'yaml'", format)
	}
}

// IsValidDayRange rejects a selection whose first day is after its last day.
func IsValidDayRange(sel models.FilterSelection) error {
	if !sel.From.IsZero() && !sel.To.IsZero() && sel.From.After(sel.To) {
		return fmt.Errorf("day range is inverted: %s is after %s", sel.From, sel.To)
	}
	return nil
}

// IsValidTopN checks a ranking size; zero means the configured default.
func IsValidTopN(n int) error {
	if n < 0 {
		return fmt.Errorf("--top must not be negative, got %d", n)
	}
	return nil
}
