// Package report renders the machine-readable run summary.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportGenerator renders run summaries in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField("component", "ReportGenerator")}
}

// GenerateReport renders the summary as json or yaml ("yml" is accepted).
func (g *ReportGenerator) GenerateReport(summary *models.RunSummary, format string) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("cannot generate a report without a summary")
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSONReport(summary)
	case FormatYAML, "yml":
		return g.generateYAMLReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(summary *models.RunSummary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(summary *models.RunSummary) ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
