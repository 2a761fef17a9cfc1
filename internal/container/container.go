// Package container provides dependency injection for the work-metrics application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"path/filepath"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/enricher"
	"fjacquet/work-metrics/internal/exporter"
	"fjacquet/work-metrics/internal/fileutils"
	"fjacquet/work-metrics/internal/loader"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/report"
	"fjacquet/work-metrics/internal/session"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation; fields are only reachable through getters.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	loader   *loader.CachedLoader
	enricher *enricher.Enricher
	exporter *exporter.Exporter
	reporter *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, logging through
// a logrus adapter built from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(cfg.Logger()))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	cached, err := loader.NewCachedLoader(loader.NewLoader(logger), cfg.Cache.Size, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}

	c := &Container{
		logger:   logger,
		config:   cfg,
		loader:   cached,
		enricher: enricher.NewEnricherFromConfig(cfg, logger),
		exporter: exporter.NewExporter(cfg.Delimiter(), logger),
		reporter: report.NewReportGenerator(logger),
	}

	logger.Debug("Container initialized",
		logging.F("cache_size", cfg.Cache.Size),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))
	return c, nil
}

// OpenSession loads and enriches an input file into a new session.
func (c *Container) OpenSession(path string) (*session.Session, error) {
	data, err := fileutils.ReadInput(path)
	if err != nil {
		return nil, err
	}

	sheet, err := c.loader.Load(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}

	enriched, err := c.enricher.Enrich(sheet)
	if err != nil {
		return nil, err
	}

	s := session.New(path, enriched)
	c.logger.Info("Opened session",
		logging.F(logging.FieldSession, s.ID()),
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, s.Len()))
	return s, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger { return c.logger }

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config { return c.config }

// GetLoader returns the memoizing loader.
func (c *Container) GetLoader() *loader.CachedLoader { return c.loader }

// GetEnricher returns the row enricher.
func (c *Container) GetEnricher() *enricher.Enricher { return c.enricher }

// GetExporter returns the table exporter.
func (c *Container) GetExporter() *exporter.Exporter { return c.exporter }

// GetReportGenerator returns the run summary generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator { return c.reporter }

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
