package container

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Typ práce;ID pracovní třídy;Množství práce;Jednotka;Uzavřená práce;ID uživatele;Č. položky;Místo\n" +
	"Vložit;Nákup;5;ST;45658;ann;A100;F-9-1-1\n" +
	"Vydat;;10;PAL;45658.5;ann;B200;DOCK A\n" +
	"Vložit;;1;ST;45659;bob;C300;F-1-1-1\n" +
	"Vložit;Nákup;1;ST;bad;bob;C300;DOCK A\n"

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{name: "nil config", config: nil, expectError: true, errorMsg: "configuration cannot be nil"},
		{name: "defaults", config: config.Defaults()},
		{
			name: "bad cache size",
			config: func() *config.Config {
				cfg := config.Defaults()
				cfg.Cache.Size = 0
				return cfg
			}(),
			expectError: true,
			errorMsg:    "failed to create loader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.Equal(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLoader())
			assert.NotNil(t, c.GetEnricher())
			assert.NotNil(t, c.GetExporter())
			assert.NotNil(t, c.GetReportGenerator())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(config.Defaults(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestOpenSession(t *testing.T) {
	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(config.Defaults(), logger)
	require.NoError(t, err)

	path := writeInput(t, "lines.csv", sampleCSV)
	s, err := c.OpenSession(path)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "2025-01-02", s.Filter().From.String())
	assert.Equal(t, []string{"ann", "bob"}, s.Users())
	assert.True(t, logger.HasEntry("INFO", "Opened session"))

	summary := s.Summary(s.Compute())
	assert.Equal(t, 4, summary.RawRows)
	assert.Equal(t, 1, summary.DroppedDateRows)
	assert.Equal(t, 1, summary.TransferLines)

	// A second open of identical content is served from the cache.
	_, err = c.OpenSession(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.GetLoader().Len())
}

func TestOpenSession_Errors(t *testing.T) {
	c, err := NewContainerWithLogger(config.Defaults(), logging.NewMockLogger())
	require.NoError(t, err)

	_, err = c.OpenSession(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = c.OpenSession(writeInput(t, "lines.pdf", sampleCSV))
	var unsupported *parsererror.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))

	_, err = c.OpenSession(writeInput(t, "lines.csv", "Typ práce;Jednotka\nVložit;ST\n"))
	var missing *parsererror.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Missing, 6)
}
