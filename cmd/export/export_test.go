package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/work-metrics/cmd/common"
	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = "Typ práce,ID pracovní třídy,Množství práce,Jednotka,Uzavřená práce,ID uživatele,Č. položky,Místo\n" +
	"Vložit,Nákup,5,ST,45658,ann,A100,F-9-1-1\n" +
	"Vložit,,1,ST,45658,bob,B200,F-2-1-1\n"

func setup(t *testing.T) (*container.Container, string) {
	t.Helper()
	c, err := container.NewContainerWithLogger(config.Defaults(), logging.NewMockLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lines.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))
	return c, path
}

func TestExportCommand_Flags(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.NotNil(t, Cmd.Flags().Lookup("csv-dir"))
	assert.NotNil(t, Cmd.Flags().Lookup("all-days"))
}

func TestRun_DefaultNameInDirectory(t *testing.T) {
	c, input := setup(t)
	outDir := t.TempDir()
	today := time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, c, Options{Input: input, Output: outDir, Today: today}))

	want := filepath.Join(outDir, "work_metrics_2025-03-04.xlsx")
	assert.Contains(t, buf.String(), "Workbook written to "+want)

	f, err := excelize.OpenFile(want)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"day_user", "day_user_item", "day_totals", "transfers"}, f.GetSheetList())

	rows, err := f.GetRows("transfers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2025-01-01", "address-coded locations", "1"}, rows[1])
}

func TestRun_WithCSV(t *testing.T) {
	c, input := setup(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "metrics.xlsx")
	csvDir := filepath.Join(dir, "csv")

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, c, Options{
		Input:   input,
		Output:  out,
		CSVDir:  csvDir,
		Filters: common.FilterFlags{AllDays: true},
	}))

	assert.FileExists(t, out)
	data, err := os.ReadFile(filepath.Join(csvDir, "day_user.csv"))
	require.NoError(t, err)
	assert.Equal(t, "day;user;inbound_sum;outbound_sum;conversion_sum;total_excl_transfer\n2025-01-01;ann;1;0;0;1\n", string(data))
	assert.Contains(t, buf.String(), "CSV written to "+filepath.Join(csvDir, "transfers.csv"))
}
