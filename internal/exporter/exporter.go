// Package exporter writes the four metric tables to a workbook or to CSV files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLength is the longest sheet name a workbook accepts.
const MaxSheetNameLength = 31

// Sheet names of the exported workbook, in order.
const (
	SheetDayUser     = "day_user"
	SheetDayUserItem = "day_user_item"
	SheetDayTotals   = "day_totals"
	SheetTransfers   = "transfers"
)

// Exporter writes computed tables.
type Exporter struct {
	delimiter rune
	logger    logging.Logger
}

// NewExporter creates an Exporter writing CSV with the given delimiter.
func NewExporter(delimiter rune, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ';'
	}
	return &Exporter{delimiter: delimiter, logger: logger}
}

// SheetName truncates name to MaxSheetNameLength characters.
func SheetName(name string) string {
	r := []rune(name)
	if len(r) > MaxSheetNameLength {
		return string(r[:MaxSheetNameLength])
	}
	return name
}

// DefaultFileName returns "<prefix>_<YYYY-MM-DD>.xlsx" for the given day.
func DefaultFileName(prefix string, today time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, today.Format("2006-01-02"))
}

type table struct {
	name   string
	header []string
	rows   [][]interface{}
}

func tables(res models.Result) []table {
	dayUser := table{
		name:   SheetDayUser,
		header: []string{"day", "user", "inbound_sum", "outbound_sum", "conversion_sum", "total_excl_transfer"},
	}
	for _, r := range res.DayUser {
		dayUser.rows = append(dayUser.rows, []interface{}{
			r.Day.String(), r.User,
			r.Inbound.InexactFloat64(), r.Outbound.InexactFloat64(),
			r.Conversion.InexactFloat64(), r.TotalExclTransfer.InexactFloat64(),
		})
	}

	dayUserItem := table{
		name:   SheetDayUserItem,
		header: []string{"day", "user", "item", "inbound_sum", "outbound_sum", "conversion_sum"},
	}
	for _, r := range res.DayUserItem {
		dayUserItem.rows = append(dayUserItem.rows, []interface{}{
			r.Day.String(), r.User, r.Item,
			r.Inbound.InexactFloat64(), r.Outbound.InexactFloat64(), r.Conversion.InexactFloat64(),
		})
	}

	dayTotals := table{
		name:   SheetDayTotals,
		header: []string{"day", "inbound_sum", "outbound_sum", "conversion_sum", "total_excl_transfer"},
	}
	for _, r := range res.DayTotals {
		dayTotals.rows = append(dayTotals.rows, []interface{}{
			r.Day.String(),
			r.Inbound.InexactFloat64(), r.Outbound.InexactFloat64(),
			r.Conversion.InexactFloat64(), r.TotalExclTransfer.InexactFloat64(),
		})
	}

	transfers := table{
		name:   SheetTransfers,
		header: []string{"day", "location_bucket", "transfer_line_count"},
	}
	for _, r := range res.Transfers {
		transfers.rows = append(transfers.rows, []interface{}{r.Day.String(), r.LocationBucket, r.Lines})
	}

	return []table{dayUser, dayUserItem, dayTotals, transfers}
}

// WriteWorkbook writes the four tables as four sheets to w. No index column is
// written; the header is row 1.
func (e *Exporter) WriteWorkbook(w io.Writer, res models.Result) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	for i, t := range tables(res) {
		name := SheetName(t.name)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return &parsererror.ExportError{Sheet: name, Err: err}
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return &parsererror.ExportError{Sheet: name, Err: err}
		}
		if err := writeSheet(f, name, t); err != nil {
			return &parsererror.ExportError{Sheet: name, Err: err}
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return &parsererror.ExportError{Sheet: "workbook", Err: err}
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t table) error {
	header := make([]interface{}, len(t.header))
	for i, h := range t.header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// SaveWorkbook writes the workbook to path.
func (e *Exporter) SaveWorkbook(path string, res models.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating workbook file: %w", err)
	}

	if err := e.WriteWorkbook(file, res); err != nil {
		_ = file.Close()
		e.logger.WithError(err).Error("Failed to write workbook", logging.F(logging.FieldOutputFile, path))
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing workbook file: %w", err)
	}

	e.logger.Info("Wrote workbook",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldRows, len(res.DayUser)+len(res.DayUserItem)+len(res.DayTotals)+len(res.Transfers)))
	return nil
}

// WriteCSV marshals a slice of table rows as delimited text with a header.
func (e *Exporter) WriteCSV(w io.Writer, rows interface{}) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// SaveCSVDir writes one "<sheet>.csv" file per table into dir and returns the
// paths written.
func (e *Exporter) SaveCSVDir(dir string, res models.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating CSV directory: %w", err)
	}

	outputs := []struct {
		name string
		rows interface{}
	}{
		{SheetDayUser, res.DayUser},
		{SheetDayUserItem, res.DayUserItem},
		{SheetDayTotals, res.DayTotals},
		{SheetTransfers, res.Transfers},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name+".csv")
		if err := e.saveCSV(path, out.rows); err != nil {
			e.logger.WithError(err).Error("Failed to write CSV", logging.F(logging.FieldOutputFile, path))
			return paths, &parsererror.ExportError{Sheet: out.name, Err: err}
		}
		paths = append(paths, path)
	}

	e.logger.Info("Wrote CSV tables",
		logging.F(logging.FieldOutputFile, dir),
		logging.F(logging.FieldCount, len(paths)),
		logging.F(logging.FieldDelimiter, string(e.delimiter)))
	return paths, nil
}

func (e *Exporter) saveCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.WriteCSV(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
