// Package loader reads a work-line export (first sheet of a workbook, or
// delimited text) into a models.Sheet. It does not interpret any column.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// SheetLoader turns file content into a Sheet.
type SheetLoader interface {
	Load(name string, data []byte) (*models.Sheet, error)
}

// Format identifies how a file is read.
type Format string

const (
	FormatWorkbook  Format = "workbook"
	FormatDelimited Format = "delimited"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat picks the reader from the file extension.
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".xlsx", ".xlsm":
		return FormatWorkbook, nil
	case ".csv", ".txt":
		return FormatDelimited, nil
	default:
		return "", &parsererror.UnsupportedFormatError{FilePath: name, Extension: ext}
	}
}

// Loader reads workbooks with excelize and delimited text with encoding/csv.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader. A nil logger falls back to an info-level text logger.
func NewLoader(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{logger: logger}
}

// LoadFile reads path from disk and loads it.
func (l *Loader) LoadFile(path string) (*models.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return l.Load(filepath.Base(path), data)
}

// Load parses data according to the extension of name.
func (l *Loader) Load(name string, data []byte) (*models.Sheet, error) {
	format, err := DetectFormat(name)
	if err != nil {
		l.logger.Warn("Unsupported input format", logging.F(logging.FieldFile, name))
		return nil, err
	}

	var sheet *models.Sheet
	switch format {
	case FormatWorkbook:
		sheet, err = readWorkbook(name, data)
	default:
		sheet, err = readDelimited(name, data)
	}
	if err != nil {
		l.logger.WithError(err).Error("Failed to load input", logging.F(logging.FieldFile, name))
		return nil, err
	}

	l.logger.Info("Loaded input",
		logging.F(logging.FieldFile, name),
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldSheet, sheet.Name),
		logging.F(logging.FieldRows, len(sheet.Rows)))
	return sheet, nil
}

func readWorkbook(name string, data []byte) (*models.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &parsererror.UnsupportedFormatError{FilePath: name, Extension: filepath.Ext(name), Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.UnsupportedFormatError{FilePath: name, Extension: filepath.Ext(name), Err: errors.New("workbook has no sheets")}
	}

	// Raw values keep serial dates numeric instead of applying the cell's display format.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}
	return newSheet(name, sheets[0], rows), nil
}

// readDelimited reads semicolon-separated text, falling back to commas when
// semicolons do not split the header into more than one column.
func readDelimited(name string, data []byte) (*models.Sheet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	rows, err := readRecords(data, ';')
	if err != nil || (len(rows) > 0 && len(rows[0]) <= 1) {
		rows, err = readRecords(data, ',')
	}
	if err != nil {
		return nil, &parsererror.UnsupportedFormatError{FilePath: name, Extension: filepath.Ext(name), Err: err}
	}
	return newSheet(name, "", rows), nil
}

func readRecords(data []byte, delimiter rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
}

func newSheet(source, name string, rows [][]string) *models.Sheet {
	sheet := &models.Sheet{Source: source, Name: name}
	if len(rows) == 0 {
		return sheet
	}
	sheet.Header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		sheet.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}
	sheet.Rows = rows[1:]
	return sheet
}
