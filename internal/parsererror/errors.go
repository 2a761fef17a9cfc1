// Package parsererror defines the typed errors raised while loading and
// enriching a work-line export. Row-level problems are never errors; only
// structural problems with the input are.
package parsererror

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError is returned when the input is neither a readable
// spreadsheet nor delimited text.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Err       error
}

func (e *UnsupportedFormatError) Error() string {
	msg := fmt.Sprintf("unsupported file format for '%s'", e.FilePath)
	if e.Extension != "" {
		msg += fmt.Sprintf(" (extension %q)", e.Extension)
	}
	msg += "; use XLSX, XLSM or CSV"
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Err
}

// MissingColumnsError lists every required column absent from the input header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("missing required columns: [%s]", strings.Join(quoted, ", "))
}

// ExportError wraps a failure while writing one output table.
type ExportError struct {
	Sheet string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export of %s failed: %v", e.Sheet, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
