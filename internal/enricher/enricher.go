// Package enricher derives the per-row fields of a work-line export: the
// serial day, numeric quantity and its unit variants, the location bucket and
// the work category.
package enricher

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/dateutils"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/parsererror"
	"fjacquet/work-metrics/internal/textutils"

	"github.com/gocarina/gocsv"
)

// Enrichment is the outcome of enriching one sheet.
type Enrichment struct {
	Records            []models.EnrichedRecord
	RawRows            int
	DroppedDateRows    int
	ZeroedQuantityRows int
}

// Enricher turns loaded sheets into enriched records.
type Enricher struct {
	headers    map[string]string
	classifier Classifier
	logger     logging.Logger
}

// NewEnricher creates an Enricher. headers maps canonical column keys
// (models.Col*) to the export's header names.
func NewEnricher(headers map[string]string, vocab config.Vocabulary, logger logging.Logger) *Enricher {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Enricher{headers: headers, classifier: NewClassifier(vocab), logger: logger}
}

// NewEnricherFromConfig wires an Enricher from the application configuration.
func NewEnricherFromConfig(cfg *config.Config, logger logging.Logger) *Enricher {
	return NewEnricher(cfg.ColumnHeaders(), cfg.Vocabulary(), logger)
}

// CheckColumns verifies that every required header is present and reports all
// missing ones at once, in the canonical order.
func (e *Enricher) CheckColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, key := range models.RequiredColumns {
		name := e.headers[key]
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &parsererror.MissingColumnsError{Missing: missing}
	}
	return nil
}

// Decode maps the sheet's rows onto RawRecords.
func (e *Enricher) Decode(sheet *models.Sheet) ([]models.RawRecord, error) {
	if err := e.CheckColumns(sheet.Header); err != nil {
		return nil, err
	}

	byHeader := make(map[string]string, len(e.headers))
	for key, name := range e.headers {
		byHeader[name] = key
	}

	// Rename configured headers to their canonical keys; blank out the rest so
	// an unrelated column can never collide with a canonical key.
	canonical := make([]string, len(sheet.Header))
	used := make(map[string]bool, len(e.headers))
	for i, h := range sheet.Header {
		key, ok := byHeader[strings.TrimSpace(h)]
		if ok && !used[key] {
			canonical[i] = key
			used[key] = true
		}
	}

	rows := make([][]string, 0, len(sheet.Rows)+1)
	rows = append(rows, canonical)
	rows = append(rows, sheet.Rows...)

	var records []models.RawRecord
	if err := gocsv.UnmarshalCSV(&rowReader{rows: rows}, &records); err != nil {
		return nil, fmt.Errorf("error decoding rows of %s: %w", sheet.Source, err)
	}
	return records, nil
}

// Enrich validates the sheet's columns and derives every EnrichedRecord.
// Rows whose closed-work date is not a valid serial day are dropped;
// unparsable quantities count as zero.
func (e *Enricher) Enrich(sheet *models.Sheet) (*Enrichment, error) {
	raw, err := e.Decode(sheet)
	if err != nil {
		e.logger.WithError(err).Error("Cannot enrich input", logging.F(logging.FieldFile, sheet.Source))
		return nil, err
	}

	out := &Enrichment{RawRows: len(raw), Records: make([]models.EnrichedRecord, 0, len(raw))}
	for _, r := range raw {
		rec, ok, zeroed := e.EnrichRecord(r)
		if zeroed {
			out.ZeroedQuantityRows++
		}
		if !ok {
			out.DroppedDateRows++
			continue
		}
		out.Records = append(out.Records, rec)
	}

	e.logger.Debug("Enriched rows",
		logging.F(logging.FieldFile, sheet.Source),
		logging.F(logging.FieldCount, len(out.Records)),
		logging.F(logging.FieldDropped, out.DroppedDateRows),
		logging.F("zeroed_quantities", out.ZeroedQuantityRows))
	return out, nil
}

// EnrichRecord derives one record. ok is false when the row has no valid day;
// zeroed reports a quantity that could not be parsed.
func (e *Enricher) EnrichRecord(r models.RawRecord) (rec models.EnrichedRecord, ok bool, zeroed bool) {
	rec = models.EnrichedRecord{
		Raw:           r,
		WorkTypeNorm:  textutils.Normalize(r.WorkType),
		WorkClassNorm: textutils.Normalize(r.WorkClass),
		UnitNorm:      textutils.Normalize(r.Unit),
		User:          textutils.Clean(r.User),
		Item:          textutils.Clean(r.Item),
		Location:      textutils.Clean(r.Location),
	}

	qty, parsed := ParseQuantity(textutils.Clean(r.Quantity))
	rec.Quantity = qty
	rec.QtyUnitOne, rec.QtyPalletExpanded = DeriveQuantities(qty, rec.UnitNorm)
	rec.Category = e.classifier.Classify(rec.WorkTypeNorm, rec.WorkClassNorm)
	rec.LocationBucket = BucketLocation(rec.Location)

	day, valid := dateutils.FromSerial(r.ClosedDate)
	if valid {
		rec.Day = models.NewDay(day)
	}
	return rec, valid && !rec.Day.IsZero(), !parsed
}

// rowReader feeds in-memory rows to gocsv.
type rowReader struct {
	rows [][]string
	pos  int
}

func (r *rowReader) Read() ([]string, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func (r *rowReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.pos:]
	r.pos = len(r.rows)
	return rest, nil
}
