// Package session holds one loaded dataset and its active filter. Each
// session owns an independent copy of its records; every computation is a
// pure function of (records, filter).
package session

import (
	"fjacquet/work-metrics/internal/aggregator"
	"fjacquet/work-metrics/internal/audit"
	"fjacquet/work-metrics/internal/enricher"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/ranking"

	"github.com/google/uuid"
)

// Session is a dataset plus its filter selection.
type Session struct {
	id              string
	source          string
	records         []models.EnrichedRecord
	rawRows         int
	droppedDateRows int
	filter          models.FilterSelection
}

// Computation is the output of one recomputation.
type Computation struct {
	Filter            models.FilterSelection
	FilteredRows      int
	Result            models.Result
	UnrecognizedUnits []string
}

// New creates a session over a copy of the enriched records. The filter starts
// at the default selection: the last day, every user, no item query.
func New(source string, enriched *enricher.Enrichment) *Session {
	s := &Session{id: uuid.New().String(), source: source}
	if enriched != nil {
		s.records = append([]models.EnrichedRecord(nil), enriched.Records...)
		s.rawRows = enriched.RawRows
		s.droppedDateRows = enriched.DroppedDateRows
	}
	s.ResetFilter()
	return s
}

func (s *Session) ID() string     { return s.id }
func (s *Session) Source() string { return s.source }
func (s *Session) Len() int       { return len(s.records) }

// Span returns the first and last day of the dataset.
func (s *Session) Span() aggregator.DaySpan {
	return aggregator.Span(s.records)
}

// Users returns the sorted distinct users of the dataset.
func (s *Session) Users() []string {
	return aggregator.Users(s.records)
}

// Filter returns the active selection.
func (s *Session) Filter() models.FilterSelection {
	return copyFilter(s.filter)
}

// SetFilter replaces the active selection.
func (s *Session) SetFilter(f models.FilterSelection) {
	s.filter = copyFilter(f)
}

// ResetFilter restores the default selection.
func (s *Session) ResetFilter() {
	s.filter = aggregator.DefaultFilter(s.records)
}

// Compute filters the records and derives the four tables and the unit audit.
func (s *Session) Compute() Computation {
	filtered := aggregator.ApplyFilter(s.records, s.filter)
	dayUser := aggregator.DayUser(filtered)
	return Computation{
		Filter:       copyFilter(s.filter),
		FilteredRows: len(filtered),
		Result: models.Result{
			DayUser:     dayUser,
			DayUserItem: aggregator.DayUserItem(filtered),
			DayTotals:   aggregator.DayTotals(dayUser),
			Transfers:   aggregator.Transfers(filtered),
		},
		UnrecognizedUnits: audit.UnrecognizedUnits(filtered),
	}
}

// TopN ranks the Day×User×Item rows of a computation.
func (s *Session) TopN(c Computation, narrow ranking.Narrowing, n int) []models.RankedItem {
	return ranking.TopN(c.Result.DayUserItem, narrow, n)
}

// Summary describes a computation of this session.
func (s *Session) Summary(c Computation) *models.RunSummary {
	span := s.Span()
	grand := aggregator.GrandTotal(c.Result.DayTotals)
	return &models.RunSummary{
		Source:            s.source,
		SessionID:         s.id,
		RawRows:           s.rawRows,
		EnrichedRows:      len(s.records),
		DroppedDateRows:   s.droppedDateRows,
		FilteredRows:      c.FilteredRows,
		FirstDay:          span.First,
		LastDay:           span.Last,
		Filter:            c.Filter,
		Inbound:           grand.Inbound,
		Outbound:          grand.Outbound,
		Conversion:        grand.Conversion,
		TotalExclTransfer: grand.TotalExclTransfer,
		TransferLines:     aggregator.TransferLines(c.Result.Transfers),
		UnrecognizedUnits: c.UnrecognizedUnits,
	}
}

func copyFilter(f models.FilterSelection) models.FilterSelection {
	if f.Users != nil {
		f.Users = append([]string(nil), f.Users...)
	}
	return f
}
