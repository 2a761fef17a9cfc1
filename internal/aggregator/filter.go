package aggregator

import "fjacquet/work-metrics/internal/models"

// ApplyFilter returns the records matching the selection, in input order.
func ApplyFilter(records []models.EnrichedRecord, filter models.FilterSelection) []models.EnrichedRecord {
	out := make([]models.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// DefaultFilter selects the last day present in the dataset, every user and
// no item query. An empty dataset yields the zero selection.
func DefaultFilter(records []models.EnrichedRecord) models.FilterSelection {
	span := Span(records)
	if span.Last.IsZero() {
		return models.FilterSelection{}
	}
	return models.FilterSelection{From: span.Last, To: span.Last}
}
