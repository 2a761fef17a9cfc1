package aggregator

import (
	"fmt"
	"sort"

	"fjacquet/work-metrics/internal/models"
)

// DaySpan is the first and last day of a dataset.
type DaySpan struct {
	First models.Day
	Last  models.Day
}

// String returns the span as "YYYY-MM-DD_YYYY-MM-DD", or "" when empty.
func (s DaySpan) String() string {
	if s.First.IsZero() || s.Last.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", s.First, s.Last)
}

// Merge combines two spans into the overall span.
func (s DaySpan) Merge(other DaySpan) DaySpan {
	out := s
	if out.First.IsZero() || (!other.First.IsZero() && other.First.Before(out.First)) {
		out.First = other.First
	}
	if out.Last.IsZero() || (!other.Last.IsZero() && other.Last.After(out.Last)) {
		out.Last = other.Last
	}
	return out
}

// Span returns the min and max day of the records.
func Span(records []models.EnrichedRecord) DaySpan {
	var span DaySpan
	for _, r := range records {
		span = span.Merge(DaySpan{First: r.Day, Last: r.Day})
	}
	return span
}

// Users returns the sorted distinct user identifiers.
func Users(records []models.EnrichedRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.User] = struct{}{}
	}
	users := make([]string, 0, len(seen))
	for u := range seen {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}
