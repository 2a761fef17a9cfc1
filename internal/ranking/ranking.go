// Package ranking selects the highest-scoring Day×User×Item rows.
package ranking

import (
	"sort"

	"fjacquet/work-metrics/internal/models"
)

// Narrowing restricts ranking to one day and/or one user. The zero Day and the
// empty user mean no narrowing.
type Narrowing struct {
	Day  models.Day
	User string
}

// TopN scores each row (inbound + outbound + conversion), keeps the rows that
// match the narrowing and returns the n best in descending score order. Rows
// with equal scores keep their input order. n <= 0 yields no rows.
func TopN(rows []models.DayUserItemMetrics, narrow Narrowing, n int) []models.RankedItem {
	if n <= 0 {
		return []models.RankedItem{}
	}

	ranked := make([]models.RankedItem, 0, len(rows))
	for _, r := range rows {
		if !narrow.Day.IsZero() && !r.Day.Equal(narrow.Day) {
			continue
		}
		if narrow.User != "" && r.User != narrow.User {
			continue
		}
		ranked = append(ranked, models.RankedItem{DayUserItemMetrics: r, Score: r.Score()})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.GreaterThan(ranked[j].Score)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
