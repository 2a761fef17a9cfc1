package aggregator

import (
	"sort"

	"fjacquet/work-metrics/internal/models"
)

// Metric names of the long view, in their sort order.
const (
	MetricConversion = "conversion"
	MetricInbound    = "inbound"
	MetricOutbound   = "outbound"
)

// Melt turns the Day×User×Item table into one row per metric, sorted by
// day, user, item and metric.
func Melt(rows []models.DayUserItemMetrics) []models.MetricValue {
	out := make([]models.MetricValue, 0, len(rows)*3)
	for _, r := range rows {
		out = append(out,
			models.MetricValue{Day: r.Day, User: r.User, Item: r.Item, Metric: MetricConversion, Value: r.Conversion},
			models.MetricValue{Day: r.Day, User: r.User, Item: r.Item, Metric: MetricInbound, Value: r.Inbound},
			models.MetricValue{Day: r.Day, User: r.User, Item: r.Item, Metric: MetricOutbound, Value: r.Outbound},
		)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Day.Compare(b.Day); c != 0 {
			return c < 0
		}
		if a.User != b.User {
			return a.User < b.User
		}
		if a.Item != b.Item {
			return a.Item < b.Item
		}
		return a.Metric < b.Metric
	})
	return out
}
