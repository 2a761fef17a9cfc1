// Package aggregator groups enriched work lines into the Day×User,
// Day×User×Item, Day totals and transfer tables. Every function is a pure
// function of its input; results are sorted by their grouping key.
package aggregator

import (
	"sort"

	"fjacquet/work-metrics/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate filters records and computes all four tables.
func Aggregate(records []models.EnrichedRecord, filter models.FilterSelection) models.Result {
	filtered := ApplyFilter(records, filter)
	dayUser := DayUser(filtered)
	return models.Result{
		DayUser:     dayUser,
		DayUserItem: DayUserItem(filtered),
		DayTotals:   DayTotals(dayUser),
		Transfers:   Transfers(filtered),
	}
}

type dayUserKey struct {
	day  models.Day
	user string
}

type dayUserItemKey struct {
	day  models.Day
	user string
	item string
}

type transferKey struct {
	day    models.Day
	bucket string
}

// sums holds the three per-category metric sums of one group.
type sums struct {
	inbound    decimal.Decimal
	outbound   decimal.Decimal
	conversion decimal.Decimal
}

func (s *sums) add(r models.EnrichedRecord) {
	q := r.MetricQuantity()
	switch {
	case r.IsInbound():
		s.inbound = s.inbound.Add(q)
	case r.IsOutbound():
		s.outbound = s.outbound.Add(q)
	case r.IsConversion():
		s.conversion = s.conversion.Add(q)
	}
}

func (s sums) total() decimal.Decimal {
	return s.inbound.Add(s.outbound).Add(s.conversion)
}

// DayUser sums each counted category per (day, user). A key appears as soon as
// one counted category has a row for it; the other metrics are zero.
func DayUser(records []models.EnrichedRecord) []models.DayUserMetrics {
	groups := make(map[dayUserKey]*sums)
	for _, r := range records {
		if !r.Category.Counted() {
			continue
		}
		k := dayUserKey{day: r.Day, user: r.User}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
		}
		g.add(r)
	}

	rows := make([]models.DayUserMetrics, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, models.DayUserMetrics{
			Day:               k.day,
			User:              k.user,
			Inbound:           g.inbound,
			Outbound:          g.outbound,
			Conversion:        g.conversion,
			TotalExclTransfer: g.total(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Day.Compare(rows[j].Day); c != 0 {
			return c < 0
		}
		return rows[i].User < rows[j].User
	})
	return rows
}

// DayUserItem sums each counted category per (day, user, item).
func DayUserItem(records []models.EnrichedRecord) []models.DayUserItemMetrics {
	groups := make(map[dayUserItemKey]*sums)
	for _, r := range records {
		if !r.Category.Counted() {
			continue
		}
		k := dayUserItemKey{day: r.Day, user: r.User, item: r.Item}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
		}
		g.add(r)
	}

	rows := make([]models.DayUserItemMetrics, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, models.DayUserItemMetrics{
			Day:        k.day,
			User:       k.user,
			Item:       k.item,
			Inbound:    g.inbound,
			Outbound:   g.outbound,
			Conversion: g.conversion,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Day.Compare(rows[j].Day); c != 0 {
			return c < 0
		}
		if rows[i].User != rows[j].User {
			return rows[i].User < rows[j].User
		}
		return rows[i].Item < rows[j].Item
	})
	return rows
}

// DayTotals sums the Day×User table per day.
func DayTotals(dayUser []models.DayUserMetrics) []models.DayTotals {
	index := make(map[models.Day]int)
	var rows []models.DayTotals
	for _, du := range dayUser {
		i, ok := index[du.Day]
		if !ok {
			i = len(rows)
			index[du.Day] = i
			rows = append(rows, models.DayTotals{Day: du.Day})
		}
		t := &rows[i]
		t.Inbound = t.Inbound.Add(du.Inbound)
		t.Outbound = t.Outbound.Add(du.Outbound)
		t.Conversion = t.Conversion.Add(du.Conversion)
		t.TotalExclTransfer = t.TotalExclTransfer.Add(du.TotalExclTransfer)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Day.Before(rows[j].Day)
	})
	return rows
}

// Transfers counts transfer lines per (day, location bucket). Quantities are
// ignored.
func Transfers(records []models.EnrichedRecord) []models.TransferCount {
	counts := make(map[transferKey]int)
	for _, r := range records {
		if !r.IsTransfer() {
			continue
		}
		counts[transferKey{day: r.Day, bucket: r.LocationBucket}]++
	}

	rows := make([]models.TransferCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, models.TransferCount{Day: k.day, LocationBucket: k.bucket, Lines: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Day.Compare(rows[j].Day); c != 0 {
			return c < 0
		}
		return rows[i].LocationBucket < rows[j].LocationBucket
	})
	return rows
}

// TransferLines is the total number of transfer lines in the table.
func TransferLines(transfers []models.TransferCount) int {
	n := 0
	for _, t := range transfers {
		n += t.Lines
	}
	return n
}

// GrandTotal sums the Day totals table.
func GrandTotal(days []models.DayTotals) models.DayTotals {
	var g models.DayTotals
	for _, d := range days {
		g.Inbound = g.Inbound.Add(d.Inbound)
		g.Outbound = g.Outbound.Add(d.Outbound)
		g.Conversion = g.Conversion.Add(d.Conversion)
		g.TotalExclTransfer = g.TotalExclTransfer.Add(d.TotalExclTransfer)
	}
	return g
}
