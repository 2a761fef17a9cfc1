package models

import "github.com/shopspring/decimal"

// DayUserMetrics is one row of the Day×User table.
type DayUserMetrics struct {
	Day               Day             `csv:"day" json:"day" yaml:"day"`
	User              string          `csv:"user" json:"user" yaml:"user"`
	Inbound           decimal.Decimal `csv:"inbound_sum" json:"inbound_sum" yaml:"inbound_sum"`
	Outbound          decimal.Decimal `csv:"outbound_sum" json:"outbound_sum" yaml:"outbound_sum"`
	Conversion        decimal.Decimal `csv:"conversion_sum" json:"conversion_sum" yaml:"conversion_sum"`
	TotalExclTransfer decimal.Decimal `csv:"total_excl_transfer" json:"total_excl_transfer" yaml:"total_excl_transfer"`
}

// DayUserItemMetrics is one row of the Day×User×Item table.
type DayUserItemMetrics struct {
	Day        Day             `csv:"day" json:"day" yaml:"day"`
	User       string          `csv:"user" json:"user" yaml:"user"`
	Item       string          `csv:"item" json:"item" yaml:"item"`
	Inbound    decimal.Decimal `csv:"inbound_sum" json:"inbound_sum" yaml:"inbound_sum"`
	Outbound   decimal.Decimal `csv:"outbound_sum" json:"outbound_sum" yaml:"outbound_sum"`
	Conversion decimal.Decimal `csv:"conversion_sum" json:"conversion_sum" yaml:"conversion_sum"`
}

// Score is the combined metric used for Top-N ranking.
func (m DayUserItemMetrics) Score() decimal.Decimal {
	return m.Inbound.Add(m.Outbound).Add(m.Conversion)
}

// DayTotals is one row of the Day totals table.
type DayTotals struct {
	Day               Day             `csv:"day" json:"day" yaml:"day"`
	Inbound           decimal.Decimal `csv:"inbound_sum" json:"inbound_sum" yaml:"inbound_sum"`
	Outbound          decimal.Decimal `csv:"outbound_sum" json:"outbound_sum" yaml:"outbound_sum"`
	Conversion        decimal.Decimal `csv:"conversion_sum" json:"conversion_sum" yaml:"conversion_sum"`
	TotalExclTransfer decimal.Decimal `csv:"total_excl_transfer" json:"total_excl_transfer" yaml:"total_excl_transfer"`
}

// TransferCount is one row of the Day×LocationBucket transfer table.
type TransferCount struct {
	Day            Day    `csv:"day" json:"day" yaml:"day"`
	LocationBucket string `csv:"location_bucket" json:"location_bucket" yaml:"location_bucket"`
	Lines          int    `csv:"transfer_line_count" json:"transfer_line_count" yaml:"transfer_line_count"`
}

// MetricValue is one row of the long (melted) Day×User×Item view.
type MetricValue struct {
	Day    Day             `csv:"day" json:"day" yaml:"day"`
	User   string          `csv:"user" json:"user" yaml:"user"`
	Item   string          `csv:"item" json:"item" yaml:"item"`
	Metric string          `csv:"metric" json:"metric" yaml:"metric"`
	Value  decimal.Decimal `csv:"value" json:"value" yaml:"value"`
}

// RankedItem is a Day×User×Item row with its ranking score.
type RankedItem struct {
	DayUserItemMetrics
	Score decimal.Decimal `csv:"score" json:"score" yaml:"score"`
}

// Result bundles the four output tables of one computation.
type Result struct {
	DayUser     []DayUserMetrics
	DayUserItem []DayUserItemMetrics
	DayTotals   []DayTotals
	Transfers   []TransferCount
}
