package models

import "github.com/shopspring/decimal"

// RunSummary describes one computation for machine-readable reporting.
type RunSummary struct {
	Source            string          `json:"source" yaml:"source"`
	SessionID         string          `json:"session_id" yaml:"session_id"`
	RawRows           int             `json:"raw_rows" yaml:"raw_rows"`
	EnrichedRows      int             `json:"enriched_rows" yaml:"enriched_rows"`
	DroppedDateRows   int             `json:"dropped_date_rows" yaml:"dropped_date_rows"`
	FilteredRows      int             `json:"filtered_rows" yaml:"filtered_rows"`
	FirstDay          Day             `json:"first_day" yaml:"first_day"`
	LastDay           Day             `json:"last_day" yaml:"last_day"`
	Filter            FilterSelection `json:"filter" yaml:"filter"`
	Inbound           decimal.Decimal `json:"inbound_sum" yaml:"inbound_sum"`
	Outbound          decimal.Decimal `json:"outbound_sum" yaml:"outbound_sum"`
	Conversion        decimal.Decimal `json:"conversion_sum" yaml:"conversion_sum"`
	TotalExclTransfer decimal.Decimal `json:"total_excl_transfer" yaml:"total_excl_transfer"`
	TransferLines     int             `json:"transfer_line_count" yaml:"transfer_line_count"`
	UnrecognizedUnits []string        `json:"unrecognized_units" yaml:"unrecognized_units"`
}
