package models

import "github.com/shopspring/decimal"

// Canonical column keys. Loaded headers are mapped onto these keys before
// rows are decoded, whatever the export calls them.
const (
	ColWorkType   = "work_type"
	ColWorkClass  = "work_class"
	ColQuantity   = "quantity"
	ColUnit       = "unit"
	ColClosedDate = "closed_date"
	ColUser       = "user"
	ColItem       = "item"
	ColLocation   = "location"
)

// RequiredColumns lists the canonical keys in the order they are reported.
var RequiredColumns = []string{
	ColWorkType, ColWorkClass, ColQuantity, ColUnit,
	ColClosedDate, ColUser, ColItem, ColLocation,
}

// RawRecord is one row of the work-line export, as text.
type RawRecord struct {
	WorkType   string `csv:"work_type"`
	WorkClass  string `csv:"work_class"`
	Quantity   string `csv:"quantity"`
	Unit       string `csv:"unit"`
	ClosedDate string `csv:"closed_date"`
	User       string `csv:"user"`
	Item       string `csv:"item"`
	Location   string `csv:"location"`
}

// EnrichedRecord is a RawRecord with its derived fields. Only rows with a
// valid day become EnrichedRecords.
type EnrichedRecord struct {
	Raw RawRecord

	WorkTypeNorm  string
	WorkClassNorm string
	UnitNorm      string

	User     string
	Item     string
	Location string

	Day               Day
	Quantity          decimal.Decimal
	QtyUnitOne        decimal.Decimal
	QtyPalletExpanded decimal.Decimal

	Category       Category
	LocationBucket string
}

func (r EnrichedRecord) IsInbound() bool    { return r.Category == CategoryInbound }
func (r EnrichedRecord) IsOutbound() bool   { return r.Category == CategoryOutbound }
func (r EnrichedRecord) IsConversion() bool { return r.Category == CategoryConversion }
func (r EnrichedRecord) IsTransfer() bool   { return r.Category == CategoryTransfer }

// MetricQuantity is the quantity the record contributes to its category's metric.
// Transfers and unclassified rows contribute nothing.
func (r EnrichedRecord) MetricQuantity() decimal.Decimal {
	switch r.Category {
	case CategoryInbound, CategoryOutbound:
		return r.QtyUnitOne
	case CategoryConversion:
		return r.QtyPalletExpanded
	default:
		return decimal.Zero
	}
}
