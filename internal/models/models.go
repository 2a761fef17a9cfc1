// Package models defines the records and tables that flow through the
// work-line metrics pipeline: raw export rows, enriched rows and the four
// aggregate tables.
package models

// Category is the mutually exclusive work category of one work line.
type Category int

const (
	CategoryNone Category = iota
	CategoryInbound
	CategoryOutbound
	CategoryConversion
	CategoryTransfer
)

func (c Category) String() string {
	switch c {
	case CategoryInbound:
		return "inbound"
	case CategoryOutbound:
		return "outbound"
	case CategoryConversion:
		return "conversion"
	case CategoryTransfer:
		return "transfer"
	default:
		return "none"
	}
}

// Counted reports whether the category contributes a quantity to the metric tables.
// Transfers are counted as lines only and never enter a quantity total.
func (c Category) Counted() bool {
	return c == CategoryInbound || c == CategoryOutbound || c == CategoryConversion
}

// Recognized unit codes (normalized form) and the fixed pallet size.
const (
	UnitPiece      = "ST"
	UnitPallet     = "PAL"
	UnitsPerPallet = 24
)

// AddressBucket replaces every location that looks like a shelf address.
const AddressBucket = "address-coded locations"
