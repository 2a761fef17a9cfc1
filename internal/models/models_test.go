package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "inbound", CategoryInbound.String())
	assert.Equal(t, "outbound", CategoryOutbound.String())
	assert.Equal(t, "conversion", CategoryConversion.String())
	assert.Equal(t, "transfer", CategoryTransfer.String())
	assert.Equal(t, "none", CategoryNone.String())
}

func TestCategory_Counted(t *testing.T) {
	assert.True(t, CategoryInbound.Counted())
	assert.True(t, CategoryOutbound.Counted())
	assert.True(t, CategoryConversion.Counted())
	assert.False(t, CategoryTransfer.Counted())
	assert.False(t, CategoryNone.Counted())
}

func TestDay(t *testing.T) {
	d := NewDay(time.Date(2025, 1, 2, 13, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-02", d.String())
	assert.True(t, d.Equal(MustParseDay("2025-01-02")))
	assert.Equal(t, MustParseDay("2025-01-02"), d, "days built from different sources must be comparable with ==")
	next := MustParseDay("2025-01-03")
	assert.True(t, d.Before(next))
	assert.Equal(t, 1, next.Compare(d))

	var zero Day
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	_, err := ParseDay("2025/01/02")
	assert.Error(t, err)
}

func TestDay_Marshalling(t *testing.T) {
	d := MustParseDay("2025-01-02")
	s, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", s)

	b, err := json.Marshal(struct {
		Day Day `json:"day"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2025-01-02"}`, string(b))
}

func TestEnrichedRecord_MetricQuantity(t *testing.T) {
	base := EnrichedRecord{
		Quantity:          decimal.NewFromInt(10),
		QtyUnitOne:        decimal.NewFromInt(1),
		QtyPalletExpanded: decimal.NewFromInt(240),
	}

	tests := []struct {
		category Category
		want     int64
	}{
		{CategoryInbound, 1},
		{CategoryOutbound, 1},
		{CategoryConversion, 240},
		{CategoryTransfer, 0},
		{CategoryNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			r := base
			r.Category = tt.category
			assert.True(t, decimal.NewFromInt(tt.want).Equal(r.MetricQuantity()))
		})
	}
}

func TestDayUserItemMetrics_Score(t *testing.T) {
	m := DayUserItemMetrics{
		Inbound:    decimal.NewFromInt(1),
		Outbound:   decimal.NewFromInt(2),
		Conversion: decimal.RequireFromString("2.5"),
	}
	assert.Equal(t, "5.5", m.Score().String())
}

func TestFilterSelection_Matches(t *testing.T) {
	rec := EnrichedRecord{Day: MustParseDay("2025-01-02"), User: "jnovak", Item: "ABC-123"}

	tests := []struct {
		name   string
		filter FilterSelection
		want   bool
	}{
		{name: "empty filter", filter: FilterSelection{}, want: true},
		{name: "inclusive from", filter: FilterSelection{From: MustParseDay("2025-01-02")}, want: true},
		{name: "inclusive to", filter: FilterSelection{To: MustParseDay("2025-01-02")}, want: true},
		{name: "before range", filter: FilterSelection{From: MustParseDay("2025-01-03")}, want: false},
		{name: "after range", filter: FilterSelection{To: MustParseDay("2025-01-01")}, want: false},
		{name: "user selected", filter: FilterSelection{Users: []string{"x", "jnovak"}}, want: true},
		{name: "user not selected", filter: FilterSelection{Users: []string{"x"}}, want: false},
		{name: "item substring ignores case", filter: FilterSelection{ItemQuery: "bc-1"}, want: true},
		{name: "item query trimmed", filter: FilterSelection{ItemQuery: "  abc "}, want: true},
		{name: "item mismatch", filter: FilterSelection{ItemQuery: "xyz"}, want: false},
		{name: "blank item query", filter: FilterSelection{ItemQuery: "   "}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(rec))
		})
	}
}
