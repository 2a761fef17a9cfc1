package enricher

import (
	"errors"
	"math/rand"
	"testing"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultHeader = []string{
	"Typ práce", "ID pracovní třídy", "Množství práce", "Jednotka",
	"Uzavřená práce", "ID uživatele", "Č. položky", "Místo",
}

func newTestEnricher(t *testing.T) (*Enricher, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	return NewEnricherFromConfig(config.Defaults(), logger), logger
}

func TestClassify(t *testing.T) {
	c := NewClassifier(config.DefaultVocabulary())

	tests := []struct {
		workType  string
		workClass string
		want      models.Category
	}{
		{"VLOZIT", "NAKUP", models.CategoryInbound},
		{"VYDAT", "PRODEJ", models.CategoryOutbound},
		{"VYDAT", "", models.CategoryOutbound},
		{"VLOZIT", "VYROBA", models.CategoryConversion},
		{"VLOZIT", "PO_POZN", models.CategoryConversion},
		{"VLOZIT", "", models.CategoryTransfer},
		{"VYDAT", "NAKUP", models.CategoryNone},
		{"VLOZIT", "PRODEJ", models.CategoryNone},
		{"PRESUN", "", models.CategoryNone},
		{"", "", models.CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.workType+"/"+tt.workClass, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.workType, tt.workClass))
		})
	}
}

// matching returns every category whose predicate holds.
func matching(c Classifier, workType, workClass string) []models.Category {
	var out []models.Category
	if c.isInbound(workType, workClass) {
		out = append(out, models.CategoryInbound)
	}
	if c.isOutbound(workType, workClass) {
		out = append(out, models.CategoryOutbound)
	}
	if c.isConversion(workType, workClass) {
		out = append(out, models.CategoryConversion)
	}
	if c.isTransfer(workType, workClass) {
		out = append(out, models.CategoryTransfer)
	}
	return out
}

func TestClassify_MutuallyExclusive(t *testing.T) {
	vocab := config.DefaultVocabulary()
	c := NewClassifier(vocab)

	workTypes := []string{vocab.Insert, vocab.Withdraw, "", "OTHER"}
	classes := append([]string{vocab.Purchase, vocab.Sale, "", "OTHER"}, vocab.Conversion...)

	for _, wt := range workTypes {
		for _, cls := range classes {
			matched := matching(c, wt, cls)
			assert.LessOrEqual(t, len(matched), 1, "work type %q class %q matched %v", wt, cls, matched)
			if len(matched) == 1 {
				assert.Equal(t, matched[0], c.Classify(wt, cls))
			} else {
				assert.Equal(t, models.CategoryNone, c.Classify(wt, cls))
			}
		}
	}

	rng := rand.New(rand.NewSource(42))
	alphabet := []rune{'A', 'B', 'V', 'L', 'O', 'Z', 'I', 'T', '_'}
	randomCode := func() string {
		n := rng.Intn(4)
		out := make([]rune, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(out)
	}
	pick := func(known []string) string {
		if rng.Intn(2) == 0 {
			return known[rng.Intn(len(known))]
		}
		return randomCode()
	}

	for i := 0; i < 5000; i++ {
		wt, cls := pick(workTypes), pick(classes)
		assert.LessOrEqual(t, len(matching(c, wt, cls)), 1, "work type %q class %q", wt, cls)
	}
}

func TestDeriveQuantities(t *testing.T) {
	tests := []struct {
		name          string
		qty           string
		unit          string
		wantUnitOne   string
		wantPalletExp string
	}{
		{"piece is always one", "7", "ST", "1", "7"},
		{"piece with zero quantity", "0", "ST", "1", "0"},
		{"pallet expands", "10", "PAL", "10", "240"},
		{"fractional pallet", "0.5", "PAL", "0.5", "12"},
		{"other unit keeps quantity", "3.25", "KG", "3.25", "3.25"},
		{"empty unit keeps quantity", "4", "", "4", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			one, pal := DeriveQuantities(decimal.RequireFromString(tt.qty), tt.unit)
			assert.True(t, decimal.RequireFromString(tt.wantUnitOne).Equal(one), "qty_unit_one = %s", one)
			assert.True(t, decimal.RequireFromString(tt.wantPalletExp).Equal(pal), "qty_pallet_expanded = %s", pal)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	q, ok := ParseQuantity("12.5")
	assert.True(t, ok)
	assert.Equal(t, "12.5", q.String())

	for _, raw := range []string{"", "abc", "1,5", "--1"} {
		q, ok := ParseQuantity(raw)
		assert.False(t, ok, raw)
		assert.True(t, q.IsZero(), raw)
	}
}

func TestBucketLocation(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"F-9-1-1", models.AddressBucket},
		{"Č-12-3-40", models.AddressBucket},
		{"DOCK A", "DOCK A"},
		{"f-9-1-1", "f-9-1-1"},
		{"F-9-1", "F-9-1"},
		{"FF-9-1-1", "FF-9-1-1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketLocation(tt.location))
		})
	}
}

func TestCheckColumns(t *testing.T) {
	e, _ := newTestEnricher(t)

	require.NoError(t, e.CheckColumns(defaultHeader))
	require.NoError(t, e.CheckColumns(append([]string{"Extra"}, defaultHeader...)))

	err := e.CheckColumns([]string{"Typ práce", "Jednotka", "Místo", " ID uživatele "})
	require.Error(t, err)

	var missing *parsererror.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"ID pracovní třídy", "Množství práce", "Uzavřená práce", "Č. položky"}, missing.Missing)
}

func TestEnrich_MissingColumnsLogged(t *testing.T) {
	e, logger := newTestEnricher(t)

	_, err := e.Enrich(&models.Sheet{Source: "bad.csv", Header: []string{"A", "B"}})
	var missing *parsererror.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Missing, len(models.RequiredColumns))
	assert.True(t, logger.HasEntry("ERROR", "Cannot enrich input"))
}

func TestEnrich_EndToEndRows(t *testing.T) {
	e, logger := newTestEnricher(t)

	sheet := &models.Sheet{
		Source: "lines.csv",
		// Columns deliberately out of the canonical order.
		Header: []string{
			"Místo", "Č. položky", "ID uživatele", "Uzavřená práce",
			"Jednotka", "Množství práce", "ID pracovní třídy", "Typ práce", "Poznámka",
		},
		Rows: [][]string{
			{"F-9-1-1", " A100 ", " jnovak ", "1", "st", "5", "Nákup", " Vložit ", "x"},
			{"DOCK A", "B200", "jnovak", "1.75", "PAL", "10", "", "Vydat", ""},
			{"DOCK B", "C300", "pdvorak", "45658", "Pal", "2", "výroba", "VLOZIT"},
			{"G-1-2-3", "D400", "pdvorak", "45658", "ST", "abc", "", "vložit"},
			{"DOCK A", "E500", "pdvorak", "not a date", "ST", "1", "NAKUP", "VLOZIT"},
			{"DOCK A", "E500", "pdvorak", "", "ST", "1", "NAKUP", "VLOZIT"},
		},
	}

	out, err := e.Enrich(sheet)
	require.NoError(t, err)

	assert.Equal(t, 6, out.RawRows)
	assert.Equal(t, 2, out.DroppedDateRows)
	assert.Equal(t, 1, out.ZeroedQuantityRows)
	require.Len(t, out.Records, 4)

	inbound := out.Records[0]
	assert.Equal(t, models.CategoryInbound, inbound.Category)
	assert.Equal(t, "VLOZIT", inbound.WorkTypeNorm)
	assert.Equal(t, "NAKUP", inbound.WorkClassNorm)
	assert.Equal(t, "ST", inbound.UnitNorm)
	assert.Equal(t, "jnovak", inbound.User)
	assert.Equal(t, "A100", inbound.Item)
	assert.Equal(t, "1899-12-31", inbound.Day.String())
	assert.Equal(t, models.AddressBucket, inbound.LocationBucket)
	assert.True(t, decimal.NewFromInt(1).Equal(inbound.MetricQuantity()))

	outbound := out.Records[1]
	assert.Equal(t, models.CategoryOutbound, outbound.Category)
	assert.Equal(t, "1899-12-31", outbound.Day.String())
	assert.True(t, decimal.NewFromInt(10).Equal(outbound.MetricQuantity()), "outbound uses qty_unit_one")
	assert.True(t, decimal.NewFromInt(240).Equal(outbound.QtyPalletExpanded))
	assert.Equal(t, "DOCK A", outbound.LocationBucket)

	conversion := out.Records[2]
	assert.Equal(t, models.CategoryConversion, conversion.Category)
	assert.Equal(t, "2025-01-01", conversion.Day.String())
	assert.True(t, decimal.NewFromInt(48).Equal(conversion.MetricQuantity()))

	transfer := out.Records[3]
	assert.Equal(t, models.CategoryTransfer, transfer.Category)
	assert.True(t, transfer.Quantity.IsZero())
	assert.True(t, transfer.MetricQuantity().IsZero())
	assert.Equal(t, models.AddressBucket, transfer.LocationBucket)

	entries := logger.EntriesByLevel("DEBUG")
	require.NotEmpty(t, entries)
	dropped, ok := entries[len(entries)-1].FieldValue(logging.FieldDropped)
	require.True(t, ok)
	assert.Equal(t, 2, dropped)
}

func TestEnrich_CustomHeaders(t *testing.T) {
	headers := map[string]string{
		models.ColWorkType:   "Work type",
		models.ColWorkClass:  "Class",
		models.ColQuantity:   "Qty",
		models.ColUnit:       "Unit",
		models.ColClosedDate: "Closed",
		models.ColUser:       "User",
		models.ColItem:       "Item",
		models.ColLocation:   "Location",
	}
	vocab := config.Vocabulary{
		Insert: "INSERT", Withdraw: "WITHDRAW",
		Purchase: "PURCHASE", Sale: "SALE",
		Conversion: []string{"PRODUCTION", "PO_NOTE"},
	}
	e := NewEnricher(headers, vocab, logging.NewMockLogger())

	sheet := &models.Sheet{
		Header: []string{"Work type", "Class", "Qty", "Unit", "Closed", "User", "Item", "Location", "user"},
		Rows: [][]string{
			{"insert", "purchase", "5", "ST", "2", "u1", "i1", "DOCK"},
			{"insert", "production", "1", "PAL", "2", "u1", "i1", "DOCK", "ignored"},
		},
	}

	out, err := e.Enrich(sheet)
	require.NoError(t, err)
	require.Len(t, out.Records, 2)
	assert.Equal(t, models.CategoryInbound, out.Records[0].Category)
	assert.Equal(t, models.CategoryConversion, out.Records[1].Category)
	assert.Equal(t, "u1", out.Records[1].User)
}

func TestEnrich_HeaderOnly(t *testing.T) {
	e, _ := newTestEnricher(t)

	out, err := e.Enrich(&models.Sheet{Header: defaultHeader})
	require.NoError(t, err)
	assert.Empty(t, out.Records)
	assert.Zero(t, out.RawRows)
}

func TestEnrich_DropsRowsAtZeroTimeSerial(t *testing.T) {
	e, _ := newTestEnricher(t)

	sheet := &models.Sheet{
		Source: "lines.csv",
		Header: defaultHeader,
		Rows: [][]string{
			{"VLOZIT", "NAKUP", "5", "KG", "-693593", "u1", "i1", "DOCK"},
			{"VLOZIT", "NAKUP", "5", "KG", "-693592.25", "u1", "i1", "DOCK"},
			{"VLOZIT", "NAKUP", "3", "ST", "-693592", "u1", "i1", "DOCK"},
			{"VLOZIT", "NAKUP", "2", "ST", "45658", "u1", "i1", "DOCK"},
		},
	}

	out, err := e.Enrich(sheet)
	require.NoError(t, err)

	assert.Equal(t, 2, out.DroppedDateRows)
	require.Len(t, out.Records, 2)
	assert.Equal(t, "0001-01-02", out.Records[0].Day.String())
	assert.Equal(t, "2025-01-01", out.Records[1].Day.String())
	for _, r := range out.Records {
		assert.False(t, r.Day.IsZero())
	}

	_, ok, _ := e.EnrichRecord(models.RawRecord{WorkType: "VLOZIT", WorkClass: "NAKUP", Quantity: "1", ClosedDate: "-693593"})
	assert.False(t, ok)
}
