package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifenlabs/kude/internal/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		code     string
		symbol   string
		decimals int32
		longName string
	}{
		{"PYG", "Gs", 0, "GUARANI"},
		{"GS", "Gs", 0, "GUARANI"},
		{"USD", "$", 2, "DOLAR US"},
		{"EUR", "Gs", 0, "GUARANI"}, // unknown codes fall back to guaraní
		{"", "Gs", 0, "GUARANI"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p := ProfileFor(tt.code)
			assert.Equal(t, tt.symbol, p.Symbol)
			assert.Equal(t, tt.decimals, p.Decimals)
			assert.Equal(t, tt.longName, p.LongName)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		places int32
		want   string
	}{
		{"plain thousands", "1234567", 0, "1.234.567"},
		{"small", "950", 0, "950"},
		{"zero", "0", 0, "0"},
		{"two decimals", "1234.5", 2, "1.234,50"},
		{"rounding", "1234.567", 2, "1.234,57"},
		{"negative", "-1000000", 0, "-1.000.000"},
		{"drops extra precision", "10.999", 0, "11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(d(tt.value), tt.places, ".", ","))
		})
	}
}

func TestProfileFormat(t *testing.T) {
	gs := ProfileFor("PYG")
	usd := ProfileFor("USD")

	assert.Equal(t, "110.000", gs.Format(d("110000")))
	assert.Equal(t, "110.000,00", usd.Format(d("110000")))
	assert.Equal(t, "10.000,0000", gs.FormatWith(d("10000"), 4))
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		name   string
		item   model.LineItem
		exempt string
		iva5   string
		iva10  string
	}{
		{
			name: "taxed at 10",
			item: model.LineItem{
				PropIVA: "100", TaxRate: "10",
				GrossTotal: d("100000"), TaxableBase: d("90909"), TaxAmount: d("9091"),
			},
			exempt: "0", iva5: "0", iva10: "100000",
		},
		{
			name: "taxed at 5",
			item: model.LineItem{
				PropIVA: "100", TaxRate: "5",
				TaxableBase: d("95238"), TaxAmount: d("4762"),
			},
			exempt: "0", iva5: "100000", iva10: "0",
		},
		{
			name: "exempt by proportion marker",
			item: model.LineItem{
				PropIVA: "0", TaxRate: "10", GrossTotal: d("5000"), ExemptBase: d("1"),
			},
			exempt: "5000", iva5: "0", iva10: "0",
		},
		{
			name: "exempt by missing rate",
			item: model.LineItem{
				PropIVA: "100", GrossTotal: d("7500"),
			},
			exempt: "7500", iva5: "0", iva10: "0",
		},
		{
			name: "partial exemption keeps the declared base",
			item: model.LineItem{
				PropIVA: "50", TaxRate: "10",
				GrossTotal: d("100000"), ExemptBase: d("50000"),
				TaxableBase: d("45455"), TaxAmount: d("4545"),
			},
			exempt: "50000", iva5: "0", iva10: "50000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exempt, iva5, iva10 := Buckets(tt.item)
			assert.True(t, exempt.Equal(d(tt.exempt)), "exempt: got %s", exempt)
			assert.True(t, iva5.Equal(d(tt.iva5)), "iva5: got %s", iva5)
			assert.True(t, iva10.Equal(d(tt.iva10)), "iva10: got %s", iva10)
		})
	}
}

func TestRowsFormatting(t *testing.T) {
	p := ProfileFor("PYG")
	items := []model.LineItem{{
		GTIN:         "7840001000019",
		Unit:         "UNI",
		Description:  "Bolsa de cemento 50kg",
		InternalCode: "A001",
		Quantity:     d("10"),
		UnitPrice:    d("10000"),
		UnitDiscount: d("500"),
		GrossTotal:   d("95000"),
		TaxRate:      "10",
		PropIVA:      "100",
		TaxableBase:  d("86364"),
		TaxAmount:    d("8636"),
	}}

	rows := Rows(items, p, 3, 4)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "10,000", r.Cells[ColQuantity])
	assert.Equal(t, "10.000,0000", r.Cells[ColUnitPrice])
	// The discount column shows the row total: unit discount times quantity.
	assert.Equal(t, "5.000", r.Cells[ColDiscount])
	assert.Equal(t, "95.000", r.Cells[ColIVA10])
	assert.Equal(t, "0", r.Cells[ColExempt])
}

func TestRowsCreditNotePrecision(t *testing.T) {
	p := ProfileFor("PYG")
	items := []model.LineItem{{
		Quantity: d("3"), UnitPrice: d("25000"), PropIVA: "0", GrossTotal: d("75000"),
	}}

	rows := Rows(items, p, 0, p.Decimals)
	require.Len(t, rows, 1)
	assert.Equal(t, "3", rows[0].Cells[ColQuantity])
	assert.Equal(t, "25.000", rows[0].Cells[ColUnitPrice])
}

func TestRowsExpansion(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		extra    bool
		extraTxt string
	}{
		{"observation", "R|Entregar en depósito", true, "Entregar en depósito"},
		{"continuation", "D|Lote 2021-11", true, "Lote 2021-11"},
		{"plain text", "Producto de temporada", true, "Producto de temporada"},
		{"unknown marker", "X|ignorado", false, ""},
		{"empty", "", false, ""},
	}
	p := ProfileFor("PYG")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []model.LineItem{{Quantity: d("1"), Info: tt.info}}
			rows := Rows(items, p, 3, 4)
			if !tt.extra {
				require.Len(t, rows, 1)
				return
			}
			require.Len(t, rows, 2)
			assert.True(t, rows[1].Expansion)
			assert.Equal(t, tt.extraTxt, rows[1].Cells[ColDescription])
			// Expansion rows carry no amounts.
			assert.Equal(t, "", rows[1].Cells[ColExempt])
		})
	}
}

func TestFormatTotals(t *testing.T) {
	totals := model.Totals{
		Exempt:     d("10000"),
		Sub10:      d("100000"),
		IVA10:      d("9091"),
		TotalIVA:   d("9091"),
		GrandTotal: d("110000"),
	}
	got := FormatTotals(totals, ProfileFor("PYG"))

	assert.Equal(t, "10.000", got.Exempt)
	assert.Equal(t, "100.000", got.Sub10)
	assert.Equal(t, "0", got.Sub5)
	assert.Equal(t, "9.091", got.IVA10)
	assert.Equal(t, "110.000", got.GrandTotal)
}
