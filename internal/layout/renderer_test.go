package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifenlabs/kude/internal/model"
	"github.com/sifenlabs/kude/internal/money"
	"github.com/sifenlabs/kude/internal/qr"
)

func sampleInvoice(items int) *model.Document {
	doc := &model.Document{
		Kind:     model.KindInvoice,
		Currency: "PYG",
		CDC:      "01800695631001001000000612021112917595714694",
		IssuedAt: "29/11/2021 17:59:57",
		Issuer: model.Issuer{
			Name:         "ACME S.A.",
			ActivityDesc: "Comercio al por mayor",
			Address:      "Avda. Mcal. López 1234",
			Phone:        "021555000",
			Department:   "CAPITAL",
			City:         "ASUNCION",
			District:     "ASUNCION (DISTRITO)",
			RUC:          "80069563",
			RUCDV:        "1",
		},
		Timbrado: model.Timbrado{
			Number:    "12558946",
			ValidFrom: "13/08/2021",
			TypeCode:  "1",
			TypeDesc:  "Factura electrónica",
			Est:       "001",
			PunExp:    "001",
			NumDoc:    "0000061",
		},
		Receiver: model.Receiver{
			Nature:  "1",
			Name:    "CLIENTE EJEMPLO S.R.L.",
			Address: "Calle Palma 456",
			RUC:     "4444401",
			RUCDV:   "7",
			Phone:   "0981123456",
			City:    "LUQUE",
		},
		Payment: model.Payment{CondCode: "1"},
		Totals: model.Totals{
			Sub10:      decimal.NewFromInt(110000),
			IVA10:      decimal.NewFromInt(10000),
			TotalIVA:   decimal.NewFromInt(10000),
			GrandTotal: decimal.NewFromInt(110000),
		},
	}
	for i := 0; i < items; i++ {
		doc.Items = append(doc.Items, model.LineItem{
			Unit:         "UNI",
			Description:  "Bolsa de cemento 50kg",
			InternalCode: "A001",
			Quantity:     decimal.NewFromInt(10),
			UnitPrice:    decimal.NewFromInt(1000),
			GrossTotal:   decimal.NewFromInt(10000),
			TaxRate:      "10",
			PropIVA:      "100",
			TaxableBase:  decimal.NewFromInt(9091),
			TaxAmount:    decimal.NewFromInt(909),
		})
	}
	return doc
}

func renderInput(doc *model.Document) Input {
	qrPNG, _ := qr.Encode("https://ekuatia.set.gov.py/consultas/qr?nVersion=150")
	return Input{
		Doc:         doc,
		Profile:     money.ProfileFor(doc.Currency),
		CompanyID:   "6",
		CompanyName: "ACME S.A.",
		QRPNG:       qrPNG,
	}
}

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(pdf), nil)
	require.NoError(t, err)
	return n
}

func TestRenderInvoiceSinglePage(t *testing.T) {
	pdf, err := Render(renderInput(sampleInvoice(2)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(pdf[:5]), "%PDF-"))
	require.NoError(t, api.Validate(bytes.NewReader(pdf), nil))
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestRenderInvoicePaginates(t *testing.T) {
	pdf, err := Render(renderInput(sampleInvoice(100)))
	require.NoError(t, err)

	assert.Greater(t, pageCount(t, pdf), 1)
}

func TestRenderCreditNote(t *testing.T) {
	doc := sampleInvoice(3)
	doc.Kind = model.KindCreditNote
	doc.Timbrado.TypeCode = "5"
	doc.Timbrado.TypeDesc = "Nota de crédito electrónica"
	doc.Associated = model.AssociatedDoc{
		TypeCode: "1",
		TypeDesc: "Electrónico",
		CDC:      "01800695631001001000000612021112917595714694",
		Motive:   "Devolución",
	}

	pdf, err := Render(renderInput(doc))
	require.NoError(t, err)
	require.NoError(t, api.Validate(bytes.NewReader(pdf), nil))
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestRenderWithoutOptionalAssets(t *testing.T) {
	in := renderInput(sampleInvoice(1))
	in.QRPNG = nil
	in.Logo = nil

	pdf, err := Render(in)
	require.NoError(t, err)
	require.NoError(t, api.Validate(bytes.NewReader(pdf), nil))
}

func TestRenderEmptyItemTable(t *testing.T) {
	pdf, err := Render(renderInput(sampleInvoice(0)))
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func newMeasureSheet() *sheet {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return &sheet{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func TestPlanTableRowsNeverSplit(t *testing.T) {
	in := renderInput(sampleInvoice(0))
	s := newMeasureSheet()

	rows := money.Rows(sampleInvoice(90).Items, in.Profile, 3, 4)
	plan := planTable(s, rows, 61)

	require.Greater(t, len(plan.pages), 1)
	covered := 0
	for _, pg := range plan.pages {
		assert.Greater(t, pg.last, pg.first)
		assert.LessOrEqual(t, pg.endY, tableBottom)
		covered += pg.last - pg.first
	}
	assert.Equal(t, len(rows), covered)
}
