// Package extract maps the canonical rDE node into a flat document record.
// Every field is optional: a missing node yields an empty string or a zero
// amount, never an error.
package extract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sifenlabs/kude/internal/envelope"
	"github.com/sifenlabs/kude/internal/model"
)

// Document-type codes that use the credit-note layout. The debit note
// shares it.
const (
	typeCreditNote = "5"
	typeDebitNote  = "6"
)

// Extract builds the document record from a canonical node.
func Extract(c *envelope.Canonical) *model.Document {
	rde := c.RDE
	doc := &model.Document{}

	for _, m := range textMappings {
		v := envelope.Text(rde, m.path...)
		if m.transform != nil {
			v = m.transform(v)
		}
		m.assign(doc, v)
	}

	doc.CDC = envelope.Attr(rde, "Id", "DE")

	switch doc.Timbrado.TypeCode {
	case typeCreditNote, typeDebitNote:
		doc.Kind = model.KindCreditNote
	default:
		doc.Kind = model.KindInvoice
	}

	extractAdditionalInfo(rde, doc)
	extractItems(rde, doc)
	extractTotals(rde, doc)

	return doc
}

// extractAdditionalInfo decodes the pipe-delimited dInfAdic field:
// zone|seller|purchase order|credit term. When the sale is on credit the
// explicit gPagCred term replaces the positional one.
func extractAdditionalInfo(rde *envelope.Element, doc *model.Document) {
	parts := strings.Split(envelope.Text(rde, "gCamFuFD", "dInfAdic"), "|")
	doc.Extra.Zone = at(parts, 0)
	doc.Extra.Seller = at(parts, 1)
	doc.Extra.PurchaseOrder = at(parts, 2)

	doc.Payment.Term = at(parts, 3)
	if doc.Payment.CondCode == "2" {
		doc.Payment.Term = envelope.Text(rde, "DE", "gDtipDE", "gCamCond", "gPagCred", "dPlazoCre")
	}
}

func extractItems(rde *envelope.Element, doc *model.Document) {
	gDtipDE := envelope.Find(rde, "DE", "gDtipDE")
	for _, el := range envelope.Children(gDtipDE, "gCamItem") {
		doc.Items = append(doc.Items, model.LineItem{
			GTIN:         envelope.Text(el, "dGtin"),
			Unit:         envelope.Text(el, "dDesUniMed"),
			Description:  envelope.Text(el, "dDesProSer"),
			InternalCode: envelope.Text(el, "dCodInt"),
			Quantity:     amount(el, "dCantProSer"),
			UnitPrice:    amount(el, "gValorItem", "dPUniProSer"),
			UnitDiscount: amount(el, "gValorItem", "gValorRestaItem", "dDescItem"),
			GrossTotal:   amount(el, "gValorItem", "dTotBruOpeItem"),
			TaxRate:      envelope.Text(el, "gCamIVA", "dTasaIVA"),
			PropIVA:      envelope.Text(el, "gCamIVA", "dPropIVA"),
			ExemptBase:   amount(el, "gCamIVA", "dBasExe"),
			TaxableBase:  amount(el, "gCamIVA", "dBasGravIVA"),
			TaxAmount:    amount(el, "gCamIVA", "dLiqIVAItem"),
			Info:         envelope.Text(el, "dInfItem"),
		})
	}
}

func extractTotals(rde *envelope.Element, doc *model.Document) {
	tot := envelope.Find(rde, "DE", "gTotSub")
	doc.Totals = model.Totals{
		Exempt:     amount(tot, "dSubExe"),
		Sub5:       amount(tot, "dSub5"),
		Sub10:      amount(tot, "dSub10"),
		IVA5:       amount(tot, "dIVA5"),
		IVA10:      amount(tot, "dIVA10"),
		TotalIVA:   amount(tot, "dTotIVA"),
		GrandTotal: amount(tot, "dTotGralOpe"),
	}
}

// amount parses a decimal at path, zero when missing or unparseable.
func amount(el *envelope.Element, path ...string) decimal.Decimal {
	v := envelope.Text(el, path...)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func at(parts []string, i int) string {
	if i < len(parts) {
		return strings.TrimSpace(parts[i])
	}
	return ""
}

// Source date layouts accepted before reformatting. Unparseable input
// renders as an empty string.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asDateTime(v string) string {
	t, ok := parseDate(v)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006 15:04:05")
}

func asDate(v string) string {
	t, ok := parseDate(v)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}
