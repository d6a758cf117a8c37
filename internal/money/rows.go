package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sifenlabs/kude/internal/model"
)

// Table column indexes, matching the printed order.
const (
	ColGTIN = iota
	ColQuantity
	ColUnit
	ColDescription
	ColCode
	ColUnitPrice
	ColDiscount
	ColExempt
	ColIVA5
	ColIVA10
	NumCols
)

// Row is one printable table row: a line item or an info-expansion row.
type Row struct {
	Cells [NumCols]string
	// Expansion marks auxiliary rows spawned by a dInfItem line; they
	// carry only a description and no amounts.
	Expansion bool
}

// Buckets splits one item into its mutually exclusive IVA buckets.
// Exempt uses the item-level rule: the gross item total when the
// proportional indicator is "0" or there is no tax rate, the explicit
// exemption base otherwise. The 5% and 10% buckets carry taxable base
// plus liquidated tax, keyed on exact rate text.
func Buckets(it model.LineItem) (exempt, iva5, iva10 decimal.Decimal) {
	if it.PropIVA == "0" || it.TaxRate == "" {
		exempt = it.GrossTotal
	} else {
		exempt = it.ExemptBase
	}
	switch it.TaxRate {
	case "5":
		iva5 = it.TaxableBase.Add(it.TaxAmount)
	case "10":
		iva10 = it.TaxableBase.Add(it.TaxAmount)
	}
	return exempt, iva5, iva10
}

// Rows formats all line items for printing. Quantity and unit-price
// precision differ by document kind (invoices print quantities at 3
// decimals and prices at 4; credit notes use the currency's own);
// everything else follows the profile.
func Rows(items []model.LineItem, p Profile, quantityPlaces, pricePlaces int32) []Row {
	var rows []Row
	for _, it := range items {
		exempt, iva5, iva10 := Buckets(it)

		var r Row
		r.Cells[ColGTIN] = it.GTIN
		r.Cells[ColQuantity] = p.FormatWith(it.Quantity, quantityPlaces)
		r.Cells[ColUnit] = it.Unit
		r.Cells[ColDescription] = it.Description
		r.Cells[ColCode] = it.InternalCode
		r.Cells[ColUnitPrice] = p.FormatWith(it.UnitPrice, pricePlaces)
		r.Cells[ColDiscount] = p.Format(it.UnitDiscount.Mul(it.Quantity))
		r.Cells[ColExempt] = p.Format(exempt)
		r.Cells[ColIVA5] = p.Format(iva5)
		r.Cells[ColIVA10] = p.Format(iva10)
		rows = append(rows, r)

		if text, ok := expansionText(it.Info); ok {
			var extra Row
			extra.Cells[ColDescription] = text
			extra.Expansion = true
			rows = append(rows, extra)
		}
	}
	return rows
}

// expansionText decodes the auxiliary dInfItem line. R (observation) and
// D (description continuation) carry their text after the pipe; a line
// with no type marker is used whole.
func expansionText(info string) (string, bool) {
	if info == "" {
		return "", false
	}
	parts := strings.SplitN(info, "|", 2)
	if len(parts) == 1 {
		return info, true
	}
	switch parts[0] {
	case "R", "D":
		return parts[1], true
	}
	return "", false
}

// Totals reformats the document-level subtotal block. Values come from
// the source document as-is; no reconciliation against item sums.
type Totals struct {
	Exempt     string
	Sub5       string
	Sub10      string
	IVA5       string
	IVA10      string
	TotalIVA   string
	GrandTotal string
}

// FormatTotals renders the gTotSub block under the same profile as the
// item cells.
func FormatTotals(t model.Totals, p Profile) Totals {
	return Totals{
		Exempt:     p.Format(t.Exempt),
		Sub5:       p.Format(t.Sub5),
		Sub10:      p.Format(t.Sub10),
		IVA5:       p.Format(t.IVA5),
		IVA10:      p.Format(t.IVA10),
		TotalIVA:   p.Format(t.TotalIVA),
		GrandTotal: p.Format(t.GrandTotal),
	}
}
