// Package layout draws the printable KuDE on an A4 page with gofpdf.
// All coordinates are millimeters from the top-left corner; text y
// positions are baselines. The page is a fixed form: a header block
// repeated on every page, the item table between two fixed rules, and a
// footer block anchored to wherever the table ends.
package layout

import "github.com/sifenlabs/kude/internal/money"

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginX    = 7.0

	contentWidth = pageWidth - 2*marginX

	// headerBoxY is the top of the column-header band; the merged
	// VALOR DE VENTA band splits at subHeaderY.
	headerBoxY = 51.0
	subHeaderY = 56.0

	// tableBottom reserves room for the footer block below the table.
	tableBottom = pageHeight - 60.0

	rowFontSize   = 5.0
	rowLineHeight = 2.2
	cellPadding   = 1.0
	// rowBaseline offsets the first text baseline inside a padded cell.
	rowBaseline = 1.8
)

type column struct {
	width float64
	align byte
}

// grid returns the table column layout. The description column absorbs
// whatever width the fixed columns leave.
func grid() [money.NumCols]column {
	desc := contentWidth - (15 + 10 + 10 + 10 + 18 + 15 + 15 + 15 + 15)
	return [money.NumCols]column{
		money.ColGTIN:        {15, 'L'},
		money.ColQuantity:    {10, 'R'},
		money.ColUnit:        {10, 'C'},
		money.ColDescription: {desc, 'L'},
		money.ColCode:        {10, 'C'},
		money.ColUnitPrice:   {18, 'R'},
		money.ColDiscount:    {15, 'R'},
		money.ColExempt:      {15, 'R'},
		money.ColIVA5:        {15, 'R'},
		money.ColIVA10:       {15, 'R'},
	}
}

func colX(g [money.NumCols]column, i int) float64 {
	x := marginX
	for c := 0; c < i; c++ {
		x += g[c].width
	}
	return x
}
