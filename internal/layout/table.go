package layout

import "github.com/sifenlabs/kude/internal/money"

// tablePage is one page's slice of the row list; last is exclusive.
// endY is where the table stops on that page, which anchors the footer
// on the final page.
type tablePage struct {
	first, last int
	endY        float64
}

// tablePlan is the measured pagination of the whole item table, computed
// before anything is drawn so every page knows the true page total.
type tablePlan struct {
	top     float64
	heights []float64
	pages   []tablePage
}

// planTable wraps every cell at its column width and splits the rows
// into pages. A row taller than the remaining space moves whole to the
// next page; rows are never split.
func planTable(s *sheet, rows []money.Row, top float64) tablePlan {
	g := grid()
	s.font("", rowFontSize)

	heights := make([]float64, len(rows))
	for i, r := range rows {
		maxLines := 1
		for c := 0; c < money.NumCols; c++ {
			cell := r.Cells[c]
			if cell == "" {
				continue
			}
			n := len(s.pdf.SplitLines([]byte(s.tr(cell)), g[c].width-2*cellPadding))
			if n > maxLines {
				maxLines = n
			}
		}
		heights[i] = float64(maxLines)*rowLineHeight + 2*cellPadding
	}

	plan := tablePlan{top: top, heights: heights}
	y := top
	first := 0
	for i := range rows {
		if y+heights[i] > tableBottom && i > first {
			plan.pages = append(plan.pages, tablePage{first: first, last: i, endY: y})
			first = i
			y = top
		}
		y += heights[i]
	}
	plan.pages = append(plan.pages, tablePage{first: first, last: len(rows), endY: y})
	return plan
}

func (s *sheet) drawTableRows(plan tablePlan, pg tablePage, rows []money.Row) {
	g := grid()
	s.font("", rowFontSize)
	y := plan.top
	for i := pg.first; i < pg.last; i++ {
		x := marginX
		for c := 0; c < money.NumCols; c++ {
			if cell := rows[i].Cells[c]; cell != "" {
				lines := s.pdf.SplitLines([]byte(s.tr(cell)), g[c].width-2*cellPadding)
				for k, ln := range lines {
					s.cellText(x, y+cellPadding+rowBaseline+float64(k)*rowLineHeight, g[c], string(ln))
				}
			}
			x += g[c].width
		}
		y += plan.heights[i]
	}
}

// drawColumnBorders strokes the vertical column boxes from the header
// band down to the table's end on this page. The three sale-value
// columns start lower, under the merged VALOR DE VENTA band.
func (s *sheet) drawColumnBorders(endY float64) {
	g := grid()
	x := marginX
	for c := 0; c < money.NumCols; c++ {
		top := headerBoxY
		if c >= money.ColExempt {
			top = subHeaderY
		}
		s.pdf.RoundedRect(x, top, g[c].width, endY-top, 0, "1234", "S")
		x += g[c].width
	}
}

// drawTableHeader draws the two-level column header band. The discount
// label is the one texture difference between the two document kinds.
func (s *sheet) drawTableHeader(discountLabel string) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.RoundedRect(6, headerBoxY, pageWidth-12, 10, 0, "1234", "F")

	g := grid()
	s.font("", rowFontSize)
	const labelY = 57.0
	const subLabelY = 59.0

	x := marginX
	simple := [money.NumCols]string{
		money.ColGTIN:        "COD. BARRAS",
		money.ColQuantity:    "CANT.",
		money.ColUnit:        "UNIDAD",
		money.ColDescription: "DESCRIPCION DEL PRODUCTO",
		money.ColCode:        "CODIGO",
		money.ColDiscount:    discountLabel,
	}
	for c := money.ColGTIN; c <= money.ColDiscount; c++ {
		s.pdf.RoundedRect(x, headerBoxY, g[c].width, 10, 0, "1234", "S")
		if c == money.ColUnitPrice {
			s.text(x+g[c].width/2, labelY-1, "PRECIO", 'C')
			s.text(x+g[c].width/2, labelY+2, "UNITARIO", 'C')
		} else {
			s.text(x+g[c].width/2, labelY, simple[c], 'C')
		}
		x += g[c].width
	}

	saleWidth := g[money.ColExempt].width + g[money.ColIVA5].width + g[money.ColIVA10].width
	s.pdf.RoundedRect(x, headerBoxY, saleWidth, 10, 0, "1234", "S")
	s.text(x+saleWidth/2, 54, "VALOR DE VENTA", 'C')

	for c, label := range map[int]string{
		money.ColExempt: "EXENTA",
		money.ColIVA5:   "5%",
		money.ColIVA10:  "10%",
	} {
		cx := colX(g, c)
		s.pdf.RoundedRect(cx, subHeaderY, g[c].width, 5, 0, "1234", "S")
		s.text(cx+g[c].width/2, subLabelY, label, 'C')
	}
}
