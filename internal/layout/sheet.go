package layout

import (
	"github.com/jung-kurt/gofpdf"
)

// sheet bundles the PDF handle with the cp1252 translator every drawn
// string must pass through.
type sheet struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

var pngOpts = gofpdf.ImageOptions{ImageType: "PNG"}

func (s *sheet) font(style string, size float64) {
	s.pdf.SetFont("Helvetica", style, size)
}

// text draws str anchored at x according to align: 'L' left edge, 'C'
// centered, 'R' right edge.
func (s *sheet) text(x, y float64, str string, align byte) {
	t := s.tr(str)
	switch align {
	case 'C':
		x -= s.pdf.GetStringWidth(t) / 2
	case 'R':
		x -= s.pdf.GetStringWidth(t)
	}
	s.pdf.Text(x, y, t)
}

// cellText draws an already-translated line inside a table column.
func (s *sheet) cellText(x, baseline float64, col column, translated string) {
	switch col.align {
	case 'R':
		s.pdf.Text(x+col.width-cellPadding-s.pdf.GetStringWidth(translated), baseline, translated)
	case 'C':
		s.pdf.Text(x+col.width/2-s.pdf.GetStringWidth(translated)/2, baseline, translated)
	default:
		s.pdf.Text(x+cellPadding, baseline, translated)
	}
}
