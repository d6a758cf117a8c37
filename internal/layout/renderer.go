package layout

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/sifenlabs/kude/internal/model"
	"github.com/sifenlabs/kude/internal/money"
	"github.com/sifenlabs/kude/internal/qr"
)

// Input carries everything the renderer needs. Logo and QRPNG are
// optional: a nil logo leaves the frame empty, a nil QR leaves the
// verification box without an image.
type Input struct {
	Doc         *model.Document
	Profile     money.Profile
	CompanyID   string
	CompanyName string
	Logo        []byte
	QRPNG       []byte
}

// Render produces the finished PDF. It measures and paginates the item
// table first, so every page header carries the true page total, then
// draws pages, closing with the footer anchored at the table's end.
func Render(in Input) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	s := &sheet{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if in.Logo != nil {
		pdf.RegisterImageOptionsReader("logo", pngOpts, bytes.NewReader(in.Logo))
	}
	if in.QRPNG != nil {
		pdf.RegisterImageOptionsReader("qr", pngOpts, bytes.NewReader(in.QRPNG))
	}

	credit := in.Doc.Kind == model.KindCreditNote
	top := 61.0
	quantityPlaces, pricePlaces := int32(3), int32(4)
	if credit {
		top = 62.0
		quantityPlaces, pricePlaces = 0, in.Profile.Decimals
	}

	rows := money.Rows(in.Doc.Items, in.Profile, quantityPlaces, pricePlaces)
	plan := planTable(s, rows, top)
	total := len(plan.pages)

	for i, pg := range plan.pages {
		pdf.AddPage()
		if credit {
			drawCreditNoteHeader(s, in, i+1, total)
		} else {
			drawInvoiceHeader(s, in, i+1, total)
		}
		s.drawTableRows(plan, pg, rows)
		s.drawColumnBorders(pg.endY)
	}

	f := plan.pages[total-1].endY
	if credit {
		drawCreditNoteFooter(s, in, f)
	} else {
		drawInvoiceFooter(s, in, f)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawVerification draws the QR box with the grouped CDC and the fixed
// consultation notices.
func (s *sheet) drawVerification(in Input, boxY, noticeY, urlY float64) {
	s.pdf.RoundedRect(marginX, boxY, contentWidth, 27, 1, "1234", "S")
	if in.QRPNG != nil {
		s.pdf.ImageOptions("qr", 7.5, boxY+1, 0, 25, false, pngOpts, 0, "")
	}
	s.font("", 6)
	s.text(33, noticeY, "Consulte a validade desta Fatura Eletrônica com o número de CDC impresso abaixo:", 'L')
	s.text(33, urlY, "https://ekuatia.set.gov.py/consultas/", 'L')
	s.font("B", 7)
	s.text(33, boxY+12, "CDC: "+qr.FormatCDC(in.Doc.CDC), 'L')
	s.font("", 5)
	s.text(33, boxY+18, "ESTE DOCUMENTO É UMA REPRESENTAÇÃO GRÁFICA DE UM DOCUMENTO ELETRÔNICO (XML)", 'L')
	s.text(33, boxY+21, "Informação de Interesse do faturador eletrônico emissor", 'L')
	s.text(33, boxY+24, "Se o seu documento eletrônico apresentar algum erro, poderá solicitar a modificação dentro das 72 horas seguintes da emissão deste comprovante.", 'L')
}
