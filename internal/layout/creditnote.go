package layout

import (
	"strings"

	"github.com/sifenlabs/kude/internal/money"
	"github.com/sifenlabs/kude/internal/words"
)

func drawCreditNoteHeader(s *sheet, in Input, page, total int) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetLineWidth(0.2)

	doc := in.Doc
	s.drawIssuerBlock(in, doc.Issuer.District+" - "+doc.Issuer.Department)

	// Timbrado frame, taller than the invoice one since there is no
	// sale-condition box underneath.
	tb := doc.Timbrado
	s.pdf.RoundedRect(143, 7, 60, 30, 1, "1234", "S")
	s.font("", 7)
	s.text(172, 12, "TIMBRADO Nº "+tb.Number, 'C')
	s.text(172, 16, "FECHA INICIO VIGENCIA "+tb.ValidFrom, 'C')
	s.text(172, 20, "RUC: "+doc.Issuer.RUC+"-"+doc.Issuer.RUCDV, 'C')
	s.font("", 12)
	s.text(172, 28, tb.TypeDesc, 'C')
	s.text(172, 34, tb.DocNumber(), 'C')

	// Receiver frame with the associated-document reference.
	s.pdf.RoundedRect(marginX, 38, contentWidth, 15, 1, "1234", "S")
	rc := doc.Receiver
	s.font("", 5)
	s.text(8, 41, "CLIENTE: ", 'L')
	s.text(20, 41, rc.Name, 'L')
	s.text(8, 44, "DIRECCION: ", 'L')
	s.text(20, 44, rc.Address, 'L')
	s.text(8, 47, "RUC/C.I.N: ", 'L')
	s.text(20, 47, rc.DisplayID(), 'L')
	s.text(8, 50, "MOTIVO: ", 'L')
	s.text(20, 50, strings.ToUpper(doc.Associated.Motive), 'L')

	s.text(85, 41, "FANTASIA: ", 'L')
	s.text(105, 41, rc.FantasyLine(), 'L')
	s.text(85, 44, "CIUDAD: ", 'L')
	s.text(115, 44, rc.City, 'L')
	s.text(85, 47, "TIPO DOCUMENTO ASOCIADO: ", 'L')
	s.text(115, 47, strings.ToUpper(doc.Associated.TypeDesc), 'L')
	s.text(85, 50, "DOCUMENTO ASOCIADO: ", 'L')
	s.text(115, 50, doc.Associated.DisplayRef(), 'L')

	s.text(150, 41, "TELEFONO: ", 'L')
	s.text(170, 41, rc.Phone, 'L')
	s.text(150, 44, "FECHA: ", 'L')
	s.text(170, 44, doc.IssuedAt, 'L')

	s.drawPageLabel(page, total)
	s.drawTableHeader("DESCONTO")
}

func drawCreditNoteFooter(s *sheet, in Input, f float64) {
	t := money.FormatTotals(in.Doc.Totals, in.Profile)

	s.font("", 5)
	s.pdf.Rect(marginX, f, contentWidth, 5, "S")
	s.text(8, f+3, "SUBTOTAL:", 'L')
	s.pdf.Rect(152, f, 17, 5, "S")
	s.text(168, f+3, t.Exempt, 'R')
	s.pdf.Rect(169, f, 17, 5, "S")
	s.text(185, f+3, t.Sub5, 'R')
	s.pdf.Rect(186, f, 17, 5, "S")
	s.text(202, f+3, t.Sub10, 'R')

	s.text(8, f+8, "LIQUIDACION DEL IVA:", 'L')
	s.text(40, f+8, "5 %: ", 'L')
	s.text(45, f+8, t.IVA5, 'L')
	s.text(70, f+8, "10 %: ", 'L')
	s.text(77, f+8, t.IVA10, 'L')
	s.text(100, f+8, "TOTAL: ", 'L')
	s.text(108, f+8, t.TotalIVA, 'L')

	// The rounded words strip overlaps the IVA box; a thin white band
	// hides the seam between the two.
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.RoundedRect(marginX, f+10, contentWidth, 6, 1, "1234", "F")
	s.pdf.RoundedRect(marginX, f+10, contentWidth, 6, 1, "1234", "S")
	s.pdf.Rect(marginX+0.1, f+9.6, contentWidth-0.2, 1, "F")
	s.pdf.Rect(marginX, f+5, contentWidth, 5.7, "S")

	s.text(8, f+14, "TOTAL A PAGAR (en letras):", 'L')
	s.text(33, f+14, words.LegalLine(in.Profile.LongName, in.Doc.Totals.GrandTotal, in.Profile.Decimals), 'L')
	s.text(202, f+14, t.GrandTotal, 'R')

	s.drawVerification(in, f+17, f+21, f+24)
}
