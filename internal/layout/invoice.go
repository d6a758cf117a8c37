package layout

import (
	"fmt"
	"strings"

	"github.com/sifenlabs/kude/internal/money"
	"github.com/sifenlabs/kude/internal/words"
)

const informconfText = "POR LA FALTA DE PAGO DE LA PRESENTE FACTURA Y/O DE OUTRA DEUDA PENDENTE ORIGINADA, EM QUALQUER CONCEPTO, AUTORIZO SUFICIENTEMENTE A LA FIRMA %s UMA VEZ VENCIDO EL PLAZO, A INCLUIR, LAS OPERACOES PENDENTES EM MI NOMBRE Y/O RAZON SOCIAL AL QUE REPRESENTO, EN LA BASE DE DATOS DE INFORMCONF S.A PARA CONOCIMENTO DE TERCEROS INTERESSADOS DE LA CONFORMIDADE A LA LEY 1682"

// drawIssuerBlock fills the top-left frame: logo, bold issuer name and
// the address lines. Companies with a registered branch print a
// Matriz/Suc pair instead of a single address.
func (s *sheet) drawIssuerBlock(in Input, locality string) {
	s.pdf.RoundedRect(marginX, 7, pageWidth-75, 30, 1, "1234", "S")

	cp := profileForCompany(in.CompanyID)
	if in.Logo != nil {
		s.pdf.ImageOptions("logo", cp.logoX, cp.logoY, cp.logoW, 0, false, pngOpts, 0, "")
	}

	em := in.Doc.Issuer
	s.font("B", 12)
	s.text(73, 12, strings.ToUpper(em.Name), 'C')
	s.font("B", 6)
	s.text(73, 18, em.ActivityDesc, 'C')
	s.font("", 6)
	if cp.branch != "" {
		s.text(73, 24, "Matriz: "+strings.ToUpper(em.Address), 'C')
		s.text(73, 27, locality, 'C')
		s.text(73, 30, "Suc: "+cp.branch, 'C')
		s.text(73, 33, locality, 'C')
		s.text(73, 36, "Teléfono: "+em.Phone, 'C')
	} else {
		s.text(73, 24, strings.ToUpper(em.Address), 'C')
		s.text(73, 27, locality, 'C')
		s.text(73, 30, "Teléfono: "+em.Phone, 'C')
	}
}

func (s *sheet) drawPageLabel(page, total int) {
	s.font("", 5)
	s.pdf.SetTextColor(40, 40, 40)
	s.text(pageWidth-marginX, 50, fmt.Sprintf("Página %d de %d", page, total), 'R')
	s.pdf.SetTextColor(0, 0, 0)
}

func drawInvoiceHeader(s *sheet, in Input, page, total int) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetLineWidth(0.2)

	doc := in.Doc
	s.drawIssuerBlock(in, doc.Issuer.City+" - "+doc.Issuer.Department)

	// Timbrado frame.
	tb := doc.Timbrado
	s.pdf.RoundedRect(143, 7, 60, 20, 1, "1234", "S")
	s.font("", 5)
	s.text(172, 10, "TIMBRADO Nº "+tb.Number, 'C')
	s.font("", 4)
	s.text(172, 12, "FECHA INICIO VIGENCIA "+tb.ValidFrom, 'C')
	s.font("", 7)
	s.text(172, 16, "RUC: "+doc.Issuer.RUC+"-"+doc.Issuer.RUCDV, 'C')
	s.font("", 10)
	s.text(172, 21, tb.TypeDesc, 'C')
	s.text(172, 25, tb.DocNumber(), 'C')

	// Sale-condition frame with the contado/crédito tick boxes.
	s.pdf.RoundedRect(143, 28, 60, 9, 1, "1234", "S")
	s.font("", 5)
	s.text(145, 33, "COND. DE VENTA: ", 'L')
	s.text(180, 33, "CONTADO", 'R')
	s.text(198, 33, "CREDITO", 'R')
	s.pdf.Rect(166, 30, 4, 4, "S")
	s.pdf.Rect(185, 30, 4, 4, "S")
	if doc.Payment.Cash() {
		s.text(168, 33, "X", 'C')
	} else {
		s.text(187, 33, "X", 'C')
	}

	// Receiver frame.
	s.pdf.RoundedRect(marginX, 38, contentWidth, 14, 1, "1234", "S")
	rc := doc.Receiver
	s.font("", 5)
	s.text(8, 41, "FECHA DE EMISION: ", 'L')
	s.text(35, 41, doc.IssuedAt, 'L')
	s.text(8, 44, "NOMBRE O RAZON SOCIAL: ", 'L')
	s.text(35, 44, rc.Name, 'L')
	s.text(8, 47, "DIRECCION: ", 'L')
	s.text(35, 47, truncate(rc.Address, 100), 'L')
	s.text(140, 41, "TELEFONO: ", 'L')
	s.text(155, 41, rc.Phone, 'L')
	s.text(140, 44, "RUC: ", 'L')
	s.text(155, 44, rc.DisplayID(), 'L')
	s.text(140, 47, "PLAZO: ", 'L')
	s.text(155, 47, doc.Payment.Term, 'L')

	s.drawPageLabel(page, total)
	s.drawTableHeader("DESCUENTO")
}

// drawInvoiceFooter draws everything below the item table on the last
// page, anchored at f, the table's final y.
func drawInvoiceFooter(s *sheet, in Input, f float64) {
	g := grid()
	t := money.FormatTotals(in.Doc.Totals, in.Profile)

	s.font("", 5)
	s.pdf.Rect(marginX, f, contentWidth, 5, "S")
	s.text(8, f+3, "SUBTOTAL:", 'L')
	for c, v := range map[int]string{
		money.ColExempt: t.Exempt,
		money.ColIVA5:   t.Sub5,
		money.ColIVA10:  t.Sub10,
	} {
		x := colX(g, c)
		s.pdf.Rect(x, f, g[c].width, 5, "S")
		s.text(x+g[c].width-1, f+3, v, 'R')
	}

	s.pdf.Rect(marginX, f+5, contentWidth, 5, "S")
	s.text(8, f+8, "LIQUIDACION DEL IVA:", 'L')
	s.text(40, f+8, "5 %: ", 'L')
	s.text(45, f+8, t.IVA5, 'L')
	s.text(70, f+8, "10 %: ", 'L')
	s.text(77, f+8, t.IVA10, 'L')
	s.text(100, f+8, "TOTAL: ", 'L')
	s.text(108, f+8, t.TotalIVA, 'L')

	// INFORMCONF authorization; its top band is painted over by the
	// amount-in-words strip below.
	s.pdf.RoundedRect(marginX, f+14, contentWidth, 10, 1, "1234", "S")
	legal := s.tr(fmt.Sprintf(informconfText, in.CompanyName))
	for k, ln := range s.pdf.SplitLines([]byte(legal), contentWidth-3) {
		s.pdf.Text(8, f+16+float64(k)*rowLineHeight, string(ln))
	}
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.Rect(marginX, f+10, contentWidth, 5, "F")
	s.pdf.Rect(marginX, f+10, contentWidth, 5, "S")
	s.pdf.Rect(188, f+10, 15, 5, "S")

	s.text(8, f+13, "TOTAL A PAGAR (en letras):", 'L')
	s.text(33, f+13, words.LegalLine(in.Profile.LongName, in.Doc.Totals.GrandTotal, in.Profile.Decimals), 'L')
	s.text(202, f+13, t.GrandTotal, 'R')

	s.drawVerification(in, f+25, f+28, f+31)
}

func truncate(str string, max int) string {
	r := []rune(str)
	if len(r) <= max {
		return str
	}
	return string(r[:max])
}
