// Package kudelib provides a public API for rendering Paraguayan SIFEN
// electronic documents as printable KuDE PDFs.
//
// Example usage:
//
//	gen := kudelib.NewGenerator()
//	pdf, err := gen.Render(ctx, xmlBytes, "6", "ACME S.A.", logoPNG)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("factura.pdf", pdf, 0o644)
package kudelib

import (
	"github.com/sifenlabs/kude/internal/model"
	"github.com/sifenlabs/kude/internal/render"
)

// Re-export core types for public API
type (
	Document      = model.Document
	LineItem      = model.LineItem
	Issuer        = model.Issuer
	Receiver      = model.Receiver
	Timbrado      = model.Timbrado
	Totals        = model.Totals
	AssociatedDoc = model.AssociatedDoc
	Kind          = model.Kind
)

// Re-export document kinds
const (
	KindInvoice    = model.KindInvoice
	KindCreditNote = model.KindCreditNote
)

// Re-export error types
type (
	UnwrapError   = model.UnwrapError
	QRError       = model.QRError
	RenderFailure = model.RenderFailure
)

// Generator renders KuDE PDFs from SIFEN XML.
type Generator = render.Generator

// NewGenerator creates a ready-to-use renderer.
func NewGenerator() *Generator {
	return render.NewGenerator()
}
