// Package render runs the full XML-to-PDF pipeline and enforces the
// uniform failure contract: whatever goes wrong inside, callers get a
// single {code: 0, message} error shape.
package render

import (
	"context"
	"fmt"
	"log"

	"github.com/sifenlabs/kude/internal/envelope"
	"github.com/sifenlabs/kude/internal/extract"
	"github.com/sifenlabs/kude/internal/layout"
	"github.com/sifenlabs/kude/internal/model"
	"github.com/sifenlabs/kude/internal/money"
	"github.com/sifenlabs/kude/internal/qr"
)

// Generator renders KuDE documents. Safe for concurrent use; every
// Render call builds its own PDF state.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Render turns raw SIFEN XML into the finished PDF. A QR that fails to
// encode is logged and dropped rather than failing the document; every
// other error, including panics out of the drawing code, comes back as
// a RenderFailure.
func (g *Generator) Render(ctx context.Context, xmlData []byte, companyID, companyName string, logo []byte) (pdf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = model.NewRenderFailure(fmt.Sprintf("render panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, model.AsRenderFailure(err)
	}

	tree, err := envelope.Parse(xmlData)
	if err != nil {
		return nil, model.AsRenderFailure(err)
	}
	canonical, err := envelope.Unwrap(tree)
	if err != nil {
		return nil, model.AsRenderFailure(err)
	}

	doc := extract.Extract(canonical)

	qrPNG, err := qr.Encode(doc.QRPayload)
	if err != nil {
		log.Printf("render: dropping QR for %s: %v", doc.CDC, err)
		qrPNG = nil
	}

	out, err := layout.Render(layout.Input{
		Doc:         doc,
		Profile:     money.ProfileFor(doc.Currency),
		CompanyID:   companyID,
		CompanyName: companyName,
		Logo:        logo,
		QRPNG:       qrPNG,
	})
	if err != nil {
		return nil, model.AsRenderFailure(err)
	}
	return out, nil
}
