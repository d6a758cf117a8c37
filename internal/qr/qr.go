// Package qr produces the SIFEN verification QR image and the grouped
// CDC display text.
package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/sifenlabs/kude/internal/model"
)

// size is the PNG edge in pixels; the layout scales it down to print size.
const size = 256

// Encode renders the dCarQR payload as a PNG. An empty payload is an
// error so the caller can decide to print without a code.
func Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, model.NewQRError("empty payload", nil)
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, model.NewQRError("payload rejected", err)
	}
	return png, nil
}

// FormatCDC regroups the 44-character control code into space-separated
// blocks of four for readability.
func FormatCDC(cdc string) string {
	if cdc == "" {
		return ""
	}
	var groups []string
	for i := 0; i < len(cdc); i += 4 {
		end := i + 4
		if end > len(cdc) {
			end = len(cdc)
		}
		groups = append(groups, cdc[i:end])
	}
	return strings.Join(groups, " ")
}
