// Package words converts amounts to Spanish cardinal words for the
// "TOTAL A PAGAR (en letras)" legal line.
package words

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var units = []string{
	"CERO", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE",
	"OCHO", "NUEVE", "DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE",
	"DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE", "VEINTE",
	"VEINTIUNO", "VEINTIDÓS", "VEINTITRÉS", "VEINTICUATRO", "VEINTICINCO",
	"VEINTISÉIS", "VEINTISIETE", "VEINTIOCHO", "VEINTINUEVE",
}

var tens = []string{
	"", "", "", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA",
	"OCHENTA", "NOVENTA",
}

var hundreds = []string{
	"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS",
	"QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS",
	"NOVECIENTOS",
}

// Cardinal spells a non-negative integer in uppercase Spanish. Supports
// values up to the billions (millardos), far beyond any legal total.
func Cardinal(n int64) string {
	if n == 0 {
		return "CERO"
	}
	if n < 0 {
		return "MENOS " + Cardinal(-n)
	}

	var parts []string

	if m := n / 1_000_000; m > 0 {
		if m == 1 {
			parts = append(parts, "UN MILLÓN")
		} else {
			parts = append(parts, belowMillion(m)+" MILLONES")
		}
		n %= 1_000_000
	}
	if n > 0 {
		parts = append(parts, belowMillion(n))
	}
	return strings.Join(parts, " ")
}

func belowMillion(n int64) string {
	var parts []string
	if t := n / 1000; t > 0 {
		if t == 1 {
			parts = append(parts, "MIL")
		} else {
			parts = append(parts, apocope(belowThousand(t))+" MIL")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	if n == 100 {
		return "CIEN"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
		n %= 100
	}
	if n > 0 {
		if n < 30 {
			parts = append(parts, units[n])
		} else {
			w := tens[n/10]
			if r := n % 10; r > 0 {
				w += " Y " + units[r]
			}
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}

// apocope shortens a trailing "uno" before MIL and MILLONES:
// veintiuno mil -> veintiún mil.
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "VEINTIUNO"):
		return strings.TrimSuffix(s, "VEINTIUNO") + "VEINTIÚN"
	case strings.HasSuffix(s, "UNO"):
		return strings.TrimSuffix(s, "UNO") + "UN"
	}
	return s
}

// Amount spells a monetary amount. Zero-decimal currencies use the plain
// cardinal; fractional cents render in the cheque form "CON NN/100".
func Amount(d decimal.Decimal, places int32) string {
	whole := d.Truncate(0)
	text := Cardinal(whole.IntPart())
	if places <= 0 {
		return text
	}
	cents := d.Sub(whole).Shift(2).Round(0).IntPart()
	if cents == 0 {
		return text
	}
	return fmt.Sprintf("%s CON %02d/100", text, cents)
}

// LegalLine builds the full tamper-evident legal total line. The
// trailing "=====" marker is a business requirement and must survive
// bit-for-bit.
func LegalLine(currencyLongName string, d decimal.Decimal, places int32) string {
	return currencyLongName + " " + Amount(d, places) + " ====="
}
