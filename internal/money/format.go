package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber renders d with a fixed number of decimals and the given
// thousands/decimal separators.
func FormatNumber(d decimal.Decimal, places int32, thousandsSep, decimalSep string) string {
	s := d.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteRune(c)
	}
	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// Format renders a monetary amount with the profile's own precision.
func (p Profile) Format(d decimal.Decimal) string {
	return FormatNumber(d, p.Decimals, p.ThousandsSep, p.DecimalSep)
}

// FormatWith renders an amount with the profile separators but an
// explicit decimal count (quantities and unit prices use their own).
func (p Profile) FormatWith(d decimal.Decimal, places int32) string {
	return FormatNumber(d, places, p.ThousandsSep, p.DecimalSep)
}
