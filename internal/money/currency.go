// Package money carries the currency profiles and every monetary
// formatting rule of the KuDE. Item-level cells and document-level totals
// all go through the same routine so they can never disagree on
// separators or precision.
package money

// Profile describes how one operation currency is displayed.
type Profile struct {
	Symbol       string
	ThousandsSep string
	DecimalSep   string
	Decimals     int32
	// LongName prefixes the amount-in-words legal line.
	LongName string
}

var (
	guarani = Profile{Symbol: "Gs", ThousandsSep: ".", DecimalSep: ",", Decimals: 0, LongName: "GUARANI"}
	dollar  = Profile{Symbol: "$", ThousandsSep: ".", DecimalSep: ",", Decimals: 2, LongName: "DOLAR US"}
)

// profiles is keyed by the cMoneOpe currency code. Adding a currency is a
// data change here, not a code change.
var profiles = map[string]Profile{
	"GS":  guarani,
	"PYG": guarani,
	"USD": dollar,
}

// ProfileFor resolves the profile for a currency code. Unrecognized codes
// fall back to the guaraní profile.
func ProfileFor(code string) Profile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return guarani
}
