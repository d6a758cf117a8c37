package layout

// companyProfile tunes the issuer block per emitting company: where the
// logo sits and, for companies with a printed branch, the extra address
// line.
type companyProfile struct {
	logoX, logoY, logoW float64
	branch              string
}

var companyProfiles = map[string]companyProfile{
	"4": {10, 8, 35, "ESTANCIA SAN NICANOR - BAHIA NEGRA"},
	"5": {10, 12, 37, ""},
	"6": {10, 12, 37, ""},
	"7": {10, 8, 30, ""},
}

var defaultCompanyProfile = companyProfile{10, 12, 37, ""}

// profileForCompany resolves the per-company tuning; unknown codes get
// the default logo placement and no branch line.
func profileForCompany(id string) companyProfile {
	if p, ok := companyProfiles[id]; ok {
		return p
	}
	return defaultCompanyProfile
}
