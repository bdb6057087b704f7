package normalize

import "strings"

// CompanyAlias maps rebrand/variation strings to one canonical employer name.
// Subsidiaries that kept their identity (DeepMind, LinkedIn, GitHub) get their
// own entries or none at all; they are deliberately not folded into parents.
type CompanyAlias struct {
	Canonical string
	Aliases   []string
}

// companyAliases is evaluated in order; aliases match as case-insensitive
// substrings because source text embeds employers inside longer phrases
// ("Senior Economist, Amazon Web Services, Seattle").
var companyAliases = []CompanyAlias{
	// Rebrandings
	{"Meta", []string{"facebook", "meta", "meta platforms", "fb", "facebook inc"}},
	{"X", []string{"twitter", "x corp", "x.com"}},
	{"Block", []string{"square", "block", "block inc", "square inc", "cash app"}},
	// Common variations
	{"Amazon", []string{"amazon", "amazon pharmacy", "economist, amazon", "amazon.com", "aws"}},
	{"Google", []string{"google", "alphabet", "youtube", "waymo", "verily"}},
	{"Microsoft", []string{"microsoft", "microsoft post-doc"}}, // LinkedIn, GitHub stay separate
	{"Uber", []string{"uber", "uber eats", "uber technologies", "uber freight"}},
	{"Airbnb", []string{"airbnb", "data scientist, airbnb"}},
	{"Instacart", []string{"instacart economist", "instacart"}},
	// Quant finance variations
	{"Two Sigma", []string{"two sigma", "twosigma", "2sigma"}},
	{"D.E. Shaw", []string{"de shaw", "d.e. shaw", "deshaw", "d. e. shaw"}},
	{"Jane Street", []string{"jane street", "janestreet"}},
	{"Citadel", []string{"citadel", "citadel securities", "citadel llc"}},
	// AI companies
	{"OpenAI", []string{"openai", "open ai"}},
	{"DeepMind", []string{"deepmind", "deep mind"}},
	{"Scale AI", []string{"scale ai", "scale.ai", "scaleai"}},
	// Travel
	{"Navan", []string{"navan", "tripactions"}},
	{"Booking", []string{"booking", "booking.com", "priceline"}},
}

// NormalizeCompany collapses known rebrand/alias strings to the canonical
// employer name, or returns the trimmed input unchanged. Idempotent:
// NormalizeCompany(NormalizeCompany(s)) == NormalizeCompany(s).
func NormalizeCompany(name string) string {
	if strings.TrimSpace(name) == "" {
		return strings.TrimSpace(name)
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, ca := range companyAliases {
		for _, alias := range ca.Aliases {
			if strings.Contains(lower, alias) {
				return ca.Canonical
			}
		}
	}
	return strings.TrimSpace(name)
}

// StandardizeCurrentPlacement maps academic positions to the literal
// "Academia" and everything else through NormalizeCompany.
func StandardizeCurrentPlacement(name string) string {
	if strings.TrimSpace(name) == "" {
		return strings.TrimSpace(name)
	}
	if IsAcademia(name) {
		return "Academia"
	}
	return NormalizeCompany(name)
}
