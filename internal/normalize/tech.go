package normalize

import "strings"

// techCompanies is the consolidated employer keyword list used to classify a
// placement as in-scope. Substring match, lowercase. Extend per-run via
// AddTechCompanies (config-supplied extras).
var techCompanies = []string{
	// Big Tech
	"google", "meta", "facebook", "amazon", "apple", "microsoft", "netflix",
	// Tech Unicorns / Marketplaces
	"uber", "lyft", "airbnb", "stripe", "doordash", "instacart", "dropbox",
	"slack", "zoom", "spotify", "pinterest", "snap", "snapchat", "twitter", "x corp",
	"tiktok", "bytedance", "reddit", "discord", "nextdoor", "thumbtack", "turo",
	// AI/ML
	"openai", "anthropic", "deepmind", "cohere", "stability ai", "midjourney",
	"hugging face", "scale ai", "databricks", "perplexity", "xai", "groq",
	"codeium", "cursor", "anysphere", "writer", "elevenlabs", "harvey",
	"cognition", "character ai", "inflection",
	// Fintech
	"robinhood", "coinbase", "plaid", "square", "block", "affirm", "chime",
	"sofi", "brex", "ripple", "kraken", "toast", "marqeta", "klarna", "revolut",
	// Quant Finance / Trading (hire many econ PhDs). Short tickers like
	// SIG or HRT match inside ordinary words ("design", "insight"), so
	// only full firm names go in this list.
	"two sigma", "jane street", "citadel", "de shaw", "d.e. shaw", "renaissance",
	"aqr", "point72", "bridgewater", "millennium", "tower research",
	"jump trading", "virtu financial", "susquehanna", "squarepoint", "rokos",
	"hudson river trading",
	// Enterprise/Cloud/HR
	"salesforce", "oracle", "sap", "vmware", "snowflake", "palantir",
	"servicenow", "workday", "splunk", "crowdstrike", "datadog",
	"deel", "remote", "rippling", "gusto", "qualtrics", "amplitude",
	// E-commerce / Logistics
	"shopify", "ebay", "wayfair", "etsy", "walmart labs", "flexport", "faire",
	// Hardware/Chips
	"nvidia", "intel", "amd", "qualcomm", "tesla", "spacex",
	// Real Estate Tech
	"zillow", "redfin", "opendoor", "compass", "houzz", "corelogic", "realtor.com",
	// Travel Tech
	"booking", "expedia", "tripadvisor", "navan", "tripactions", "hopper", "kayak",
	// Other Tech
	"linkedin", "indeed", "glassdoor", "yelp", "doximity", "veeva",
	"twilio", "okta", "cloudflare", "mongodb", "elastic",
	"asana", "notion", "figma", "canva", "airtable",
	"grammarly", "duolingo", "coursera", "udemy", "pandora",
	"roblox", "epic games", "unity", "activision", "electronic arts", "adobe",
}

// placementGarbage marks placement cells that are really contact info or
// navigation chrome.
var placementGarbage = []string{"@", "phone", "campus map", "connect with us", "econ[at]"}

// AddTechCompanies appends extra employer keywords (lowercased) to the
// classification list. Called once at startup from config.
func AddTechCompanies(extra []string) {
	for _, e := range extra {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			techCompanies = append(techCompanies, e)
		}
	}
}

// IsTechPlacement reports whether a placement string is an in-scope tech
// employer: not academia, not garbage, and matching at least one employer
// keyword.
func IsTechPlacement(placement string) bool {
	if placement == "" {
		return false
	}
	if IsAcademia(placement) {
		return false
	}
	lower := strings.ToLower(placement)
	for _, g := range placementGarbage {
		if strings.Contains(lower, g) {
			return false
		}
	}
	for _, c := range techCompanies {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// MatchCompanyPrefix reports whether line begins with a known tech employer,
// returning the matched keyword title-cased. Used by the free-text strategy
// where the employer leads the line.
func MatchCompanyPrefix(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, c := range techCompanies {
		if strings.HasPrefix(lower, c) {
			return titleCase(c), true
		}
	}
	return "", false
}

// ExtractCompanyFromEmbedded pulls the employer out of a "Role, Company,
// Location" string; returns the input unchanged when no part matches.
func ExtractCompanyFromEmbedded(placement string) string {
	if !strings.Contains(placement, ",") {
		return placement
	}
	for _, part := range strings.Split(placement, ",") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		for _, c := range techCompanies {
			if strings.Contains(lower, c) {
				return part
			}
		}
	}
	return placement
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
