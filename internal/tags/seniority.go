package tags

import "strings"

// EntryLevel is the seniority assigned when a role title matches no level.
const EntryLevel = "Entry/IC"

// seniorityLevels evaluate in order with first-match-wins. Director must
// stay ahead of Chief: " cto" contains no "director" but "chief technology
// officer" spelled out would otherwise collide with substring checks lower
// in the table.
var seniorityLevels = []Category{
	{"Director", []string{"director"}},
	{"Founder", []string{"founder", "co-founder"}},
	{"Chief", []string{"chief", "ceo", " cto", "coo"}},
	{"VP", []string{"vp ", "vice president"}},
	{"Head", []string{"head of", "head "}},
	{"Manager", []string{"manager"}},
	{"Principal", []string{"principal"}},
	{"Staff", []string{"staff"}},
	{"Lead", []string{"lead"}},
	{"Senior", []string{"senior", "sr.", "sr "}},
}

// SeniorityOrder lists levels from junior to senior for chart and report
// ordering.
var SeniorityOrder = []string{
	EntryLevel, "Senior", "Lead", "Staff", "Principal",
	"Manager", "Director", "Head", "VP", "Chief", "Founder",
}

// Seniority extracts a seniority level from a role title. Empty or
// placeholder titles return "" (unknown); titles matching no level are
// Entry/IC.
func Seniority(role string) string {
	role = strings.TrimSpace(role)
	if role == "" || role == "0" || strings.EqualFold(role, "nan") {
		return ""
	}
	lower := strings.ToLower(role)
	for _, lvl := range seniorityLevels {
		for _, kw := range lvl.Keywords {
			if strings.Contains(lower, kw) {
				return lvl.Label
			}
		}
	}
	return EntryLevel
}
