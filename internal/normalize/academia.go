package normalize

import "strings"

// academiaKeywords flag university/professorship/postdoc placements.
var academiaKeywords = []string{
	"university", "college", "professor", "faculty",
	"postdoc", "instructor", "phd", "academic",
	"research fellow", "lecturer", "assistant prof",
	"associate prof", "visiting scholar", "fellow at",
	"institute for", "school of", "department of",
}

// IsAcademia reports whether text indicates an academic position.
func IsAcademia(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range academiaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
