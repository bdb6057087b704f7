package normalize

import (
	"regexp"
	"strings"
)

var bareYearRe = regexp.MustCompile(`^\d{4}$`)

// nameGarbage marks strings that are navigation text or contact info rather
// than a person's name.
var nameGarbage = []string{"click", "website", "building", "campus", "phone", "@"}

// NameKey is the dedup key form of a name: trimmed and lowercased.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidName rejects empty/short strings, bare years, over-long cell
// contents, and contact-info/navigation garbage.
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	if bareYearRe.MatchString(name) {
		return false
	}
	lower := strings.ToLower(name)
	for _, g := range nameGarbage {
		if strings.Contains(lower, g) {
			return false
		}
	}
	return true
}
