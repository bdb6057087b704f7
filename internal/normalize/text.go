package normalize

import (
	"regexp"
	"strings"
)

// Plausible graduation window for scraped records. Years outside it are
// treated as unreliable.
const (
	YearMin = 2020
	YearMax = 2025
)

// Wider window used for free-text/PDF year headers, which reach further back.
const YearMinWide = 2015

var yearRe = regexp.MustCompile(`20\d{2}`)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ExtractYear scans text for the first four-digit year inside
// [YearMin, YearMax]. Four-digit numbers outside the window (phone numbers,
// building codes, old cohorts) are ignored.
func ExtractYear(text string) (int, bool) {
	return ExtractYearIn(text, YearMin, YearMax)
}

// ExtractYearWide is ExtractYear with the [YearMinWide, YearMax] window.
func ExtractYearWide(text string) (int, bool) {
	return ExtractYearIn(text, YearMinWide, YearMax)
}

func ExtractYearIn(text string, lo, hi int) (int, bool) {
	if text == "" {
		return 0, false
	}
	for _, m := range yearRe.FindAllString(text, -1) {
		y := int(m[0]-'0')*1000 + int(m[1]-'0')*100 + int(m[2]-'0')*10 + int(m[3]-'0')
		if y >= lo && y <= hi {
			return y, true
		}
	}
	return 0, false
}
