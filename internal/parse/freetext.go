package parse

import (
	"strings"
	"unicode"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// FreeText extracts candidates from layout-free text, typically a PDF's
// extracted lines. The format it targets lists one placement per line as
// "Company (count) field words Person Name" under year and sector
// headings, e.g.
//
//	2023 – 2024
//	Private Sector
//	Amazon (3) international trade Maria Cuevas
//
// Lines outside a private-sector section are always excluded, even when
// they would otherwise match; academic and public-sector placements are
// out of scope at the source, not recovered later. A separator-based pass
// ("Name - Company") runs as a fallback for PDFs that list people first.
func FreeText(school, text string) []domain.Candidate {
	lines := strings.Split(text, "\n")
	col := NewCollector()

	currentYear := 0
	inPrivateSector := false
	for _, line := range lines {
		line = normalize.CleanText(line)
		if line == "" {
			continue
		}

		if y, ok := normalize.ExtractYearWide(line); ok && len(line) < 30 &&
			(strings.Contains(line, "–") || strings.Contains(line, "-")) {
			currentYear = y
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "private sector"):
			inPrivateSector = true
			continue
		case strings.Contains(lower, "academic"),
			strings.Contains(lower, "post-doc"),
			strings.Contains(lower, "public sector"):
			inPrivateSector = false
			continue
		}
		if !inPrivateSector {
			continue
		}

		company, ok := normalize.MatchCompanyPrefix(line)
		if !ok {
			continue
		}
		// The matched keyword has the same length as its title-cased form,
		// so slicing removes the company prefix from the line.
		name := trailingName(line[len(company):])
		if cand, ok := NewCandidate(school, name, company, currentYear, ""); ok {
			col.Add(cand)
		}
	}

	// Fallback pass: "Name - Company" lines under bare year headings.
	currentYear = 0
	for _, line := range lines {
		line = normalize.CleanText(line)
		if line == "" {
			continue
		}
		if y, ok := normalize.ExtractYearWide(line); ok && len(line) < 20 {
			currentYear = y
			continue
		}
		for _, sep := range []string{" - ", ": ", " – ", " — "} {
			idx := strings.Index(line, sep)
			if idx < 0 {
				continue
			}
			name := normalize.CleanText(line[:idx])
			placement := normalize.CleanText(line[idx+len(sep):])
			if !normalize.IsTechPlacement(placement) {
				break
			}
			if cand, ok := NewCandidate(school, name, normalize.NormalizeCompany(placement), currentYear, ""); ok {
				col.Add(cand)
			}
			break
		}
	}

	return col.Records()
}

// trailingName pulls the person's name off the end of a
// "(count) field words Person Name" remainder: skip parenthetical counts
// and lowercase field words, then take the run of capitalized words.
func trailingName(line string) string {
	words := strings.Fields(line)
	var nameWords []string
	started := false
	for _, w := range words {
		if strings.HasPrefix(w, "(") && strings.HasSuffix(w, ")") {
			continue
		}
		if isLowerWord(w) {
			continue
		}
		r := []rune(w)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			started = true
		}
		if started {
			nameWords = append(nameWords, w)
		}
	}
	return strings.Join(nameWords, " ")
}

func isLowerWord(w string) bool {
	switch strings.ToLower(w) {
	case "and", "of", "the", "for":
		return true
	}
	for _, r := range w {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
