package schools

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
	"econgrads-engine/internal/parse"
)

// Penn covers both the economics department and Wharton doctoral pages.
// Wharton lists companies by year without naming graduates, so its
// records carry a synthetic "Wharton PhD (year)" name; the econ page uses
// year headings over "Name - Company" lines.
type Penn struct{}

func (p *Penn) School() string { return "University of Pennsylvania" }

func (p *Penn) Parse(doc *goquery.Document) []domain.Candidate {
	if strings.Contains(strings.ToLower(doc.Text()), "wharton") {
		return p.parseWharton(doc)
	}
	col := parse.NewCollector()
	col.AddAll(parse.YearLists(doc, p.School()))
	col.AddAll(parse.Tables(doc, p.School()))
	return col.Records()
}

func (p *Penn) parseWharton(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	currentYear := 0
	currentProgram := ""
	doc.Find("h2, h3, h4, p, li, strong").Each(func(_ int, el *goquery.Selection) {
		text := normalize.CleanText(el.Text())
		lower := strings.ToLower(text)

		for _, prog := range []string{"applied economics", "statistics", "finance", "economics"} {
			if strings.Contains(lower, prog) && len(text) < 60 {
				currentProgram = text
				return
			}
		}
		if y, ok := normalize.ExtractYearWide(text); ok && len(text) == 4 {
			currentYear = y
			return
		}
		if !normalize.IsTechPlacement(text) {
			return
		}
		year := currentYear
		placement := normalize.NormalizeCompany(text)
		// The company goes into the synthetic name so that one record
		// survives per (cohort, company) rather than per cohort.
		name := fmt.Sprintf("Wharton PhD (%d) %s", yearOrDefault(year), placement)
		if cand, ok := parse.NewCandidate(p.School(), name, placement, year, currentProgram); ok {
			col.Add(cand)
		}
	})
	return col.Records()
}

func yearOrDefault(y int) int {
	if y == 0 {
		return normalize.YearMax - 1
	}
	return y
}
