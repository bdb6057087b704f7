package schools

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// CMU parses the Tepper job-market page, which groups placement tables
// under program headings (Economics, Financial Economics, ...). The
// program heading becomes the research-fields value for every row in the
// tables below it.
type CMU struct{}

func (p *CMU) School() string { return "Carnegie Mellon" }

func (p *CMU) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()

	currentProgram := ""
	doc.Find("h2, h3, h4, table").Each(func(_ int, el *goquery.Selection) {
		if goquery.NodeName(el) != "table" {
			if prog, ok := tepperProgram(el.Text()); ok {
				currentProgram = prog
			}
			return
		}
		for _, cand := range parse.Table(el, p.School(), 0) {
			if cand.ResearchFields == "" {
				cand.ResearchFields = currentProgram
			}
			col.Add(cand)
		}
	})

	col.AddAll(parse.YearLists(doc, p.School()))
	return col.Records()
}

func tepperProgram(heading string) (string, bool) {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "behavior"):
		return "Behavioral Economics", true
	case strings.Contains(h, "finance"), strings.Contains(h, "financial"):
		return "Financial Economics", true
	case strings.Contains(h, "operations"), strings.Contains(h, "aco"):
		return "Operations Research", true
	case strings.Contains(h, "statistic"):
		return "Statistics", true
	case strings.Contains(h, "economics"):
		return "Economics", true
	}
	return "", false
}
