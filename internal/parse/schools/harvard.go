package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Harvard parses economics.harvard.edu placement and job-market pages:
// tables for history, cards for candidates, and dt/dd lists on older
// placement pages.
type Harvard struct{}

func (p *Harvard) School() string { return "Harvard" }

func (p *Harvard) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".views-row, .person, .profile, .candidate, article, .node",
		SkipWords:  []string{"harvard", "economics", "department", "placement", "contact", "about"},
	}))
	col.AddAll(parse.PairLines(doc, p.School(), "li.placement, li.candidate, ul.placement-list li"))
	col.AddAll(parse.DefinitionLists(doc, p.School()))
	return col.Records()
}
