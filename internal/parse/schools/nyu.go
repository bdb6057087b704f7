package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// NYU parses as.nyu.edu and Stern pages, which favor accordion sections
// grouped by year with "Name - Placement" lines inside.
type NYU struct{}

func (p *NYU) School() string { return "NYU" }

func (p *NYU) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".accordion-item, .expandable, .panel, .card",
	}))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers:   ".person-grid-item, .faculty-grid-item, .student-card, article",
		PlacementSel: ".placement, .position, .employer, .subtitle",
		SkipWords:    []string{"menu", "search", "home", "back"},
	}))
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.YearLists(doc, p.School()))
	return col.Records()
}
