package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Maryland parses econ.umd.edu, which groups placements in accordion
// sections by year.
type Maryland struct{}

func (p *Maryland) School() string { return "University of Maryland" }

func (p *Maryland) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".accordion-item, .panel, details",
	}))
	col.AddAll(parse.YearLists(doc, p.School()))
	col.AddAll(parse.Tables(doc, p.School()))
	return col.Records()
}
