package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Minnesota parses cla.umn.edu and apec.umn.edu pages: tables, people
// listings, and plain bullet lists of "Name, Placement" lines.
type Minnesota struct{}

func (p *Minnesota) School() string { return "University of Minnesota" }

func (p *Minnesota) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, .candidate, article, .views-row, .people-listing",
		SkipWords:  []string{"minnesota", "economics", "department", "placement"},
	}))
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".year-section, section, details",
	}))
	col.AddAll(parse.PairLines(doc, p.School(), "ul li"))
	return col.Records()
}
