package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Michigan parses lsa.umich.edu and Ross pages: placement-history
// tables, profile cards, year accordions, and dt/dd lists.
type Michigan struct{}

func (p *Michigan) School() string { return "University of Michigan" }

func (p *Michigan) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, .candidate, article, .views-row",
		SkipWords:  []string{"michigan", "economics", "department", "ross", "placement"},
	}))
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".accordion-item, details, .collapse, .panel",
	}))
	col.AddAll(parse.DefinitionLists(doc, p.School()))
	return col.Records()
}
