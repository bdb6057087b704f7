package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Yale parses economics.yale.edu, which mixes placement-history tables
// with accordion sections for current candidates.
type Yale struct{}

func (p *Yale) School() string { return "Yale" }

func (p *Yale) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".accordion-item, .expandable, .panel, .collapse-item",
	}))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, .candidate, .views-row, article, .grid-item, .person-grid-item, .student-card",
		SkipWords:  []string{"yale", "building", "campus", "click", "website"},
	}))
	return col.Records()
}
