package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Princeton parses economics.princeton.edu. Past-placement statistics
// pages publish one table per cohort under a year heading, so the table
// strategy runs in year-carrying mode.
type Princeton struct{}

func (p *Princeton) School() string { return "Princeton" }

func (p *Princeton) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.YearHeadedTables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .graduate-profile, .profile-card, .student-profile, .views-row, article, .node",
		SkipWords:  []string{"princeton", "economics", "department", "placement", "contact", "about", "faculty", "news"},
	}))
	col.AddAll(parse.PairLines(doc, p.School(), "li"))
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".year-section, .accordion-item, .panel, [data-year]",
	}))
	col.AddAll(parse.DefinitionLists(doc, p.School()))
	return col.Records()
}
