package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Columbia parses econ.columbia.edu: h3 year headings over per-cohort
// tables on the placement page, card grids on the job-market page.
type Columbia struct{}

func (p *Columbia) School() string { return "Columbia" }

func (p *Columbia) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.YearHeadedTables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, .candidate, article, .views-row, .faculty-member, .grid-item, .team-member, .people-item",
		SkipWords:  []string{"columbia", "economics", "department", "placement", "phd program"},
	}))
	col.AddAll(parse.Accordions(doc, p.School(), parse.AccordionOptions{
		Containers: ".placement-year, .year-section, details, .accordion-item",
	}))
	return col.Records()
}
