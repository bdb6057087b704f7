package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Brown parses economics.brown.edu placement-results pages: year
// headings followed by "Name - Placement" lines, with the occasional
// table.
type Brown struct{}

func (p *Brown) School() string { return "Brown" }

func (p *Brown) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.YearLists(doc, p.School()))
	col.AddAll(parse.Tables(doc, p.School()))
	return col.Records()
}
