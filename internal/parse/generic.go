package parse

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
)

// genericSkipWords reject card titles that are site chrome rather than a
// person. Broad on purpose: the fallback runs against unknown markup.
var genericSkipWords = []string{
	"click on", "building", "stanford way", "website",
	"campus map", "connect with", "phone", "email",
	"menu", "search", "navigation",
}

// Generic is the schema-agnostic fallback parser. It runs the table,
// card, accordion, definition-list, and year-list strategies with broad
// selectors and no site-specific tuning. It serves schools without a
// bespoke parser and backs up bespoke parsers that return nothing; recall
// matters more than precision here since the tech-classification gate
// runs downstream.
type Generic struct {
	school string
}

func NewGeneric(school string) *Generic { return &Generic{school: school} }

func (g *Generic) School() string { return g.school }

func (g *Generic) Parse(doc *goquery.Document) []domain.Candidate {
	col := NewCollector()
	col.AddAll(Tables(doc, g.school))
	col.AddAll(Cards(doc, g.school, CardOptions{SkipWords: genericSkipWords}))
	col.AddAll(Accordions(doc, g.school, AccordionOptions{}))
	col.AddAll(DefinitionLists(doc, g.school))
	col.AddAll(YearLists(doc, g.school))
	return col.Records()
}
