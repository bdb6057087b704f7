package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// MIT parses economics.mit.edu pages. The job-market page lays out
// candidates as figure/figcaption cells in a three-column grid; placement
// history is a plain table.
type MIT struct{}

func (p *MIT) School() string { return "MIT" }

var mitSkipWords = []string{"mit", "building", "campus", "click"}

func (p *MIT) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Figures(doc, p.School(), mitSkipWords))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, .candidate, article, .grid-item, .views-row, .node",
		SkipWords:  mitSkipWords,
	}))
	col.AddAll(parse.Tables(doc, p.School()))
	return col.Records()
}
