package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// UChicago's authoritative placement data lives in a PDF behind a Box
// link; that path goes through the free-text parser at the orchestrator.
// This parser covers the HTML career-placement page as a fallback.
type UChicago struct{}

func (p *UChicago) School() string { return "University of Chicago" }

func (p *UChicago) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person-card, .person, .profile, .views-row, article.candidate, .view-content > div",
		SkipWords:  []string{"menu", "navigation", "search", "home", "read more", "view", "click", "learn"},
	}))
	col.AddAll(parse.YearLists(doc, p.School()))
	return col.Records()
}
