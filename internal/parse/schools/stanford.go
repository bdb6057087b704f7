package schools

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/parse"
)

// Stanford parses economics.stanford.edu, a Drupal site using HB card
// components for job-market candidates.
type Stanford struct{}

func (p *Stanford) School() string { return "Stanford" }

func (p *Stanford) Parse(doc *goquery.Document) []domain.Candidate {
	col := parse.NewCollector()
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".hb-card, .hb-card--horizontal, .views-row",
		NameSel:    ".hb-card__title a, .hb-card__title, h2 a, h3 a, h4 a, h2, h3, h4, .title a, .name a",
		FieldsSel:  ".hb-card__subtitle, .fields, .research-interests, .field--name-field-research-areas",
		SkipWords:  []string{"stanford", "building", "campus", "click", "website", "map"},
	}))
	col.AddAll(parse.Tables(doc, p.School()))
	col.AddAll(parse.Cards(doc, p.School(), parse.CardOptions{
		Containers: ".person, .profile, article",
	}))
	return col.Records()
}
