// Package parse extracts candidate records from school placement pages.
//
// Every source publishes a different structure (tables, card grids,
// accordions, definition lists, year-headed text), so the package is built
// as a toolkit of structural strategies. A school parser runs several
// strategies against the same document and unions the results: real pages
// mix structures, e.g. a placement-history table next to a card grid of
// current job-market candidates.
package parse

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// Parser turns one fetched HTML document into candidate records.
// Implementations must be safe for concurrent use; they hold no state
// across calls.
type Parser interface {
	School() string
	Parse(doc *goquery.Document) []domain.Candidate
}

// NewCandidate builds a record for school, gating on name validity.
// A missing year defaults to the current year rather than rejecting the
// record; a missing name is fatal to the record.
func NewCandidate(school, name, placement string, year int, fields string) (domain.Candidate, bool) {
	name = normalize.CleanText(name)
	if !normalize.IsValidName(name) {
		return domain.Candidate{}, false
	}
	if year == 0 {
		year = time.Now().Year()
	}
	return domain.Candidate{
		Name:             name,
		School:           school,
		GraduationYear:   year,
		ResearchFields:   normalize.CleanText(fields),
		InitialPlacement: normalize.CleanText(placement),
		EnrichStatus:     domain.EnrichNotStarted,
	}, true
}

// Collector accumulates candidates from multiple strategies over one
// document, deduplicating by lowercase name. First occurrence wins, so
// strategy order decides which extraction survives a collision.
type Collector struct {
	seen map[string]struct{}
	out  []domain.Candidate
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

func (c *Collector) Add(cand domain.Candidate) {
	key := normalize.NameKey(cand.Name)
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}
	c.out = append(c.out, cand)
}

func (c *Collector) AddAll(cands []domain.Candidate) {
	for _, cand := range cands {
		c.Add(cand)
	}
}

func (c *Collector) Records() []domain.Candidate { return c.out }

func (c *Collector) Len() int { return len(c.out) }
