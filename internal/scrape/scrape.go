// Package scrape runs the full acquisition pass: fetch every school's
// placement page, extract candidate records, keep the private-sector
// tech placements, and persist them.
package scrape

import (
	"bytes"
	"fmt"
	"log"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
	"econgrads-engine/internal/parse"
	"econgrads-engine/internal/parse/schools"
	"econgrads-engine/internal/pdftext"
)

// Source is one placement page to scrape.
type Source struct {
	School string
	URL    string
}

// SourceResult reports one source's outcome. A non-nil Err never fails
// the run; sources are independent.
type SourceResult struct {
	School  string
	URL     string
	Parsed  int
	Kept    int
	Added   int
	Skipped bool // content unchanged since last run
	Err     error
}

// Summary aggregates a run across all sources.
type Summary struct {
	Results []SourceResult
	Parsed  int
	Kept    int
	Added   int
	Skipped int
	Failed  int
}

func (s *Summary) add(r SourceResult) {
	s.Results = append(s.Results, r)
	s.Parsed += r.Parsed
	s.Kept += r.Kept
	s.Added += r.Added
	if r.Skipped {
		s.Skipped++
	}
	if r.Err != nil {
		s.Failed++
	}
}

// Extract turns a fetched document into candidate records. PDFs go
// through free-text extraction; HTML goes to the school's parser, with
// the generic strategy union as fallback when a tuned parser comes up
// empty (page redesigns break selectors long before they break tables).
func Extract(doc domain.SourceDocument) ([]domain.Candidate, error) {
	if doc.IsPDF() {
		return parse.FreeText(doc.School, doc.Text), nil
	}

	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.HTML))
	if err != nil {
		return nil, fmt.Errorf("scrape: parse html for %s: %w", doc.School, err)
	}

	cands := schools.For(doc.School).Parse(gq)
	if len(cands) == 0 && schools.HasBespoke(doc.School) {
		log.Printf("[scrape:%s] tuned parser found nothing, falling back to generic", doc.School)
		cands = parse.NewGeneric(doc.School).Parse(gq)
	}
	return cands, nil
}

// FilterTech keeps the records placed at tech companies and normalizes
// their employer names. Academic and garbage placements drop here, not
// at parse time, so parser output stays inspectable.
func FilterTech(cands []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if !normalize.IsTechPlacement(c.InitialPlacement) {
			continue
		}
		// "Economist, Nvidia, Santa Clara" keeps only the employer part.
		c.InitialPlacement = normalize.NormalizeCompany(
			normalize.ExtractCompanyFromEmbedded(c.InitialPlacement))
		out = append(out, c)
	}
	return out
}

// BuildDocument classifies a fetched body into a source document,
// extracting text from PDFs.
func BuildDocument(src Source, body []byte) (domain.SourceDocument, error) {
	doc := domain.SourceDocument{School: src.School, URL: src.URL}
	if pdftext.IsPDF(body) {
		text, err := pdftext.Extract(body)
		if err != nil {
			return doc, fmt.Errorf("scrape: pdf extract for %s: %w", src.School, err)
		}
		doc.Text = text
		return doc, nil
	}
	doc.HTML = body
	return doc, nil
}
