package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// pairSeparators split a "Name - Placement" line, tried in order. The
// comma comes last: names never contain " - " but placements often
// contain commas.
var pairSeparators = []string{" - ", ": ", " – ", " — ", ", "}

// SplitPair splits a line into (name, placement) on the first separator
// that produces a plausible name on the left.
func SplitPair(text string) (name, placement string, ok bool) {
	for _, sep := range pairSeparators {
		idx := strings.Index(text, sep)
		if idx < 0 {
			continue
		}
		left := normalize.CleanText(text[:idx])
		right := normalize.CleanText(text[idx+len(sep):])
		if len(left) < 3 || len(left) > 80 {
			return "", "", false
		}
		// A very long single token is a sentence fragment, not a name.
		if !strings.Contains(left, " ") && len(left) >= 20 {
			return "", "", false
		}
		return left, right, true
	}
	return "", "", false
}

// isYearHeading reports whether a short text block is a cohort heading
// like "2024" or "2023-2024 Placements".
func isYearHeading(text string) (int, bool) {
	if len(text) >= 30 {
		return 0, false
	}
	return normalize.ExtractYear(text)
}

// YearLists walks headings, paragraphs, and list items in document order.
// A short heading containing a year sets the cohort for every
// "Name - Placement" line until the next year heading; lines outside any
// year section are ignored.
func YearLists(doc *goquery.Document, school string) []domain.Candidate {
	var out []domain.Candidate
	currentYear := 0
	doc.Find("h2, h3, h4, li, p").Each(func(_ int, el *goquery.Selection) {
		text := normalize.CleanText(el.Text())
		if y, ok := isYearHeading(text); ok {
			currentYear = y
			return
		}
		if currentYear == 0 {
			return
		}
		name, placement, ok := SplitPair(text)
		if !ok {
			return
		}
		// A line may carry a more specific year than its section heading.
		year := currentYear
		if y, ok := normalize.ExtractYear(text); ok {
			year = y
		}
		if cand, ok := NewCandidate(school, name, placement, year, ""); ok {
			out = append(out, cand)
		}
	})
	return out
}

// PairLines applies SplitPair to every element matching sel, with no year
// gating. Used on pages that list placements without cohort headings.
func PairLines(doc *goquery.Document, school, sel string) []domain.Candidate {
	var out []domain.Candidate
	doc.Find(sel).Each(func(_ int, el *goquery.Selection) {
		text := normalize.CleanText(el.Text())
		if len(text) < 5 || len(text) > 200 {
			return
		}
		name, placement, ok := SplitPair(text)
		if !ok {
			return
		}
		year, _ := normalize.ExtractYear(text)
		if cand, ok := NewCandidate(school, name, placement, year, ""); ok {
			out = append(out, cand)
		}
	})
	return out
}

// AccordionOptions tune the accordion strategy.
type AccordionOptions struct {
	Containers string
	HeaderSel  string
	BodySel    string
}

func (o AccordionOptions) withDefaults() AccordionOptions {
	if o.Containers == "" {
		o.Containers = ".accordion-item, .expandable, .panel, .collapse-item, details"
	}
	if o.HeaderSel == "" {
		o.HeaderSel = ".accordion-header, .panel-heading, .collapse-header, summary, button, h3, h4"
	}
	if o.BodySel == "" {
		o.BodySel = ".accordion-body, .panel-body, .collapse-body, .collapse, .card-body"
	}
	return o
}

// Accordions handles two accordion shapes. When the header is a year the
// body is a cohort listing and each line is split into name/placement
// pairs; when the header is a person's name the body holds their details.
func Accordions(doc *goquery.Document, school string, opts AccordionOptions) []domain.Candidate {
	opts = opts.withDefaults()
	var out []domain.Candidate
	doc.Find(opts.Containers).Each(func(_ int, section *goquery.Selection) {
		header := section.Find(opts.HeaderSel).First()
		if header.Length() == 0 {
			return
		}
		headText := normalize.CleanText(header.Text())

		if year, ok := isYearHeading(headText); ok {
			body := section.Find(opts.BodySel).First()
			if body.Length() == 0 {
				body = section
			}
			body.Find("li, p, div.person").Each(func(_ int, item *goquery.Selection) {
				text := normalize.CleanText(item.Text())
				if len(text) < 5 || len(text) > 200 {
					return
				}
				name, placement, ok := SplitPair(text)
				if !ok {
					return
				}
				itemYear := year
				if y, ok := normalize.ExtractYear(text); ok {
					itemYear = y
				}
				if cand, ok := NewCandidate(school, name, placement, itemYear, ""); ok {
					out = append(out, cand)
				}
			})
			return
		}

		// Header is a name; pull details from the body.
		placement, fields := "", ""
		if body := section.Find(opts.BodySel).First(); body.Length() > 0 {
			placement = firstText(body, defaultCardPlacementSel)
			fields = firstText(body, defaultCardFieldsSel)
		}
		year, _ := normalize.ExtractYear(section.Text())
		if cand, ok := NewCandidate(school, headText, placement, year, fields); ok {
			out = append(out, cand)
		}
	})
	return out
}
