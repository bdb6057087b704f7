package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// CardOptions tune the card strategy for one site's markup. Zero values
// fall back to the generic selector sets observed across department CMSes
// (Drupal views rows, person teasers, profile cards).
type CardOptions struct {
	// Containers selects the repeating card elements.
	Containers string
	// NameSel selects the title-like element inside a card. A card whose
	// name element cannot be resolved yields nothing.
	NameSel string
	// PlacementSel and FieldsSel select optional detail elements.
	PlacementSel string
	FieldsSel    string
	// SkipWords reject cards whose "name" is really site chrome
	// ("Campus Map", the school's own name, navigation labels).
	SkipWords []string
}

const (
	defaultCardContainers = ".views-row, .node, article, .person, .candidate, " +
		".faculty-member, .profile, .person-teaser, .profile-card, " +
		".student-profile, .graduate-profile, .person-grid-item, " +
		".faculty-grid-item, .student-card, .job-candidate, " +
		"div[class*=\"person\"], div[class*=\"candidate\"], div[class*=\"profile\"]"

	defaultCardNameSel = "h2 a, h3 a, h4 a, h2, h3, h4, .title a, .name a, .title, .name"

	defaultCardPlacementSel = ".placement, .position, .employer, .company, .job, " +
		".field--name-field-placement, .field--name-field-initial-placement, .job-placement"

	defaultCardFieldsSel = ".research, .interests, .fields, .research-areas, " +
		".research-interests, .specialization, .field--name-field-research-areas, " +
		".field--name-field-research-interests"
)

func (o CardOptions) withDefaults() CardOptions {
	if o.Containers == "" {
		o.Containers = defaultCardContainers
	}
	if o.NameSel == "" {
		o.NameSel = defaultCardNameSel
	}
	if o.PlacementSel == "" {
		o.PlacementSel = defaultCardPlacementSel
	}
	if o.FieldsSel == "" {
		o.FieldsSel = defaultCardFieldsSel
	}
	return o
}

// Cards extracts one candidate per repeating container element.
func Cards(doc *goquery.Document, school string, opts CardOptions) []domain.Candidate {
	opts = opts.withDefaults()
	var out []domain.Candidate
	doc.Find(opts.Containers).Each(func(_ int, card *goquery.Selection) {
		if cand, ok := parseCard(card, school, opts); ok {
			out = append(out, cand)
		}
	})
	return out
}

func parseCard(card *goquery.Selection, school string, opts CardOptions) (domain.Candidate, bool) {
	nameEl := card.Find(opts.NameSel).First()
	if nameEl.Length() == 0 {
		return domain.Candidate{}, false
	}
	name := normalize.CleanText(nameEl.Text())
	lower := strings.ToLower(name)
	for _, w := range opts.SkipWords {
		if strings.Contains(lower, w) {
			return domain.Candidate{}, false
		}
	}

	placement := firstText(card, opts.PlacementSel)
	fields := firstText(card, opts.FieldsSel)
	year, _ := normalize.ExtractYear(card.Text())

	return NewCandidate(school, name, placement, year, fields)
}

func firstText(root *goquery.Selection, sel string) string {
	el := root.Find(sel).First()
	if el.Length() == 0 {
		return ""
	}
	return normalize.CleanText(el.Text())
}

// Figures extracts candidates from figure/figcaption grids: the caption's
// first link (or first text line) is the name and the remaining lines are
// research fields.
func Figures(doc *goquery.Document, school string, skipWords []string) []domain.Candidate {
	var out []domain.Candidate
	doc.Find("figure").Each(func(_ int, fig *goquery.Selection) {
		caption := fig.Find("figcaption").First()
		if caption.Length() == 0 {
			return
		}
		var name string
		if link := caption.Find("a").First(); link.Length() > 0 {
			name = normalize.CleanText(link.Text())
		}
		lines := textLines(caption)
		if name == "" && len(lines) > 0 {
			name = lines[0]
		}
		lower := strings.ToLower(name)
		for _, w := range skipWords {
			if strings.Contains(lower, w) {
				return
			}
		}
		fields := ""
		if len(lines) > 1 {
			fields = strings.Join(lines[1:], ", ")
		}
		year, _ := normalize.ExtractYear(caption.Text())
		if cand, ok := NewCandidate(school, name, "", year, fields); ok {
			out = append(out, cand)
		}
	})
	return out
}

// textLines returns the non-empty cleaned text of a selection's child
// nodes, approximating line structure where markup separates lines.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	push := func(s string) {
		if s = normalize.CleanText(s); s != "" {
			lines = append(lines, s)
		}
	}
	children := sel.Children()
	if children.Length() == 0 {
		push(sel.Text())
		return lines
	}
	children.Each(func(_ int, child *goquery.Selection) {
		push(child.Text())
	})
	return lines
}
