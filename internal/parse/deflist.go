package parse

import (
	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// DefinitionLists extracts dt/dd pairs: the term is a name, the paired
// definition is placement text. Pairing is positional, so a dl with
// trailing unmatched terms drops them.
func DefinitionLists(doc *goquery.Document, school string) []domain.Candidate {
	var out []domain.Candidate
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		dts := dl.Find("dt")
		dds := dl.Find("dd")
		n := dts.Length()
		if dds.Length() < n {
			n = dds.Length()
		}
		for i := 0; i < n; i++ {
			name := normalize.CleanText(dts.Eq(i).Text())
			placement := normalize.CleanText(dds.Eq(i).Text())
			year, _ := normalize.ExtractYear(placement)
			if cand, ok := NewCandidate(school, name, placement, year, ""); ok {
				out = append(out, cand)
			}
		}
	})
	return out
}
