// Package report computes descriptive statistics over the candidate table
// and exports it.
package report

import (
	"sort"
	"strconv"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/tags"
)

// Count is one labelled tally, used for every per-key breakdown.
type Count struct {
	Key string
	N   int
}

// TagWeight is a fractional work-tag total.
type TagWeight struct {
	Label  string
	Weight float64
}

// Stats is one run's descriptive summary.
type Stats struct {
	Total       int
	Enriched    int
	BySchool    []Count
	ByCompany   []Count
	ByYear      []Count
	BySeniority []Count
	WorkTags    []TagWeight
	// FocusBigrams are the most common two-word phrases across work-focus
	// and research-interest text, for spotting themes the tag tables miss.
	FocusBigrams []tags.NgramCount
}

// Summarize computes all breakdowns in one pass. Counts are sorted by
// size descending, ties alphabetically, so reports are stable.
func Summarize(cands []domain.Candidate) Stats {
	st := Stats{Total: len(cands)}

	schools := map[string]int{}
	companies := map[string]int{}
	years := map[string]int{}
	seniorities := map[string]int{}
	var allocations []map[string]float64
	var focusTexts []string

	for _, c := range cands {
		schools[c.School]++
		companies[company(c)]++
		years[yearKey(c.GraduationYear)]++
		if s := tags.Seniority(currentRole(c)); s != "" {
			seniorities[s]++
		}
		if c.WorkFocus != "" {
			allocations = append(allocations, tags.CategorizeFractional(c.WorkFocus, tags.WorkTags))
			focusTexts = append(focusTexts, c.WorkFocus)
		}
		if c.ResearchInterests != "" {
			focusTexts = append(focusTexts, c.ResearchInterests)
		}
		if c.EnrichStatus == domain.EnrichComplete {
			st.Enriched++
		}
	}

	st.BySchool = sortedCounts(schools)
	st.ByCompany = sortedCounts(companies)
	st.ByYear = sortedCounts(years)
	st.BySeniority = sortedCounts(seniorities)
	st.WorkTags = sortedWeights(tags.AggregateFractional(allocations))
	st.FocusBigrams = tags.ExtractNgrams(focusTexts, 2, 15)
	return st
}

// company prefers the enriched current employer over the initial one.
func company(c domain.Candidate) string {
	if c.CurrentPlacement != "" && c.CurrentPlacement != "Unknown" {
		return c.CurrentPlacement
	}
	return c.InitialPlacement
}

func currentRole(c domain.Candidate) string {
	if c.CurrentRole != "" && c.CurrentRole != "Unknown" {
		return c.CurrentRole
	}
	return c.InitialRole
}

func yearKey(y int) string {
	if y == 0 {
		return "unknown"
	}
	return strconv.Itoa(y)
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func sortedWeights(m map[string]float64) []TagWeight {
	out := make([]TagWeight, 0, len(m))
	for k, w := range m {
		out = append(out, TagWeight{Label: k, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Label < out[j].Label
	})
	return out
}
