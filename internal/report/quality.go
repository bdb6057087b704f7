package report

import (
	"fmt"

	"github.com/agext/levenshtein"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// maxNameDistance is the edit distance at or under which two names are
// flagged as likely the same person.
const maxNameDistance = 2

// Issue is one data-quality finding.
type Issue struct {
	Kind   string // academia_leak | unnormalized_alias | near_duplicate
	Detail string
}

// Quality scans the candidate table for records that slipped past the
// filters: academic placements, employer names the alias table should
// have collapsed, and near-duplicate names within one school.
func Quality(cands []domain.Candidate) []Issue {
	var issues []Issue

	for _, c := range cands {
		if normalize.IsAcademia(c.InitialPlacement) {
			issues = append(issues, Issue{
				Kind:   "academia_leak",
				Detail: fmt.Sprintf("%s (%s): %q", c.Name, c.School, c.InitialPlacement),
			})
		}
		if norm := normalize.NormalizeCompany(c.InitialPlacement); norm != c.InitialPlacement {
			issues = append(issues, Issue{
				Kind:   "unnormalized_alias",
				Detail: fmt.Sprintf("%s (%s): %q should be %q", c.Name, c.School, c.InitialPlacement, norm),
			})
		}
	}

	bySchool := map[string][]string{}
	for _, c := range cands {
		bySchool[c.School] = append(bySchool[c.School], c.Name)
	}
	for school, names := range bySchool {
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a := normalize.NameKey(names[i])
				b := normalize.NameKey(names[j])
				if a == b {
					continue // exact duplicates cannot exist past the store key
				}
				if levenshtein.Distance(a, b, nil) <= maxNameDistance {
					issues = append(issues, Issue{
						Kind:   "near_duplicate",
						Detail: fmt.Sprintf("%s: %q vs %q", school, names[i], names[j]),
					})
				}
			}
		}
	}
	return issues
}
