package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// Default header keyword sets for fuzzy column detection. Matching is
// substring over the lowercased header cell, so "Student Name" and
// "Job Market Candidate" both resolve the name column.
var (
	nameHeaderWords      = []string{"name", "student", "candidate", "graduate"}
	placementHeaderWords = []string{"placement", "employer", "position", "job", "company", "institution", "first", "initial"}
	yearHeaderWords      = []string{"year", "class", "cohort", "graduation", "graduated"}
	fieldsHeaderWords    = []string{"field", "research", "area", "interest", "specialization", "specialty"}
)

// headerRowText lowercases every th/td cell of a table's first row.
func headerRowText(table *goquery.Selection) []string {
	first := table.Find("tr").First()
	var out []string
	first.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.ToLower(normalize.CleanText(cell.Text())))
	})
	return out
}

func findColumn(headers, keywords []string) (int, bool) {
	for i, h := range headers {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i, true
			}
		}
	}
	return 0, false
}

// headerLikeNames are cell values that mean a data row is really a repeated
// header.
var headerLikeNames = map[string]struct{}{
	"name": {}, "candidate": {}, "student": {}, "graduate": {}, "phd": {}, "n/a": {},
}

// Table extracts candidates from one <table> selection.
//
// Column assignment: fuzzy header match first, then positional defaults
// (first column is the name, last column is the placement). A year column,
// when present, wins over scanning the whole row text. overrideYear, when
// non-zero, is a year carried forward from a section heading above the
// table and takes precedence over per-row detection only when the row
// itself yields nothing.
func Table(table *goquery.Selection, school string, overrideYear int) []domain.Candidate {
	headers := headerRowText(table)

	nameCol, _ := findColumn(headers, nameHeaderWords)
	placementCol, placementOK := findColumn(headers, placementHeaderWords)
	yearCol, yearOK := findColumn(headers, yearHeaderWords)
	fieldsCol, fieldsOK := findColumn(headers, fieldsHeaderWords)
	if !placementOK && len(headers) > 1 {
		placementCol = len(headers) - 1
		placementOK = true
	}

	var out []domain.Candidate
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		cellText := func(col int) string {
			if col < 0 || col >= cells.Length() {
				return ""
			}
			return normalize.CleanText(cells.Eq(col).Text())
		}

		name := cellText(nameCol)
		if name == "" {
			name = cellText(0)
		}
		if _, skip := headerLikeNames[strings.ToLower(name)]; skip {
			return
		}

		placement := ""
		if placementOK {
			placement = cellText(placementCol)
		}
		if placement == "" && cells.Length() > 1 {
			placement = cellText(cells.Length() - 1)
		}

		fields := ""
		if fieldsOK {
			fields = cellText(fieldsCol)
		}

		year := 0
		if yearOK {
			year, _ = normalize.ExtractYear(cellText(yearCol))
		}
		if year == 0 {
			year, _ = normalize.ExtractYear(row.Text())
		}
		if year == 0 {
			year = overrideYear
		}

		if cand, ok := NewCandidate(school, name, placement, year, fields); ok {
			out = append(out, cand)
		}
	})
	return out
}

// Tables runs the table strategy over every table in the document.
func Tables(doc *goquery.Document, school string) []domain.Candidate {
	var out []domain.Candidate
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		out = append(out, Table(table, school, 0)...)
	})
	return out
}

// YearHeadedTables walks headings and tables in document order, carrying
// the year found in the most recent heading into each table below it.
// Pages that publish one table per cohort under "2024 Placement" headings
// depend on this.
func YearHeadedTables(doc *goquery.Document, school string) []domain.Candidate {
	var out []domain.Candidate
	currentYear := 0
	doc.Find("h2, h3, h4, table").Each(func(_ int, el *goquery.Selection) {
		if goquery.NodeName(el) == "table" {
			out = append(out, Table(el, school, currentYear)...)
			return
		}
		if y, ok := normalize.ExtractYear(el.Text()); ok {
			currentYear = y
		}
	})
	return out
}
