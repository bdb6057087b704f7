package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"econgrads-engine/internal/domain"
)

var exportHeader = []string{
	"name", "school", "graduation_year", "research_fields",
	"initial_placement", "initial_role",
	"current_placement", "current_role", "team", "work_focus",
	"notes", "linkedin_url", "citations", "h_index",
	"research_interests", "enrich_status",
}

func exportRow(c domain.Candidate) []string {
	return []string{
		c.Name, c.School, strconv.Itoa(c.GraduationYear), c.ResearchFields,
		c.InitialPlacement, c.InitialRole,
		c.CurrentPlacement, c.CurrentRole, c.Team, c.WorkFocus,
		c.Notes, c.LinkedInURL, strconv.Itoa(c.Citations), strconv.Itoa(c.HIndex),
		c.ResearchInterests, string(c.EnrichStatus),
	}
}

// WriteCSV writes the candidate table to path.
func WriteCSV(path string, cands []domain.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, c := range cands {
		if err := w.Write(exportRow(c)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes the candidate table plus a summary sheet to path.
func WriteXLSX(path string, cands []domain.Candidate, st Stats) error {
	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "Candidates"
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(dataSheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range cands {
		row := []any{
			c.Name, c.School, c.GraduationYear, c.ResearchFields,
			c.InitialPlacement, c.InitialRole,
			c.CurrentPlacement, c.CurrentRole, c.Team, c.WorkFocus,
			c.Notes, c.LinkedInURL, c.Citations, c.HIndex,
			c.ResearchInterests, string(c.EnrichStatus),
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return err
		}
	}

	const sumSheet = "Summary"
	if _, err := f.NewSheet(sumSheet); err != nil {
		return err
	}
	r := 1
	writeSection := func(title string, counts []Count) error {
		if err := f.SetCellValue(sumSheet, "A"+strconv.Itoa(r), title); err != nil {
			return err
		}
		r++
		for _, c := range counts {
			row := []any{c.Key, c.N}
			if err := f.SetSheetRow(sumSheet, "A"+strconv.Itoa(r), &row); err != nil {
				return err
			}
			r++
		}
		r++
		return nil
	}
	for _, sec := range []struct {
		title  string
		counts []Count
	}{
		{"By school", st.BySchool},
		{"By company", st.ByCompany},
		{"By year", st.ByYear},
		{"By seniority", st.BySeniority},
	} {
		if err := writeSection(sec.title, sec.counts); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(sumSheet, "A"+strconv.Itoa(r), "Work tags (fractional)"); err != nil {
		return err
	}
	r++
	for _, tw := range st.WorkTags {
		row := []any{tw.Label, tw.Weight}
		if err := f.SetSheetRow(sumSheet, "A"+strconv.Itoa(r), &row); err != nil {
			return err
		}
		r++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save xlsx: %w", err)
	}
	return nil
}

// Render formats a summary for terminal output.
func Render(st Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "candidates: %d (enriched: %d)\n", st.Total, st.Enriched)
	section := func(title string, counts []Count) {
		if len(counts) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n%s:\n", title)
		for _, c := range counts {
			fmt.Fprintf(&sb, "  %-40s %d\n", c.Key, c.N)
		}
	}
	section("by school", st.BySchool)
	section("by company", st.ByCompany)
	section("by year", st.ByYear)
	section("by seniority", st.BySeniority)
	if len(st.WorkTags) > 0 {
		sb.WriteString("\nwork tags (fractional):\n")
		for _, tw := range st.WorkTags {
			fmt.Fprintf(&sb, "  %-40s %.2f\n", tw.Label, tw.Weight)
		}
	}
	if len(st.FocusBigrams) > 0 {
		sb.WriteString("\ncommon focus phrases:\n")
		for _, ng := range st.FocusBigrams {
			fmt.Fprintf(&sb, "  %-40s %d\n", ng.Ngram, ng.Count)
		}
	}
	return sb.String()
}
