package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

// candidateCols matches the scan order in scanCandidate.
const candidateCols = `name, school, grad_year, research_fields, initial_placement, initial_role,
current_placement, current_role, team, work_focus, notes, linkedin_url,
citations, h_index, research_interests, enrich_status`

// UpsertCandidate writes the scraped fields for one candidate. A record
// is identified by (lowercased name, school); on conflict the scraped
// columns are refreshed while enrichment columns are left alone, so
// re-scraping never wipes enrichment work. The insert and its changes()
// check run in one transaction, which pins the pool's single connection
// until commit; concurrent sources therefore agree on who added a row.
func UpsertCandidate(ctx context.Context, db *sql.DB, c domain.Candidate) (added bool, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("upsert candidate: begin: %w", err)
	}
	defer tx.Rollback()

	key := normalize.NameKey(c.Name)
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.ExecContext(ctx, `
INSERT OR IGNORE INTO candidates (name, name_key, school, grad_year, research_fields,
  initial_placement, initial_role, enrich_status, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		c.Name, key, c.School, c.GraduationYear, c.ResearchFields,
		c.InitialPlacement, c.InitialRole, string(domain.EnrichNotStarted), now,
	)
	if err != nil {
		return false, fmt.Errorf("upsert candidate: %w", err)
	}

	var changed int
	if err := tx.QueryRowContext(ctx, `SELECT changes();`).Scan(&changed); err != nil {
		return false, fmt.Errorf("upsert candidate: %w", err)
	}

	if changed == 0 {
		_, err = tx.ExecContext(ctx, `
UPDATE candidates SET
  grad_year = ?,
  research_fields = ?,
  initial_placement = ?,
  initial_role = ?,
  updated_at = ?
WHERE name_key = ? AND school = ?;`,
			c.GraduationYear, c.ResearchFields, c.InitialPlacement, c.InitialRole,
			now, key, c.School,
		)
		if err != nil {
			return false, fmt.Errorf("upsert candidate: refresh: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("upsert candidate: commit: %w", err)
	}
	return changed > 0, nil
}

// UpdateEnrichment writes a candidate's enrichment columns and status.
func UpdateEnrichment(ctx context.Context, db *sql.DB, c domain.Candidate) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.ExecContext(ctx, `
UPDATE candidates SET
  current_placement = ?,
  current_role = ?,
  team = ?,
  work_focus = ?,
  notes = ?,
  linkedin_url = ?,
  citations = ?,
  h_index = ?,
  research_interests = ?,
  enrich_status = ?,
  updated_at = ?
WHERE name_key = ? AND school = ?;`,
		c.CurrentPlacement, c.CurrentRole, c.Team, c.WorkFocus, c.Notes,
		c.LinkedInURL, c.Citations, c.HIndex, c.ResearchInterests,
		string(c.EnrichStatus), now,
		normalize.NameKey(c.Name), c.School,
	)
	if err != nil {
		return fmt.Errorf("update enrichment: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("update enrichment: no candidate %q at %q", c.Name, c.School)
	}
	return nil
}

type ListOpts struct {
	School string // filter; empty means all
	Year   int    // filter; zero means all
}

func ListCandidates(ctx context.Context, db *sql.DB, opts ListOpts) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateCols + ` FROM candidates`
	var where []string
	var args []any
	if opts.School != "" {
		where = append(where, "school = ?")
		args = append(args, opts.School)
	}
	if opts.Year != 0 {
		where = append(where, "grad_year = ?")
		args = append(args, opts.Year)
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY school, name;"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCandidate(rows *sql.Rows) (domain.Candidate, error) {
	var c domain.Candidate
	var status string
	err := rows.Scan(
		&c.Name, &c.School, &c.GraduationYear, &c.ResearchFields,
		&c.InitialPlacement, &c.InitialRole,
		&c.CurrentPlacement, &c.CurrentRole, &c.Team, &c.WorkFocus,
		&c.Notes, &c.LinkedInURL, &c.Citations, &c.HIndex,
		&c.ResearchInterests, &status,
	)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("scan candidate: %w", err)
	}
	c.EnrichStatus = domain.EnrichmentStatus(status)
	return c, nil
}

func CountCandidates(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates;`).Scan(&n)
	return n, err
}
