package store

import "database/sql"

func Migrate(db *sql.DB) error {

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS candidates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  name_key TEXT NOT NULL,
  school TEXT NOT NULL,
  grad_year INTEGER NOT NULL DEFAULT 0,
  research_fields TEXT NOT NULL DEFAULT '',
  initial_placement TEXT NOT NULL DEFAULT '',
  initial_role TEXT NOT NULL DEFAULT '',
  current_placement TEXT NOT NULL DEFAULT '',
  current_role TEXT NOT NULL DEFAULT '',
  team TEXT NOT NULL DEFAULT '',
  work_focus TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  linkedin_url TEXT NOT NULL DEFAULT '',
  citations INTEGER NOT NULL DEFAULT 0,
  h_index INTEGER NOT NULL DEFAULT 0,
  research_interests TEXT NOT NULL DEFAULT '',
  enrich_status TEXT NOT NULL DEFAULT 'not_started',
  updated_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS pages (
  url TEXT PRIMARY KEY,
  school TEXT NOT NULL,
  content_hash TEXT NOT NULL,
  last_scraped TEXT NOT NULL
);
`); err != nil {
		return err
	}

	// ---- Schema v1: indexes ----

	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_candidates_identity
ON candidates(name_key, school);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_candidates_school
ON candidates(school);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_candidates_year
ON candidates(grad_year);
`); err != nil {
		return err
	}

	// Mark schema v1
	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
