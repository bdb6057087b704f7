package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PageHash returns the content hash recorded for a URL, or "" when the
// URL has never been scraped successfully.
func PageHash(ctx context.Context, db *sql.DB, url string) (string, error) {
	var h string
	err := db.QueryRowContext(ctx,
		`SELECT content_hash FROM pages WHERE url = ?;`, url).Scan(&h)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("page hash: %w", err)
	}
	return h, nil
}

// SetPageHash records a completed scrape of a URL. Callers must only
// write this after extraction and persistence succeed, so a crashed run
// is retried from scratch next time.
func SetPageHash(ctx context.Context, db *sql.DB, url, school, hash string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.ExecContext(ctx, `
INSERT INTO pages (url, school, content_hash, last_scraped)
VALUES (?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
  content_hash = excluded.content_hash,
  last_scraped = excluded.last_scraped;`,
		url, school, hash, now)
	if err != nil {
		return fmt.Errorf("set page hash: %w", err)
	}
	return nil
}
