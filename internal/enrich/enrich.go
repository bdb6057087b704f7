// Package enrich fills in candidates' current-employment fields through an
// external search-capable lookup, one record at a time, persisting after
// every record so interrupted batches resume where they stopped.
package enrich

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
	"econgrads-engine/internal/store"
)

// ErrNotConfigured is returned when no enrichment credentials are
// available. Callers treat it as "skip enrichment", not as a failure.
var ErrNotConfigured = errors.New("enrich: provider not configured")

// Query identifies one candidate for lookup.
type Query struct {
	Name    string
	School  string
	Company string // initial placement, for disambiguation
	Fields  string // research fields, for disambiguation
}

// Info is one lookup result. Empty strings mean the provider could not
// determine the field.
type Info struct {
	CurrentRole       string
	CurrentCompany    string
	Team              string
	WorkFocus         string
	Notes             string
	LinkedInURL       string
	Citations         int
	HIndex            int
	ResearchInterests string
}

// Provider performs one candidate lookup. Implementations may be slow
// and must respect ctx.
type Provider interface {
	Lookup(ctx context.Context, q Query) (Info, error)
}

type Options struct {
	// Force re-enriches records already marked complete.
	Force bool
	// WorkFocusOnly backfills only the work-focus field, skipping records
	// that already have one.
	WorkFocusOnly bool
	// School restricts the pass to one school.
	School string
	// Delay paces provider calls; zero means 1s.
	Delay time.Duration
}

type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Run enriches every stored candidate sequentially. Provider failures
// mark the record with error status and placeholders so the batch keeps
// going and a later run retries.
func Run(ctx context.Context, db *sql.DB, p Provider, opts Options) (Summary, error) {
	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}

	cands, err := store.ListCandidates(ctx, db, store.ListOpts{School: opts.School})
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for i, c := range cands {
		if skip(c, opts) {
			sum.Skipped++
			continue
		}

		if i > 0 {
			select {
			case <-ctx.Done():
				return sum, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}

		log.Printf("[enrich] %s (%s) %d/%d", c.Name, c.School, i+1, len(cands))
		info, lerr := p.Lookup(ctx, Query{
			Name:    c.Name,
			School:  c.School,
			Company: c.InitialPlacement,
			Fields:  c.ResearchFields,
		})
		if lerr != nil {
			log.Printf("[enrich] %s: lookup failed: %v", c.Name, lerr)
			c = markFailed(c)
			sum.Failed++
		} else {
			c = apply(c, info, opts.WorkFocusOnly)
			sum.Processed++
		}

		if uerr := store.UpdateEnrichment(ctx, db, c); uerr != nil {
			return sum, uerr
		}
	}

	log.Printf("[enrich] done: processed=%d skipped=%d failed=%d",
		sum.Processed, sum.Skipped, sum.Failed)
	return sum, nil
}

func skip(c domain.Candidate, opts Options) bool {
	if opts.Force {
		return false
	}
	if opts.WorkFocusOnly {
		return c.WorkFocus != ""
	}
	return c.EnrichStatus == domain.EnrichComplete
}

func apply(c domain.Candidate, info Info, workFocusOnly bool) domain.Candidate {
	if workFocusOnly {
		c.WorkFocus = info.WorkFocus
		if c.EnrichStatus == domain.EnrichNotStarted || c.EnrichStatus == domain.EnrichError {
			c.EnrichStatus = domain.EnrichPartial
		}
		return c
	}

	c.CurrentPlacement = normalize.StandardizeCurrentPlacement(info.CurrentCompany)
	c.CurrentRole = info.CurrentRole
	c.Team = info.Team
	c.WorkFocus = info.WorkFocus
	c.Notes = info.Notes
	c.LinkedInURL = info.LinkedInURL
	c.Citations = info.Citations
	c.HIndex = info.HIndex
	c.ResearchInterests = info.ResearchInterests

	if c.CurrentPlacement != "" && c.CurrentRole != "" {
		c.EnrichStatus = domain.EnrichComplete
	} else {
		c.EnrichStatus = domain.EnrichPartial
	}
	return c
}

// markFailed writes placeholders so the record is visibly attempted but
// recognized as retryable next run.
func markFailed(c domain.Candidate) domain.Candidate {
	if c.CurrentPlacement == "" {
		c.CurrentPlacement = "Unknown"
	}
	if c.CurrentRole == "" {
		c.CurrentRole = "Unknown"
	}
	c.EnrichStatus = domain.EnrichError
	return c
}
