package scrape

import (
	"context"
	"database/sql"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"econgrads-engine/internal/fetch"
	"econgrads-engine/internal/store"
)

// PageFetcher is satisfied by fetch.Client; tests substitute a fake.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Renderer is the optional browser path. When the plain fetch parses to
// zero candidates, a fetcher that can render gets one more shot at the
// page; some departments hydrate the whole roster client-side without
// tripping the JS-shell heuristics.
type Renderer interface {
	Render(ctx context.Context, url string) ([]byte, error)
}

type Options struct {
	// Force re-extracts even when the page content hash is unchanged.
	Force bool
	// School restricts the run to one school by name.
	School string
	// Concurrency bounds parallel sources; zero means 4.
	Concurrency int
	// Timeout bounds one source end to end; zero means 3 minutes.
	Timeout time.Duration
}

// RunOnce scrapes every source once. Sources are fetched concurrently
// and fail independently; a school whose page breaks shows up in the
// summary but never blocks the others.
func RunOnce(ctx context.Context, db *sql.DB, f PageFetcher, sources []Source, opts Options) Summary {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Minute
	}

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)

	results := make(chan SourceResult, len(sources))

	for _, src := range sources {
		if opts.School != "" && src.School != opts.School {
			continue
		}
		src := src

		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, opts.Timeout)
			defer cancel()

			log.Printf("[scrape:%s] fetching %s", src.School, src.URL)
			res := runSource(sctx, db, f, src, opts.Force)
			if res.Err != nil {
				log.Printf("[scrape:%s] error: %v", src.School, res.Err)
			}
			results <- res
			return nil // best-effort: don't cancel siblings
		})
	}

	_ = g.Wait()
	close(results)

	var sum Summary
	for res := range results {
		sum.add(res)
	}
	log.Printf("[scrape] done: parsed=%d kept=%d added=%d skipped=%d failed=%d",
		sum.Parsed, sum.Kept, sum.Added, sum.Skipped, sum.Failed)
	return sum
}

func runSource(ctx context.Context, db *sql.DB, f PageFetcher, src Source, force bool) SourceResult {
	res := SourceResult{School: src.School, URL: src.URL}

	body, err := f.Fetch(ctx, src.URL)
	if err != nil {
		res.Err = err
		return res
	}

	hash := fetch.ContentHash(body)
	if !force {
		prev, err := store.PageHash(ctx, db, src.URL)
		if err != nil {
			res.Err = err
			return res
		}
		if prev == hash {
			log.Printf("[scrape:%s] unchanged, skipping", src.School)
			res.Skipped = true
			return res
		}
	}

	doc, err := BuildDocument(src, body)
	if err != nil {
		res.Err = err
		return res
	}

	cands, err := Extract(doc)
	if err != nil {
		res.Err = err
		return res
	}

	if len(cands) == 0 && !doc.IsPDF() {
		if r, ok := f.(Renderer); ok {
			log.Printf("[scrape:%s] zero candidates from static fetch, rendering", src.School)
			// The stored hash stays the static body's: that is what the
			// next run's change check fetches and compares against.
			if rendered, rerr := r.Render(ctx, src.URL); rerr == nil {
				doc.HTML = rendered
				if c2, e2 := Extract(doc); e2 == nil {
					cands = c2
				}
			} else {
				log.Printf("[scrape:%s] render failed: %v", src.School, rerr)
			}
		}
	}
	res.Parsed = len(cands)

	kept := FilterTech(cands)
	res.Kept = len(kept)

	for _, c := range kept {
		added, err := store.UpsertCandidate(ctx, db, c)
		if err != nil {
			res.Err = err
			return res
		}
		if added {
			res.Added++
		}
	}

	// Only a fully persisted source counts as scraped; a crash above
	// leaves the hash stale and the source retried next run.
	if err := store.SetPageHash(ctx, db, src.URL, src.School, hash); err != nil {
		res.Err = err
		return res
	}

	log.Printf("[scrape:%s] parsed=%d kept=%d added=%d", src.School, res.Parsed, res.Kept, res.Added)
	return res
}
