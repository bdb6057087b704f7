package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"econgrads-engine/internal/config"
	"econgrads-engine/internal/enrich"
	"econgrads-engine/internal/fetch"
	"econgrads-engine/internal/normalize"
	"econgrads-engine/internal/report"
	"econgrads-engine/internal/scrape"
	"econgrads-engine/internal/secrets"
	"econgrads-engine/internal/store"
)

func main() {
	var (
		doScrape      = flag.Bool("scrape", false, "fetch and extract placement pages")
		doEnrich      = flag.Bool("enrich", false, "fill in current-employment fields via lookup")
		doReport      = flag.Bool("report", false, "print summary statistics and quality findings")
		force         = flag.Bool("force", false, "ignore cached page state / re-enrich completed records")
		workFocusOnly = flag.Bool("work-focus-only", false, "enrich only the work-focus field")
		school        = flag.String("school", "", "restrict scrape/enrich to one school")
		csvPath       = flag.String("csv", "", "export the candidate table as CSV to this path")
		xlsxPath      = flag.String("xlsx", "", "export the candidate table as XLSX to this path")
	)
	flag.Parse()

	if !*doScrape && !*doEnrich && !*doReport && *csvPath == "" && *xlsxPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(options{
		scrape:        *doScrape,
		enrich:        *doEnrich,
		report:        *doReport,
		force:         *force,
		workFocusOnly: *workFocusOnly,
		school:        *school,
		csvPath:       *csvPath,
		xlsxPath:      *xlsxPath,
	}); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	scrape        bool
	enrich        bool
	report        bool
	force         bool
	workFocusOnly bool
	school        string
	csvPath       string
	xlsxPath      string
}

func run(opts options) error {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("ECONGRADS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// One run at a time per data dir; two writers would race the state
	// table and double-spend enrichment calls.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire data dir lock: %w", err)
	}
	if !locked {
		return errors.New("another run is already using this data dir")
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.OverlaySchools(&cfg, filepath.Join(dataDir, "schools.yml")); err != nil {
		return fmt.Errorf("schools overlay failed: %v", err)
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !v.OK() {
		return fmt.Errorf("config invalid: %v", v.Errors)
	}

	normalize.AddTechCompanies(cfg.Classify.ExtraTechCompanies)

	db, err := store.Open(filepath.Join(dataDir, "econgrads.db"))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		return err
	}

	ctx := context.Background()

	if opts.scrape {
		if err := runScrape(ctx, db, cfg, opts); err != nil {
			return err
		}
	}
	if opts.enrich {
		if err := runEnrich(ctx, db, cfg, opts); err != nil {
			return err
		}
	}
	if opts.report {
		if err := runReport(ctx, db); err != nil {
			return err
		}
	}
	if opts.csvPath != "" || opts.xlsxPath != "" {
		if err := runExport(ctx, db, opts.csvPath, opts.xlsxPath); err != nil {
			return err
		}
	}
	return nil
}

func runScrape(ctx context.Context, db *store.DB, cfg config.Config, opts options) error {
	fcfg := fetch.Config{
		ReqPerSec: cfg.Fetch.ReqPerSec,
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
	}
	if cfg.Fetch.SaveRaw {
		dataDir := os.Getenv("ECONGRADS_DATA_DIR")
		if dataDir == "" {
			dataDir = "."
		}
		fcfg.RawDir = filepath.Join(dataDir, "raw")
	}
	client := fetch.NewClient(fcfg)
	defer client.Close()

	var sources []scrape.Source
	for _, s := range cfg.Schools {
		for _, u := range s.URLs {
			sources = append(sources, scrape.Source{School: s.Name, URL: u})
		}
	}

	// Per-source failures only lower counts; they never fail the run.
	scrape.RunOnce(ctx, db.Pool, client, sources, scrape.Options{
		Force:       opts.force,
		School:      opts.school,
		Concurrency: cfg.Fetch.Concurrency,
	})
	return nil
}

func runEnrich(ctx context.Context, db *store.DB, cfg config.Config, opts options) error {
	key, err := secrets.GetGeminiKey()
	if err != nil {
		return err
	}
	provider, err := enrich.NewGemini(ctx, key, cfg.Enrich.Model)
	if err != nil {
		return err
	}
	defer provider.Close()

	_, err = enrich.Run(ctx, db.Pool, provider, enrich.Options{
		Force:         opts.force,
		WorkFocusOnly: opts.workFocusOnly,
		School:        opts.school,
		Delay:         time.Duration(cfg.Enrich.DelaySeconds) * time.Second,
	})
	return err
}

func runReport(ctx context.Context, db *store.DB) error {
	cands, err := store.ListCandidates(ctx, db.Pool, store.ListOpts{})
	if err != nil {
		return err
	}
	fmt.Print(report.Render(report.Summarize(cands)))

	issues := report.Quality(cands)
	if len(issues) > 0 {
		fmt.Printf("\nquality findings (%d):\n", len(issues))
		for _, is := range issues {
			fmt.Printf("  [%s] %s\n", is.Kind, is.Detail)
		}
	}
	return nil
}

func runExport(ctx context.Context, db *store.DB, csvPath, xlsxPath string) error {
	cands, err := store.ListCandidates(ctx, db.Pool, store.ListOpts{})
	if err != nil {
		return err
	}
	if csvPath != "" {
		if err := report.WriteCSV(csvPath, cands); err != nil {
			return err
		}
		log.Printf("[export] wrote %d records to %s", len(cands), csvPath)
	}
	if xlsxPath != "" {
		if err := report.WriteXLSX(xlsxPath, cands, report.Summarize(cands)); err != nil {
			return err
		}
		log.Printf("[export] wrote %d records to %s", len(cands), xlsxPath)
	}
	return nil
}
