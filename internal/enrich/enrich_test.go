package enrich

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/store"
)

type fakeProvider struct {
	info    Info
	err     error
	lookups []string
}

func (f *fakeProvider) Lookup(_ context.Context, q Query) (Info, error) {
	f.lookups = append(f.lookups, q.Name)
	return f.info, f.err
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))
	return db
}

func seed(t *testing.T, db *store.DB, cands ...domain.Candidate) {
	t.Helper()
	for _, c := range cands {
		_, err := store.UpsertCandidate(context.Background(), db.Pool, c)
		require.NoError(t, err)
	}
}

func TestRunEnrichesAndPersists(t *testing.T) {
	db := testDB(t)
	seed(t, db, domain.Candidate{Name: "Alice Kim", School: "MIT", InitialPlacement: "Google"})

	p := &fakeProvider{info: Info{
		CurrentRole:    "Senior Economist",
		CurrentCompany: "Facebook",
		WorkFocus:      "pricing",
		Citations:      120,
	}}
	sum, err := Run(context.Background(), db.Pool, p, Options{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)

	got, err := store.ListCandidates(context.Background(), db.Pool, store.ListOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Meta", got[0].CurrentPlacement) // standardized
	assert.Equal(t, "Senior Economist", got[0].CurrentRole)
	assert.Equal(t, 120, got[0].Citations)
	assert.Equal(t, domain.EnrichComplete, got[0].EnrichStatus)
}

func TestRunSkipsCompleteUnlessForced(t *testing.T) {
	db := testDB(t)
	seed(t, db, domain.Candidate{Name: "Alice Kim", School: "MIT"})

	p := &fakeProvider{info: Info{CurrentRole: "Economist", CurrentCompany: "Uber"}}
	_, err := Run(context.Background(), db.Pool, p, Options{Delay: time.Millisecond})
	require.NoError(t, err)
	require.Len(t, p.lookups, 1)

	sum, err := Run(context.Background(), db.Pool, p, Options{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Skipped)
	assert.Len(t, p.lookups, 1) // provider not invoked again

	sum, err = Run(context.Background(), db.Pool, p, Options{Force: true, Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Len(t, p.lookups, 2)
}

func TestRunFailureWritesPlaceholderAndRetries(t *testing.T) {
	db := testDB(t)
	seed(t, db, domain.Candidate{Name: "Bob Lee", School: "Yale"})

	p := &fakeProvider{err: errors.New("rate limited")}
	sum, err := Run(context.Background(), db.Pool, p, Options{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Failed)

	got, err := store.ListCandidates(context.Background(), db.Pool, store.ListOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].CurrentPlacement)
	assert.Equal(t, domain.EnrichError, got[0].EnrichStatus)

	// Error status is retryable.
	p.err = nil
	p.info = Info{CurrentRole: "Economist", CurrentCompany: "Stripe"}
	sum, err = Run(context.Background(), db.Pool, p, Options{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
}

func TestRunWorkFocusOnly(t *testing.T) {
	db := testDB(t)
	seed(t, db,
		domain.Candidate{Name: "Has Focus", School: "MIT"},
		domain.Candidate{Name: "Needs Focus", School: "MIT"},
	)

	ctx := context.Background()
	c := domain.Candidate{Name: "Has Focus", School: "MIT", WorkFocus: "marketplace", EnrichStatus: domain.EnrichComplete}
	require.NoError(t, store.UpdateEnrichment(ctx, db.Pool, c))

	p := &fakeProvider{info: Info{WorkFocus: "experimentation", CurrentRole: "ignored"}}
	sum, err := Run(ctx, db.Pool, p, Options{WorkFocusOnly: true, Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, []string{"Needs Focus"}, p.lookups)

	got, err := store.ListCandidates(ctx, db.Pool, store.ListOpts{})
	require.NoError(t, err)
	for _, g := range got {
		if g.Name == "Needs Focus" {
			assert.Equal(t, "experimentation", g.WorkFocus)
			assert.Empty(t, g.CurrentRole) // only the focus field is written
			assert.Equal(t, domain.EnrichPartial, g.EnrichStatus)
		}
	}
}

func TestParseInfoStripsFences(t *testing.T) {
	raw := "```json\n{\"current_role\": \"Economist\", \"current_company\": \"Netflix\", \"citations\": 42}\n```"
	info, err := parseInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "Economist", info.CurrentRole)
	assert.Equal(t, "Netflix", info.CurrentCompany)
	assert.Equal(t, 42, info.Citations)
}

func TestParseInfoRejectsProse(t *testing.T) {
	_, err := parseInfo("I could not find this person.")
	assert.Error(t, err)
}

func TestNewGeminiNotConfigured(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
