package scrape

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/store"
)

const tableFixture = `<html><body><table>
<tr><th>Name</th><th>Placement</th><th>Year</th></tr>
<tr><td>Alice Kim</td><td>Google Research</td><td>2023</td></tr>
<tr><td>Bob Lee</td><td>Assistant Professor, Cornell</td><td>2023</td></tr>
</table></body></html>`

type fakeFetcher struct {
	pages map[string][]byte
	calls map[string]int
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[url]++
	body, ok := f.pages[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return body, nil
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))
	return db
}

func TestRunOncePartialFailure(t *testing.T) {
	db := testDB(t)
	f := &fakeFetcher{pages: map[string][]byte{
		"https://ok.example.edu/placements": []byte(tableFixture),
	}}
	sources := []Source{
		{School: "Cornell", URL: "https://ok.example.edu/placements"},
		{School: "Duke", URL: "https://down.example.edu/placements"},
	}

	sum := RunOnce(context.Background(), db.Pool, f, sources, Options{})
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 2, sum.Parsed)
	assert.Equal(t, 1, sum.Kept) // academic placement filtered
	assert.Equal(t, 1, sum.Added)

	got, err := store.ListCandidates(context.Background(), db.Pool, store.ListOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Kim", got[0].Name)
	assert.Equal(t, "Google", got[0].InitialPlacement)
	assert.Equal(t, 2023, got[0].GraduationYear)
}

func TestRunOnceSkipsUnchanged(t *testing.T) {
	db := testDB(t)
	f := &fakeFetcher{pages: map[string][]byte{
		"https://ok.example.edu/placements": []byte(tableFixture),
	}}
	sources := []Source{{School: "Cornell", URL: "https://ok.example.edu/placements"}}

	sum := RunOnce(context.Background(), db.Pool, f, sources, Options{})
	assert.Equal(t, 1, sum.Added)

	sum = RunOnce(context.Background(), db.Pool, f, sources, Options{})
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 0, sum.Added)

	// Force re-extracts; the record already exists so nothing is added.
	sum = RunOnce(context.Background(), db.Pool, f, sources, Options{Force: true})
	assert.Equal(t, 0, sum.Skipped)
	assert.Equal(t, 1, sum.Kept)
	assert.Equal(t, 0, sum.Added)
}

func TestRunOnceSchoolFilter(t *testing.T) {
	db := testDB(t)
	f := &fakeFetcher{pages: map[string][]byte{
		"https://a.example.edu": []byte(tableFixture),
		"https://b.example.edu": []byte(tableFixture),
	}}
	sources := []Source{
		{School: "Cornell", URL: "https://a.example.edu"},
		{School: "Duke", URL: "https://b.example.edu"},
	}

	RunOnce(context.Background(), db.Pool, f, sources, Options{School: "Duke"})
	assert.Zero(t, f.calls["https://a.example.edu"])
	assert.Equal(t, 1, f.calls["https://b.example.edu"])
}

type renderingFetcher struct {
	fakeFetcher
	rendered []byte
	renders  int
}

func (f *renderingFetcher) Render(_ context.Context, _ string) ([]byte, error) {
	f.renders++
	return f.rendered, nil
}

func TestRunOnceRendersWhenStaticParseEmpty(t *testing.T) {
	db := testDB(t)
	// Static body carries no parseable rows; the rendered DOM does.
	f := &renderingFetcher{
		fakeFetcher: fakeFetcher{pages: map[string][]byte{
			"https://js.example.edu": []byte("<html><body><div id=app>loading</div></body></html>"),
		}},
		rendered: []byte(tableFixture),
	}

	sum := RunOnce(context.Background(), db.Pool, f, []Source{
		{School: "Cornell", URL: "https://js.example.edu"},
	}, Options{})
	assert.Equal(t, 1, f.renders)
	assert.Equal(t, 2, sum.Parsed)
	assert.Equal(t, 1, sum.Added)
}

func TestExtractPDFUsesFreeText(t *testing.T) {
	doc := domain.SourceDocument{
		School: "University of Chicago",
		Text:   "2023 - 2024\nPrivate Sector\nAmazon (3) international trade Maria Cuevas",
	}
	cands, err := Extract(doc)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "Maria Cuevas", cands[0].Name)
	assert.Equal(t, "Amazon", cands[0].InitialPlacement)
}

func TestFilterTechNormalizesCompany(t *testing.T) {
	out := FilterTech([]domain.Candidate{
		{Name: "A", InitialPlacement: "Facebook"},
		{Name: "B", InitialPlacement: "Assistant Professor, MIT"},
		{Name: "C", InitialPlacement: "TBD"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Meta", out[0].InitialPlacement)
}

func TestBuildDocumentHTML(t *testing.T) {
	doc, err := BuildDocument(Source{School: "MIT", URL: "u"}, []byte("<html></html>"))
	require.NoError(t, err)
	assert.False(t, doc.IsPDF())
	assert.NotEmpty(t, doc.HTML)
}
