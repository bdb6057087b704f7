package schools

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestRegistryRouting(t *testing.T) {
	assert.True(t, HasBespoke("MIT"))
	assert.Equal(t, "MIT", For("MIT").School())

	assert.False(t, HasBespoke("Cornell"))
	assert.Equal(t, "Cornell", For("Cornell").School())
}

func TestPennWhartonSyntheticNames(t *testing.T) {
	d := doc(t, `<html><body>
<h1>Wharton Doctoral Career Placement</h1>
<h3>Applied Economics</h3>
<h3>2023</h3>
<li>Amazon</li>
<li>Netflix</li>
<h3>2022</h3>
<li>Amazon</li>
</body></html>`)

	cands := (&Penn{}).Parse(d)
	require.Len(t, cands, 3)

	names := map[string]bool{}
	for _, c := range cands {
		names[c.Name] = true
		assert.Equal(t, "University of Pennsylvania", c.School)
	}
	// Same company in different cohorts stays distinct.
	assert.True(t, names["Wharton PhD (2023) Amazon"])
	assert.True(t, names["Wharton PhD (2023) Netflix"])
	assert.True(t, names["Wharton PhD (2022) Amazon"])
}

func TestCMUTracksProgramHeadings(t *testing.T) {
	d := doc(t, `<html><body>
<h2>Economics</h2>
<table>
<tr><th>Name</th><th>Placement</th></tr>
<tr><td>Lena Ortiz</td><td>Uber</td></tr>
</table>
</body></html>`)

	cands := (&CMU{}).Parse(d)
	require.NotEmpty(t, cands)
	assert.Equal(t, "Lena Ortiz", cands[0].Name)
	assert.Equal(t, "Uber", cands[0].InitialPlacement)
	assert.Equal(t, "Economics", cands[0].ResearchFields)
}
