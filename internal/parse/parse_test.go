package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads-engine/internal/domain"
	"econgrads-engine/internal/normalize"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestTableHeaderColumnDetection(t *testing.T) {
	d := doc(t, `<table>
		<tr><th>Student</th><th>Research Area</th><th>Placement</th></tr>
		<tr><td>Jane Doe</td><td>Labor Economics</td><td>Amazon</td></tr>
		<tr><td>Wei Chen</td><td>IO</td><td>Assistant Professor, Yale University</td></tr>
	</table>`)

	cands := Tables(d, "Yale")
	require.Len(t, cands, 2)
	assert.Equal(t, "Jane Doe", cands[0].Name)
	assert.Equal(t, "Labor Economics", cands[0].ResearchFields)
	assert.Equal(t, "Amazon", cands[0].InitialPlacement)
	assert.Equal(t, "Wei Chen", cands[1].Name)
}

func TestTablePositionalDefaults(t *testing.T) {
	// Headerless two-column table: first column name, last column placement.
	d := doc(t, `<table>
		<tr><td>Name</td><td>Placement</td></tr>
		<tr><td>Ana Lopez</td><td>Senior Economist, Uber</td></tr>
	</table>`)

	cands := Tables(d, "NYU")
	require.Len(t, cands, 1)
	assert.Equal(t, "Ana Lopez", cands[0].Name)
	assert.Equal(t, "Senior Economist, Uber", cands[0].InitialPlacement)
}

func TestTableYearColumn(t *testing.T) {
	d := doc(t, `<table>
		<tr><th>Name</th><th>Year</th><th>Employer</th></tr>
		<tr><td>Omar Haddad</td><td>2022</td><td>Netflix</td></tr>
	</table>`)

	cands := Tables(d, "Brown")
	require.Len(t, cands, 1)
	assert.Equal(t, 2022, cands[0].GraduationYear)
	assert.Equal(t, "Netflix", cands[0].InitialPlacement)
}

func TestEndToEndFixtureTable(t *testing.T) {
	d := doc(t, `<table>
		<tr><th>Name</th><th>Placement</th></tr>
		<tr><td>Alice Kim</td><td>Senior Economist, Amazon</td></tr>
		<tr><td>Bob Lee</td><td>Assistant Professor, Yale</td></tr>
		<tr><td>2023</td><td>Google</td></tr>
	</table>`)

	// The "2023" row dies at the name gate inside the parser.
	cands := Tables(d, "Harvard")
	require.Len(t, cands, 2)

	// The academia row dies at the classification gate downstream.
	var tech []domain.Candidate
	for _, c := range cands {
		if normalize.IsTechPlacement(c.InitialPlacement) {
			c.InitialPlacement = normalize.NormalizeCompany(c.InitialPlacement)
			tech = append(tech, c)
		}
	}
	require.Len(t, tech, 1)
	assert.Equal(t, "Alice Kim", tech[0].Name)
	assert.Equal(t, "Amazon", tech[0].InitialPlacement)
}

func TestYearHeadedTablesCarryForward(t *testing.T) {
	d := doc(t, `
		<h3>2023 Placement Information</h3>
		<table><tr><th>Name</th><th>Employer</th></tr>
		<tr><td>Ravi Patel</td><td>Stripe</td></tr></table>
		<h3>2021 Placement Information</h3>
		<table><tr><th>Name</th><th>Employer</th></tr>
		<tr><td>Mia Rossi</td><td>Zillow</td></tr></table>`)

	cands := YearHeadedTables(d, "Columbia")
	require.Len(t, cands, 2)
	assert.Equal(t, 2023, cands[0].GraduationYear)
	assert.Equal(t, 2021, cands[1].GraduationYear)
}

func TestCards(t *testing.T) {
	d := doc(t, `
		<div class="views-row">
			<h3><a href="/p/1">Sara Novak</a></h3>
			<div class="research">Market Design</div>
			<div class="placement">Airbnb</div>
		</div>
		<div class="views-row"><h3>Campus Map</h3></div>
		<div class="views-row"><p>no title element</p></div>`)

	cands := Cards(d, "Stanford", CardOptions{SkipWords: []string{"campus map"}})
	require.Len(t, cands, 1)
	assert.Equal(t, "Sara Novak", cands[0].Name)
	assert.Equal(t, "Market Design", cands[0].ResearchFields)
	assert.Equal(t, "Airbnb", cands[0].InitialPlacement)
}

func TestFigures(t *testing.T) {
	d := doc(t, `
		<figure class="caption">
			<img src="x.jpg">
			<figcaption><a href="/p">Tomas Eriksen</a><div>Econometrics</div></figcaption>
		</figure>`)

	cands := Figures(d, "MIT", []string{"mit", "building"})
	require.Len(t, cands, 1)
	assert.Equal(t, "Tomas Eriksen", cands[0].Name)
}

func TestSplitPair(t *testing.T) {
	name, placement, ok := SplitPair("Jane Doe - Senior Economist, Amazon")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "Senior Economist, Amazon", placement)

	name, placement, ok = SplitPair("Li Wei, Google")
	require.True(t, ok)
	assert.Equal(t, "Li Wei", name)
	assert.Equal(t, "Google", placement)

	_, _, ok = SplitPair("no separator here at all")
	assert.False(t, ok)

	// Long single token on the left is not a name.
	_, _, ok = SplitPair("https://econ.example.edu/placement-archive: 2019 and earlier")
	assert.False(t, ok)
}

func TestYearListsCarriedForwardYear(t *testing.T) {
	d := doc(t, `
		<h3>2023</h3>
		<li>Jane Doe - Amazon</li>
		<li>John Roe - Lyft</li>
		<h3>2022</h3>
		<li>Ada King - Meta</li>
		<li>Outside Any Section</li>`)

	cands := YearLists(d, "Brown")
	require.Len(t, cands, 3)
	assert.Equal(t, 2023, cands[0].GraduationYear)
	assert.Equal(t, 2023, cands[1].GraduationYear)
	assert.Equal(t, 2022, cands[2].GraduationYear)
}

func TestYearListsIgnoresLinesBeforeFirstHeading(t *testing.T) {
	d := doc(t, `<li>Early Bird - Google</li><h3>2024</h3><li>Late Bird - Google</li>`)
	cands := YearLists(d, "Duke")
	require.Len(t, cands, 1)
	assert.Equal(t, "Late Bird", cands[0].Name)
}

func TestDefinitionLists(t *testing.T) {
	d := doc(t, `<dl>
		<dt>Nora Berg</dt><dd>Economist, Spotify (2023)</dd>
		<dt>Tim Holt</dt><dd>Postdoc, NBER</dd>
	</dl>`)

	cands := DefinitionLists(d, "Harvard")
	require.Len(t, cands, 2)
	assert.Equal(t, "Nora Berg", cands[0].Name)
	assert.Equal(t, "Economist, Spotify (2023)", cands[0].InitialPlacement)
	assert.Equal(t, 2023, cands[0].GraduationYear)
}

func TestAccordionsYearHeader(t *testing.T) {
	d := doc(t, `<div class="accordion-item">
		<div class="accordion-header">2022 Placements</div>
		<div class="accordion-body">
			<li>Ines Duarte - Two Sigma</li>
		</div>
	</div>`)

	cands := Accordions(d, "Maryland", AccordionOptions{})
	require.Len(t, cands, 1)
	assert.Equal(t, "Ines Duarte", cands[0].Name)
	assert.Equal(t, 2022, cands[0].GraduationYear)
}

func TestAccordionsNameHeader(t *testing.T) {
	d := doc(t, `<div class="accordion-item">
		<button>Priya Raman</button>
		<div class="accordion-body">
			<div class="placement">Economist, DoorDash</div>
			<div class="research">Pricing</div>
		</div>
	</div>`)

	cands := Accordions(d, "Yale", AccordionOptions{HeaderSel: "button"})
	require.Len(t, cands, 1)
	assert.Equal(t, "Priya Raman", cands[0].Name)
	assert.Equal(t, "Economist, DoorDash", cands[0].InitialPlacement)
}

func TestFreeTextPrivateSectorGating(t *testing.T) {
	text := strings.Join([]string{
		"2023 – 2024",
		"Academic Placements",
		"Yale University Assistant Professor Sam Apple",
		"Private Sector",
		"Amazon (3) international trade Maria Cuevas",
		"Google economics of platforms Dev Sharma",
		"Academic and Post-Doc",
		"Uber but this line is outside the section Ghost Entry",
	}, "\n")

	cands := FreeText("University of Chicago", text)
	require.Len(t, cands, 2)
	assert.Equal(t, "Maria Cuevas", cands[0].Name)
	assert.Equal(t, "Amazon", cands[0].InitialPlacement)
	assert.Equal(t, 2023, cands[0].GraduationYear)
	assert.Equal(t, "Dev Sharma", cands[1].Name)
	assert.Equal(t, "Google", cands[1].InitialPlacement)
}

func TestFreeTextSeparatorFallback(t *testing.T) {
	text := "2022\nHana Sato - Economist, Pinterest\nRob Muir - Assistant Professor, MIT\n"
	cands := FreeText("Duke", text)
	require.Len(t, cands, 1)
	assert.Equal(t, "Hana Sato", cands[0].Name)
	assert.Equal(t, 2022, cands[0].GraduationYear)
}

func TestGenericUnionsStrategies(t *testing.T) {
	d := doc(t, `
		<table><tr><th>Name</th><th>Placement</th></tr>
		<tr><td>Ben Okafor</td><td>Databricks</td></tr></table>
		<div class="views-row"><h3>Lena Fischer</h3><div class="placement">Coinbase</div></div>
		<div class="views-row"><h3>Ben Okafor</h3><div class="placement">Duplicate Entry</div></div>`)

	g := NewGeneric("Cornell")
	cands := g.Parse(d)
	require.Len(t, cands, 2)
	// Table strategy runs first, so its extraction wins the name collision.
	assert.Equal(t, "Databricks", cands[0].InitialPlacement)
	assert.Equal(t, "Lena Fischer", cands[1].Name)
}

func TestNewCandidateDefaults(t *testing.T) {
	cand, ok := NewCandidate("MIT", "  Jane  Doe ", " Amazon ", 0, "")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", cand.Name)
	assert.Equal(t, "Amazon", cand.InitialPlacement)
	assert.Equal(t, time.Now().Year(), cand.GraduationYear)
	assert.Equal(t, domain.EnrichNotStarted, cand.EnrichStatus)

	_, ok = NewCandidate("MIT", "2023", "Google", 0, "")
	assert.False(t, ok)
}

func TestCollectorFirstWins(t *testing.T) {
	col := NewCollector()
	a, _ := NewCandidate("Yale", "John Smith", "Amazon", 2023, "")
	b, _ := NewCandidate("Yale", "john smith", "Google", 2024, "")
	col.Add(a)
	col.Add(b)
	require.Equal(t, 1, col.Len())
	assert.Equal(t, "Amazon", col.Records()[0].InitialPlacement)
}
