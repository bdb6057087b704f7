package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompanyAliases(t *testing.T) {
	cases := map[string]string{
		"Facebook":           "Meta",
		"Facebook Inc":       "Meta",
		"Meta Platforms Inc": "Meta",
		"Twitter":            "X",
		"Square":             "Block",
		"Cash App":           "Block",
		"Amazon Web Services, Seattle": "Amazon",
		"Economist, Amazon":            "Amazon",
		"DeepMind":                     "DeepMind", // subsidiary stays separate
		"LinkedIn":                     "LinkedIn", // no alias entry at all
		"TripActions":                  "Navan",
		"  Stripe  ":                   "Stripe",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCompany(in), "input %q", in)
	}
}

func TestNormalizeCompanyIdempotent(t *testing.T) {
	inputs := []string{
		"Facebook", "Twitter", "Square", "Google", "DeepMind",
		"Senior Economist, Amazon Web Services", "Some Startup", "",
	}
	for _, in := range inputs {
		once := NormalizeCompany(in)
		assert.Equal(t, once, NormalizeCompany(once), "input %q", in)
	}
}

func TestIsAcademia(t *testing.T) {
	assert.True(t, IsAcademia("Professor at MIT"))
	assert.True(t, IsAcademia("Stanford University"))
	assert.True(t, IsAcademia("Postdoc at Berkeley"))
	assert.True(t, IsAcademia("Economics Instructor, Community College"))
	assert.False(t, IsAcademia("Amazon"))
	assert.False(t, IsAcademia("Google"))
	assert.False(t, IsAcademia(""))
}

func TestStandardizeCurrentPlacement(t *testing.T) {
	assert.Equal(t, "Academia", StandardizeCurrentPlacement("Assistant Professor, Yale University"))
	assert.Equal(t, "Meta", StandardizeCurrentPlacement("Facebook"))
	assert.Equal(t, "Netflix", StandardizeCurrentPlacement("Netflix"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jane Doe"))
	assert.False(t, IsValidName("2023"))
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("Click on each candidate"))
	assert.False(t, IsValidName("econ@university.edu"))
	assert.False(t, IsValidName("Campus Map"))
}

func TestIsTechPlacement(t *testing.T) {
	assert.True(t, IsTechPlacement("Senior Economist, Amazon"))
	assert.True(t, IsTechPlacement("Jane Street Capital"))
	assert.False(t, IsTechPlacement("Assistant Professor, Yale"))
	assert.False(t, IsTechPlacement("Professor at MIT"))
	assert.False(t, IsTechPlacement("phone: 555-0100"))
	assert.False(t, IsTechPlacement("Connect With Us"))
	assert.False(t, IsTechPlacement(""))
	assert.False(t, IsTechPlacement("Federal Reserve Bank"))
}

func TestIsTechPlacementIgnoresShortTickerLookalikes(t *testing.T) {
	// Abbreviations like SIG, HRT, or a bare "virtu" sit inside ordinary
	// words, so only full firm names are in the keyword list.
	assert.False(t, IsTechPlacement("Insight Global, Economic Consulting"))
	assert.False(t, IsTechPlacement("Design Researcher, IKEA"))
	assert.False(t, IsTechPlacement("Virtuoso Consulting Group"))

	assert.True(t, IsTechPlacement("Virtu Financial"))
	assert.True(t, IsTechPlacement("Hudson River Trading"))
	assert.True(t, IsTechPlacement("Quantitative Researcher, Susquehanna International Group"))
}

func TestExtractYear(t *testing.T) {
	y, ok := ExtractYear("Class of 2023 placements")
	assert.True(t, ok)
	assert.Equal(t, 2023, y)

	// Outside the plausibility window.
	_, ok = ExtractYear("Built in 1998, room 2010b") // 2010 < YearMin
	assert.False(t, ok)

	// Phone numbers must not match.
	_, ok = ExtractYear("call 617-253-3361")
	assert.False(t, ok)

	// Wide window picks up older cohorts for PDF headers.
	y, ok = ExtractYearWide("2016 – 2017")
	assert.True(t, ok)
	assert.Equal(t, 2016, y)

	_, ok = ExtractYear("")
	assert.False(t, ok)
}

func TestExtractCompanyFromEmbedded(t *testing.T) {
	assert.Equal(t, "Amazon", ExtractCompanyFromEmbedded("Economist, Amazon, Seattle"))
	assert.Equal(t, "Uber Technologies", ExtractCompanyFromEmbedded("Applied Scientist, Uber Technologies"))
	assert.Equal(t, "No Match Here", ExtractCompanyFromEmbedded("No Match Here"))
}

func TestMatchCompanyPrefix(t *testing.T) {
	c, ok := MatchCompanyPrefix("Amazon (3) international trade Maria Cuevas")
	assert.True(t, ok)
	assert.Equal(t, "Amazon", c)

	c, ok = MatchCompanyPrefix("jane street trading Wei Chen")
	assert.True(t, ok)
	assert.Equal(t, "Jane Street", c)

	_, ok = MatchCompanyPrefix("Federal Reserve Bank of Chicago")
	assert.False(t, ok)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Jane Doe", CleanText("  Jane  Doe \n"))
	assert.Equal(t, "", CleanText("   "))
}
