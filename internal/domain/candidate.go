package domain

import "time"

// EnrichmentStatus tracks how far a candidate's current-state fields have
// been filled in, decoupled from whatever placeholder strings a provider
// may return.
type EnrichmentStatus string

const (
	EnrichNotStarted EnrichmentStatus = "not_started"
	EnrichPartial    EnrichmentStatus = "partial"
	EnrichComplete   EnrichmentStatus = "complete"
	EnrichError      EnrichmentStatus = "error"
)

// Candidate is one PhD graduate's placement data point. Name and School are
// identity fields and never change after creation; current_* fields are
// filled by enrichment.
type Candidate struct {
	Name             string
	School           string
	GraduationYear   int
	ResearchFields   string // comma-joined free text
	InitialPlacement string // employer, pre-normalization
	InitialRole      string

	// Enrichment fields
	CurrentPlacement  string
	CurrentRole       string
	Team              string
	WorkFocus         string
	Notes             string
	LinkedInURL       string
	Citations         int
	HIndex            int
	ResearchInterests string

	EnrichStatus EnrichmentStatus
}

// SourceDocument is one fetched page or PDF for one school, held only for
// the duration of an extraction pass.
type SourceDocument struct {
	School      string
	URL         string
	HTML        []byte // empty when the source is a PDF
	Text        string // extracted PDF text, empty for HTML sources
	ContentHash string
	FetchedAt   time.Time
}

// IsPDF reports whether the document carries extracted PDF text rather
// than markup.
func (d SourceDocument) IsPDF() bool { return d.HTML == nil && d.Text != "" }
