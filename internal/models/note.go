// Package models defines data structures for the note portal.
package models

import "time"

// NoteType identifies the kind of research note being produced.
type NoteType string

const (
	NoteGeneral        NoteType = "General"
	NoteEquityResearch NoteType = "Equity Research"
)

// String returns the display name used in headers, subjects and file names.
func (t NoteType) String() string { return string(t) }

// Author is a note author or co-author.
// Phone holds the canonical normalized value ("44-7398344190" style) and may be empty.
type Author struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
}

// EquityFields carries the fields that only exist on Equity Research notes.
// FormSubmission.Equity is nil for every other note type, so consumers switch
// on the presence of this payload rather than comparing type strings.
type EquityFields struct {
	Ticker           string   `json:"ticker"`
	CRGRating        string   `json:"crg_rating"`
	TargetPrice      string   `json:"target_price"` // numeric string as entered
	ValuationSummary string   `json:"valuation_summary"`
	KeyAssumptions   string   `json:"key_assumptions"` // bullet text
	ScenarioNotes    string   `json:"scenario_notes"`
	ModelFiles       []string `json:"model_files"` // names only, content never embedded
	ModelLink        string   `json:"model_link,omitempty"`
}

// FormSubmission is one submitted research-note form.
// It is created per submit and discarded once the document has been produced.
type FormSubmission struct {
	Type          NoteType `json:"note_type"`
	Title         string   `json:"title"`
	Topic         string   `json:"topic"`
	PrimaryAuthor Author   `json:"primary_author"`
	CoAuthors     []Author `json:"co_authors"` // insertion order = display order

	Analysis     string `json:"analysis"`
	KeyTakeaways string `json:"key_takeaways"`
	Content      string `json:"content"`
	CordobaView  string `json:"cordoba_view"`

	// Equity is set only when Type is NoteEquityResearch.
	Equity *EquityFields `json:"equity,omitempty"`

	// GeneratedAt is captured once at submission time; the formatted value is
	// reused verbatim in header and footer.
	GeneratedAt time.Time `json:"generated_at"`
}

// IsEquity reports whether the submission carries the equity section.
func (s *FormSubmission) IsEquity() bool { return s.Equity != nil }
