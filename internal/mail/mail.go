// Package mail builds prefilled mail drafts for the note handoff. Only a
// mailto: draft is produced; attaching the generated document programmatically
// is not possible, so the body tells the sender to attach it.
package mail

import (
	"net/url"
	"strings"

	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/models"
)

// Composer builds mailto drafts from note metadata.
type Composer struct {
	recipient string
	cc        map[string]string // note type -> cc address
}

// NewComposer creates a composer. cc maps note-type display names to the
// address copied for that type; unknown types get no cc.
func NewComposer(recipient string, cc map[string]string) *Composer {
	return &Composer{recipient: recipient, cc: cc}
}

// CC returns the cc address for a note type, or "" when none is configured.
func (c *Composer) CC(noteType models.NoteType) string {
	return c.cc[noteType.String()]
}

// Draft builds the mailto URL for a generated note: recipient, derived cc,
// subject "{type} - {short date}[ - {title}]" and labeled metadata body lines.
func (c *Composer) Draft(sub *models.FormSubmission, fileName string) string {
	subject := sub.Type.String() + " - " + common.FormatShortDate(sub.GeneratedAt)
	if strings.TrimSpace(sub.Title) != "" {
		subject += " - " + sub.Title
	}

	lines := []string{
		"Note Type: " + sub.Type.String(),
		"Title: " + sub.Title,
		"Topic: " + sub.Topic,
		"Author: " + strings.ToUpper(sub.PrimaryAuthor.LastName) + ", " + strings.ToUpper(sub.PrimaryAuthor.FirstName),
		"Generated: " + common.FormatDateTime(sub.GeneratedAt),
		"File: " + fileName,
		"",
		"Please attach the generated document before sending.",
	}

	params := url.Values{}
	if cc := c.CC(sub.Type); cc != "" {
		params.Set("cc", cc)
	}
	params.Set("subject", subject)
	params.Set("body", strings.Join(lines, "\r\n"))

	// mailto bodies want %20, not the + that url.Values encodes spaces as.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + c.recipient + "?" + query
}
