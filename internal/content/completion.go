package content

import (
	"strings"

	"github.com/cordobarg/note-portal/internal/models"
)

// Completion returns the completion meter value: the percentage of required
// fields carrying a non-blank value. Equity-only fields count only when the
// submission carries the equity section.
func Completion(sub *models.FormSubmission) int {
	fields := []string{
		string(sub.Type),
		sub.Title,
		sub.Topic,
		sub.PrimaryAuthor.LastName,
		sub.PrimaryAuthor.FirstName,
		sub.PrimaryAuthor.Phone,
		sub.Analysis,
		sub.KeyTakeaways,
		sub.Content,
	}
	if sub.Equity != nil {
		fields = append(fields,
			sub.Equity.Ticker,
			sub.Equity.CRGRating,
			sub.Equity.TargetPrice,
			sub.Equity.ValuationSummary,
			sub.Equity.KeyAssumptions,
		)
	}

	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
