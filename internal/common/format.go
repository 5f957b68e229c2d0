package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatDateTime renders a timestamp the way note headers show it,
// e.g. "January 2, 2026 3:04 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("January 2, 2006 3:04 PM")
}

// FormatShortDate renders the short date used in mail subjects, e.g. "Jan 2, 2026".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatMoney formats a float as a dollar amount with comma separators.
func FormatMoney(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if negative {
		return fmt.Sprintf("-$%s.%02d", s, cents)
	}
	return fmt.Sprintf("$%s.%02d", s, cents)
}

// FormatSignedPct formats a fractional value as a percentage with +/- prefix.
// 0.2 -> "+20.00%".
func FormatSignedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v*100)
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

// DeriveFileName builds the download file name from title and note type:
// lowercase title with non-alphanumerics replaced by underscores, then the
// lowercase note type with whitespace replaced by underscores.
// "Q3 Outlook!" + "Equity Research" -> "q3_outlook_equity_research.docx".
func DeriveFileName(title, noteType string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else if !strings.HasSuffix(b.String(), "_") {
			b.WriteByte('_')
		}
	}
	nt := strings.Join(strings.Fields(strings.ToLower(noteType)), "_")
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "note"
	}
	return name + "_" + nt + ".docx"
}
