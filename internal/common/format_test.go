package common

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, time.March, 9, 15, 4, 0, 0, time.UTC)
	got := FormatDateTime(ts)
	if got != "March 9, 2026 3:04 PM" {
		t.Errorf("FormatDateTime = %q", got)
	}
}

func TestFormatShortDate(t *testing.T) {
	ts := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatShortDate(ts); got != "Jan 2, 2026" {
		t.Errorf("FormatShortDate = %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{999.999, "$1,000.00"},
		{-42.25, "-$42.25"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedPct(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.2, "+20.00%"},
		{0, "+0.00%"},
		{-0.0512, "-5.12%"},
		{1.5, "+150.00%"},
	}
	for _, tt := range tests {
		if got := FormatSignedPct(tt.in); got != tt.want {
			t.Errorf("FormatSignedPct(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveFileName(t *testing.T) {
	tests := []struct {
		title    string
		noteType string
		want     string
	}{
		{"Q3 Outlook!", "Equity Research", "q3_outlook_equity_research.docx"},
		{"Rates Update", "General", "rates_update_general.docx"},
		{"--- Special *** Chars ---", "General", "special_chars_general.docx"},
		{"", "General", "note_general.docx"},
		{"!!!", "Equity Research", "note_equity_research.docx"},
	}
	for _, tt := range tests {
		if got := DeriveFileName(tt.title, tt.noteType); got != tt.want {
			t.Errorf("DeriveFileName(%q, %q) = %q, want %q", tt.title, tt.noteType, got, tt.want)
		}
	}
}
