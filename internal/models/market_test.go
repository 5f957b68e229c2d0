package models

import (
	"testing"
	"time"
)

func TestParseRangeTag(t *testing.T) {
	tests := []struct {
		in   string
		want RangeTag
	}{
		{"6m", Range6M},
		{"6 months", Range6M},
		{"1y", Range1Y},
		{"1 year", Range1Y},
		{"2 years", Range2Y},
		{"5y", Range5Y},
	}
	for _, tt := range tests {
		got, err := ParseRangeTag(tt.in)
		if err != nil {
			t.Errorf("ParseRangeTag(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRangeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRangeTag("3 weeks"); err == nil {
		t.Error("expected error for unknown range")
	}
}

func TestRangeTagCutoff(t *testing.T) {
	now := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)

	if got := Range6M.Cutoff(now); !got.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("6m cutoff = %v", got)
	}
	if got := Range2Y.Cutoff(now); !got.Equal(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("2y cutoff = %v", got)
	}
}

func TestMarketStatsAvailable(t *testing.T) {
	var stats MarketStats
	if stats.Available() {
		t.Error("zero stats should not be available")
	}

	price := 42.0
	stats.CurrentPrice = &price
	if !stats.Available() {
		t.Error("stats with a current price should be available")
	}
}

func TestFormSubmissionIsEquity(t *testing.T) {
	sub := &FormSubmission{Type: NoteGeneral}
	if sub.IsEquity() {
		t.Error("general note should not be equity")
	}
	sub.Equity = &EquityFields{Ticker: "AAPL"}
	if !sub.IsEquity() {
		t.Error("submission with equity payload should report equity")
	}
}
