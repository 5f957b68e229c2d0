package models

import (
	"fmt"
	"time"
)

// PricePoint is a single day's close in a fetched price series.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// RangeTag selects the calendar window applied to a fetched series before
// any statistic is computed.
type RangeTag string

const (
	Range6M RangeTag = "6m"
	Range1Y RangeTag = "1y"
	Range2Y RangeTag = "2y"
	Range5Y RangeTag = "5y"
)

// ParseRangeTag accepts both the short tags and the spelled-out labels the
// form presents ("6 months", "1 year", "2 years", "5 years").
func ParseRangeTag(s string) (RangeTag, error) {
	switch s {
	case "6m", "6 months":
		return Range6M, nil
	case "1y", "1 year":
		return Range1Y, nil
	case "2y", "2 years":
		return Range2Y, nil
	case "5y", "5 years":
		return Range5Y, nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// Cutoff returns the earliest date retained when filtering relative to now.
func (r RangeTag) Cutoff(now time.Time) time.Time {
	switch r {
	case Range6M:
		return now.AddDate(0, -6, 0)
	case Range1Y:
		return now.AddDate(-1, 0, 0)
	case Range2Y:
		return now.AddDate(-2, 0, 0)
	case Range5Y:
		return now.AddDate(-5, 0, 0)
	}
	return now.AddDate(-1, 0, 0)
}

// MarketStats holds the statistics derived from a filtered price series.
// A nil field means "unavailable". The four fields are always replaced
// together; a failed fetch or filter clears all of them at once.
type MarketStats struct {
	CurrentPrice   *float64 `json:"current_price,omitempty"`
	RangeReturn    *float64 `json:"range_return,omitempty"`
	RealisedVolAnn *float64 `json:"realised_vol_ann,omitempty"`
	UpsideToTarget *float64 `json:"upside_to_target,omitempty"`
}

// Available reports whether the stats were populated by a successful compute.
func (s MarketStats) Available() bool { return s.CurrentPrice != nil }
