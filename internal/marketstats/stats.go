// Package marketstats derives market statistics from a fetched daily price
// series. Every function is pure; the chart session owns the mutable state.
package marketstats

import (
	"errors"
	"math"
	"time"

	"github.com/cordobarg/note-portal/internal/models"
)

// MinPoints is the minimum series length (after range filtering) for any
// statistic to be computed. Below it the whole computation fails and no
// partial result survives.
const MinPoints = 10

// tradingDaysPerYear scales daily volatility to an annualized figure.
const tradingDaysPerYear = 252

// ErrInsufficientData is returned when the filtered series is too short.
var ErrInsufficientData = errors.New("insufficient data after range filter")

// FilterRange keeps points on or after the cutoff derived from the range tag.
// The input is assumed ascending by date; order is preserved.
func FilterRange(series []models.PricePoint, tag models.RangeTag, now time.Time) []models.PricePoint {
	cutoff := tag.Cutoff(now)
	var out []models.PricePoint
	for _, p := range series {
		if !p.Date.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// Compute derives all four statistics from an already-filtered series plus an
// optional target price (0 = unset). Fewer than MinPoints fails everything:
// the caller must clear any previously published stats, never mix partials.
func Compute(series []models.PricePoint, targetPrice float64) (models.MarketStats, error) {
	if len(series) < MinPoints {
		return models.MarketStats{}, ErrInsufficientData
	}

	current := series[len(series)-1].Close
	stats := models.MarketStats{
		CurrentPrice:   &current,
		RangeReturn:    RangeReturn(series),
		RealisedVolAnn: AnnualisedVol(DailyReturns(series)),
		UpsideToTarget: UpsideToTarget(current, targetPrice),
	}
	return stats, nil
}

// RangeReturn is last/first - 1 over the filtered series, or nil when the
// series has fewer than two points or either endpoint is unusable.
func RangeReturn(series []models.PricePoint) *float64 {
	if len(series) < 2 {
		return nil
	}
	first := series[0].Close
	last := series[len(series)-1].Close
	if first == 0 || !isFinite(first) || !isFinite(last) {
		return nil
	}
	r := last/first - 1
	if !isFinite(r) {
		return nil
	}
	return &r
}

// DailyReturns collects current/previous - 1 for each adjacent pair with a
// positive, finite previous close and a finite current close. The resulting
// order is irrelevant downstream; volatility is order-independent.
func DailyReturns(series []models.PricePoint) []float64 {
	var returns []float64
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		cur := series[i].Close
		if prev <= 0 || !isFinite(prev) || !isFinite(cur) {
			continue
		}
		returns = append(returns, cur/prev-1)
	}
	return returns
}

// AnnualisedVol is the sample standard deviation (n-1 divisor) of the daily
// returns scaled by sqrt(252). A single-element sequence yields 0 rather than
// dividing by zero; an empty sequence is unavailable.
func AnnualisedVol(returns []float64) *float64 {
	if len(returns) == 0 {
		return nil
	}
	if len(returns) == 1 {
		zero := 0.0
		return &zero
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	vol := math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear)
	return &vol
}

// UpsideToTarget is target/current - 1. It needs only the two scalars, so it
// can be recomputed whenever either changes without a fresh fetch. Nil when
// either value is missing, non-positive or non-finite.
func UpsideToTarget(current, target float64) *float64 {
	if current <= 0 || target <= 0 || !isFinite(current) || !isFinite(target) {
		return nil
	}
	u := target/current - 1
	return &u
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
