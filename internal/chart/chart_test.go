package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/cordobarg/note-portal/internal/models"
)

func testSeries(n int) []models.PricePoint {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	out := make([]models.PricePoint, n)
	for i := range out {
		out[i] = models.PricePoint{Date: start.AddDate(0, 0, i), Close: 100 + float64(i)}
	}
	return out
}

func TestRender(t *testing.T) {
	png, err := NewPNGRenderer().Render("aapl", testSeries(30))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG, first bytes: % x", png[:4])
	}
}

func TestRender_NotEnoughPoints(t *testing.T) {
	if _, err := NewPNGRenderer().Render("aapl", testSeries(1)); err == nil {
		t.Error("expected error for a single point")
	}
	if _, err := NewPNGRenderer().Render("aapl", nil); err == nil {
		t.Error("expected error for empty series")
	}
}
