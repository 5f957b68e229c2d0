// Package chart renders a fetched price series to a raster image. The
// Renderer interface is the boundary; callers treat rendering as a black box
// from numeric series to PNG bytes.
package chart

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/cordobarg/note-portal/internal/models"
)

// Renderer turns a price series into an image.
type Renderer interface {
	Render(ticker string, series []models.PricePoint) ([]byte, error)
}

// PNGRenderer renders a close-price time series as a PNG line chart.
type PNGRenderer struct {
	Width  int
	Height int
}

// NewPNGRenderer creates a renderer with the document's display geometry.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: 800, Height: 600}
}

// Render draws the series. At least two points are required.
func (r *PNGRenderer) Render(ticker string, series []models.PricePoint) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 points to chart, got %d", len(series))
	}

	dates := make([]time.Time, len(series))
	closes := make([]float64, len(series))
	for i, p := range series {
		dates[i] = p.Date
		closes[i] = p.Close
	}

	graph := gochart.Chart{
		Title:  strings.ToUpper(strings.TrimSpace(ticker)),
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    strings.ToUpper(strings.TrimSpace(ticker)),
				XValues: dates,
				YValues: closes,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
