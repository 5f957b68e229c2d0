// Package session holds per-form chart state between the chart fetch and the
// final document generation.
package session

import (
	"sync"

	"github.com/cordobarg/note-portal/internal/marketstats"
	"github.com/cordobarg/note-portal/internal/models"
)

// ChartState is the chart-and-stats lifecycle state.
type ChartState int

const (
	StateIdle ChartState = iota
	StateFetching
	StateReady
	StateFailed
)

// String returns the wire name of the state.
func (s ChartState) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "idle"
}

// ChartSession owns the captured chart image and market statistics for one
// form. All fields are replaced together under one lock: a consumer never
// observes a partial update. Generation tokens guard against a late-arriving
// response from a superseded fetch overwriting newer state.
type ChartSession struct {
	mu sync.Mutex

	state    ChartState
	gen      uint64
	ticker   string
	rangeTag models.RangeTag
	target   float64

	stats    models.MarketStats
	chartPNG []byte
	status   string
}

// Snapshot is a consistent read of the session for handlers and assembly.
type Snapshot struct {
	State    ChartState
	Ticker   string
	Range    models.RangeTag
	Stats    models.MarketStats
	ChartPNG []byte
	Status   string
}

// BeginFetch moves the session to Fetching, wipes the published stats and
// chart, and returns the generation token the fetch must present to commit.
func (c *ChartSession) BeginFetch(ticker string, tag models.RangeTag, target float64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateFetching
	c.ticker = ticker
	c.rangeTag = tag
	c.target = target
	c.stats = models.MarketStats{}
	c.chartPNG = nil
	c.status = ""
	return c.gen
}

// CommitSuccess publishes stats and chart for the given generation. A stale
// generation (a newer fetch started meanwhile) is discarded and false is
// returned.
func (c *ChartSession) CommitSuccess(gen uint64, stats models.MarketStats, chartPNG []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.state = StateReady
	c.stats = stats
	c.chartPNG = chartPNG
	c.status = ""
	return true
}

// CommitFailure clears everything for the given generation and records a
// user-visible status message. Stale generations are discarded.
func (c *ChartSession) CommitFailure(gen uint64, status string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.state = StateFailed
	c.stats = models.MarketStats{}
	c.chartPNG = nil
	c.status = status
	return true
}

// SetTarget updates the target price and recomputes upside from the stored
// current price. No fetch involved; the other three statistics are untouched.
func (c *ChartSession) SetTarget(target float64) models.MarketStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	if c.stats.CurrentPrice != nil {
		c.stats.UpsideToTarget = marketstats.UpsideToTarget(*c.stats.CurrentPrice, target)
	}
	return c.stats
}

// Reset forces the session back to Idle from any state, clearing stats and
// the captured chart image.
func (c *ChartSession) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateIdle
	c.ticker = ""
	c.rangeTag = ""
	c.target = 0
	c.stats = models.MarketStats{}
	c.chartPNG = nil
	c.status = ""
}

// Snapshot returns a consistent view of the session.
func (c *ChartSession) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	png := make([]byte, len(c.chartPNG))
	copy(png, c.chartPNG)
	return Snapshot{
		State:    c.state,
		Ticker:   c.ticker,
		Range:    c.rangeTag,
		Stats:    c.stats,
		ChartPNG: png,
		Status:   c.status,
	}
}
