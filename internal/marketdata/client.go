// Package marketdata fetches daily price series from a stooq-style CSV
// endpoint. Each user-triggered fetch goes to the network; nothing is cached
// across fetches.
package marketdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cordobarg/note-portal/internal/models"
)

// Client fetches daily close series for a ticker.
type Client struct {
	baseURL       string
	defaultSuffix string
	httpClient    *http.Client
}

// New creates a client for the given endpoint. suffix is the market suffix
// appended to bare tickers (".us" style).
func New(baseURL, suffix string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		defaultSuffix: suffix,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Symbol derives the wire symbol from a ticker: lowercased, passed through
// unchanged when it already carries a market suffix (contains "."), otherwise
// the default suffix is appended.
func (c *Client) Symbol(ticker string) string {
	t := strings.ToLower(strings.TrimSpace(ticker))
	if strings.Contains(t, ".") {
		return t
	}
	return t + c.defaultSuffix
}

// FetchDaily fetches the full daily series for a ticker, ascending by date.
// Only date and close are consumed from the CSV.
func (c *Client) FetchDaily(ctx context.Context, ticker string) ([]models.PricePoint, error) {
	endpoint := fmt.Sprintf("%s?s=%s&i=d", c.baseURL, url.QueryEscape(c.Symbol(ticker)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach price source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price source returned %d", resp.StatusCode)
	}

	series, err := ParseDailyCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price data for %s: %w", ticker, err)
	}
	return series, nil
}

// ParseDailyCSV parses "Date,Open,High,Low,Close,Volume" rows into price
// points. A header row is tolerated; rows after it must be well-formed, a
// malformed row fails the whole parse.
func ParseDailyCSV(r io.Reader) ([]models.PricePoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var series []models.PricePoint
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "date") {
				continue
			}
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("row has %d fields, want at least 5", len(record))
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", record[0], err)
		}
		closePx, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad close %q: %w", record[4], err)
		}

		series = append(series, models.PricePoint{Date: date, Close: closePx})
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("empty price series")
	}
	return series, nil
}
