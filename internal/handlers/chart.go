package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cordobarg/note-portal/internal/chart"
	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/marketstats"
	"github.com/cordobarg/note-portal/internal/models"
	"github.com/cordobarg/note-portal/internal/session"
)

// PriceFetcher fetches a daily price series for a ticker.
type PriceFetcher interface {
	FetchDaily(ctx context.Context, ticker string) ([]models.PricePoint, error)
}

// ChartHandler drives the chart-and-stats lifecycle for a form session.
type ChartHandler struct {
	logger   *common.Logger
	fetcher  PriceFetcher
	renderer chart.Renderer
	sessions *session.Store
}

// NewChartHandler creates the chart handler.
func NewChartHandler(logger *common.Logger, fetcher PriceFetcher, renderer chart.Renderer, sessions *session.Store) *ChartHandler {
	return &ChartHandler{
		logger:   logger,
		fetcher:  fetcher,
		renderer: renderer,
		sessions: sessions,
	}
}

type chartRequest struct {
	SessionID   string  `json:"session_id"`
	Ticker      string  `json:"ticker"`
	Range       string  `json:"range"`
	TargetPrice float64 `json:"target_price"`
}

type chartResponse struct {
	Status    string             `json:"status"`
	SessionID string             `json:"session_id"`
	Stats     models.MarketStats `json:"stats"`
	ChartPNG  string             `json:"chart_png,omitempty"` // base64
	Message   string             `json:"message,omitempty"`
}

// HandleChart handles POST /api/chart: fetch, filter, compute, render. Any
// failure clears the session's stats and chart together; a response from a
// superseded fetch is discarded rather than committed.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Ticker) == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required")
		return
	}
	tag, err := models.ParseRangeTag(req.Range)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sid := req.SessionID
	if sid == "" {
		sid = uuid.New().String()
	}
	sess := h.sessions.GetOrCreate(sid)
	gen := sess.BeginFetch(req.Ticker, tag, req.TargetPrice)

	series, err := h.fetcher.FetchDaily(r.Context(), req.Ticker)
	if err != nil {
		h.logger.Warn().Str("ticker", req.Ticker).Str("error", err.Error()).Msg("price fetch failed")
		h.commitFailure(w, sess, gen, sid, "Could not fetch price data. Please retry.")
		return
	}

	filtered := marketstats.FilterRange(series, tag, time.Now())
	stats, err := marketstats.Compute(filtered, req.TargetPrice)
	if err != nil {
		h.commitFailure(w, sess, gen, sid, "Insufficient price data for the selected range.")
		return
	}

	png, err := h.renderer.Render(req.Ticker, filtered)
	if err != nil {
		h.logger.Warn().Str("ticker", req.Ticker).Str("error", err.Error()).Msg("chart render failed")
		h.commitFailure(w, sess, gen, sid, "Could not render the price chart. Please retry.")
		return
	}

	if !sess.CommitSuccess(gen, stats, png) {
		WriteJSON(w, http.StatusOK, chartResponse{Status: "superseded", SessionID: sid})
		return
	}

	WriteJSON(w, http.StatusOK, chartResponse{
		Status:    session.StateReady.String(),
		SessionID: sid,
		Stats:     stats,
		ChartPNG:  base64.StdEncoding.EncodeToString(png),
	})
}

func (h *ChartHandler) commitFailure(w http.ResponseWriter, sess *session.ChartSession, gen uint64, sid, msg string) {
	if !sess.CommitFailure(gen, msg) {
		WriteJSON(w, http.StatusOK, chartResponse{Status: "superseded", SessionID: sid})
		return
	}
	WriteJSON(w, http.StatusOK, chartResponse{
		Status:    session.StateFailed.String(),
		SessionID: sid,
		Message:   msg,
	})
}

type upsideRequest struct {
	SessionID   string  `json:"session_id"`
	TargetPrice float64 `json:"target_price"`
}

// HandleUpside handles POST /api/chart/upside: recompute upside-to-target
// from the stored current price and a new target, no fetch involved.
func (h *ChartHandler) HandleUpside(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req upsideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := h.sessions.Get(req.SessionID)
	if !ok {
		WriteError(w, http.StatusNotFound, "unknown session")
		return
	}

	stats := sess.SetTarget(req.TargetPrice)
	WriteJSON(w, http.StatusOK, chartResponse{
		Status:    sess.Snapshot().State.String(),
		SessionID: req.SessionID,
		Stats:     stats,
	})
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

// HandleReset handles POST /api/session/reset: the form-reset action, forcing
// the session back to Idle from any state.
func (h *ChartHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if sess, ok := h.sessions.Get(req.SessionID); ok {
		sess.Reset()
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"session_id": req.SessionID,
		"state":      session.StateIdle.String(),
	})
}
