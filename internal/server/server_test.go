package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cordobarg/note-portal/internal/app"
	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	application, err := app.New(config.NewDefaultConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	return New(application)
}

func TestHealthRoute(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %q", resp["status"])
	}
}

func TestVersionRoute(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/version", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/does-not-exist", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("content type = %q, want JSON", ct)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestCorrelationID(t *testing.T) {
	srv := testServer(t)

	// generated when absent
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected a generated correlation ID")
	}

	// echoed when supplied
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if got := w.Header().Get("X-Correlation-ID"); got != "req-42" {
		t.Errorf("X-Correlation-ID = %q, want req-42", got)
	}
}

func TestMethodNotAllowedOnAPIRoutes(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/chart", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/chart status = %d, want 405", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/api/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/health status = %d, want 405", w.Code)
	}
}

func TestNotePageServed(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "noteForm") {
		t.Error("page body missing the note form")
	}
}
