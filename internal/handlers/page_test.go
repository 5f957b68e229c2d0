package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cordobarg/note-portal/internal/common"
)

func TestServePage(t *testing.T) {
	h := NewPageHandler(common.NewSilentLogger())

	w := httptest.NewRecorder()
	h.ServePage("note.html", "note")(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Research Note Portal") {
		t.Error("rendered page missing expected content")
	}
}

func TestStaticFileHandler(t *testing.T) {
	h := NewPageHandler(common.NewSilentLogger())

	w := httptest.NewRecorder()
	h.StaticFileHandler(w, httptest.NewRequest("GET", "/static/app.js", nil))
	if w.Code != http.StatusOK {
		t.Errorf("static file status = %d", w.Code)
	}
}

func TestStaticFileHandler_TraversalBlocked(t *testing.T) {
	h := NewPageHandler(common.NewSilentLogger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/static/x", nil)
	req.URL.Path = "/static/../../go.mod"
	h.StaticFileHandler(w, req)
	if w.Code == http.StatusOK {
		t.Error("path traversal should not serve files outside the static dir")
	}
}
