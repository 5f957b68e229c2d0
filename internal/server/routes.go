package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI page routes (HTML templates)
	mux.HandleFunc("/", s.app.PageHandler.ServePage("note.html", "note"))

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// Note generation and handoff
	mux.HandleFunc("/api/notes/generate", s.app.NoteHandler.HandleGenerate)
	mux.HandleFunc("/api/notes/mailto", s.app.NoteHandler.HandleMailDraft)
	mux.HandleFunc("/api/completion", s.app.NoteHandler.HandleCompletion)
	mux.HandleFunc("/api/phone/format", s.app.NoteHandler.HandlePhoneFormat)

	// Chart and market statistics lifecycle
	mux.HandleFunc("/api/chart", s.app.ChartHandler.HandleChart)
	mux.HandleFunc("/api/chart/upside", s.app.ChartHandler.HandleUpside)
	mux.HandleFunc("/api/session/reset", s.app.ChartHandler.HandleReset)

	// Operational endpoints
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
