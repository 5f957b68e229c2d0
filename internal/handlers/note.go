package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/content"
	"github.com/cordobarg/note-portal/internal/mail"
	"github.com/cordobarg/note-portal/internal/models"
	"github.com/cordobarg/note-portal/internal/render"
	"github.com/cordobarg/note-portal/internal/session"
)

// maxUploadBytes bounds one multipart submission (images included).
const maxUploadBytes = 32 << 20

// NoteHandler turns a submitted form into a downloadable document.
type NoteHandler struct {
	logger     *common.Logger
	serializer render.Serializer
	preview    render.Serializer
	sessions   *session.Store
	composer   *mail.Composer
	docOpts    content.Options
}

// NewNoteHandler creates the note generation handler.
func NewNoteHandler(logger *common.Logger, serializer render.Serializer, preview render.Serializer, sessions *session.Store, composer *mail.Composer, docOpts content.Options) *NoteHandler {
	return &NoteHandler{
		logger:     logger,
		serializer: serializer,
		preview:    preview,
		sessions:   sessions,
		composer:   composer,
		docOpts:    docOpts,
	}
}

// HandleGenerate handles POST /api/notes/generate: multipart form in,
// document download out. The form state lives in the browser, so an error
// response never costs the user their input.
func (h *NoteHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	serializer := h.serializer
	if r.FormValue("format") == "html" {
		serializer = h.preview
	}
	if serializer == nil {
		// Fatal-to-submission: nothing is assembled, the user retries intact.
		WriteError(w, http.StatusServiceUnavailable, "document serializer unavailable, please retry")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid form submission: %v", err))
		return
	}

	sub := h.buildSubmission(r)
	images := uploadedImages(r)

	var stats models.MarketStats
	var chartPNG []byte
	if sub.IsEquity() {
		if sid := r.FormValue("session_id"); sid != "" {
			if sess, ok := h.sessions.Get(sid); ok {
				snap := sess.Snapshot()
				stats = snap.Stats
				chartPNG = snap.ChartPNG
			}
		}
	}

	tree := content.Assemble(sub, images, stats, chartPNG, h.docOpts, h.logger)

	blob, err := serializer.Serialize(tree)
	if err != nil {
		h.logger.Error().Str("title", sub.Title).Str("error", err.Error()).Msg("document serialization failed")
		WriteError(w, http.StatusInternalServerError, "document generation failed, please retry")
		return
	}

	fileName := common.DeriveFileName(sub.Title, sub.Type.String())
	w.Header().Set("Content-Type", serializer.ContentType())
	if serializer == h.serializer {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(blob)

	h.logger.Info().
		Str("file", fileName).
		Str("note_type", sub.Type.String()).
		Int("blocks", len(tree.Blocks)).
		Msg("note generated")
}

// HandleMailDraft handles GET /api/notes/mailto: returns the prefilled mail
// draft URL for a generated note.
func (h *NoteHandler) HandleMailDraft(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	q := r.URL.Query()
	sub := &models.FormSubmission{
		Type:  noteType(q.Get("note_type")),
		Title: q.Get("title"),
		Topic: q.Get("topic"),
		PrimaryAuthor: models.Author{
			LastName:  q.Get("author_last_name"),
			FirstName: q.Get("author_first_name"),
		},
		GeneratedAt: time.Now(),
	}

	fileName := common.DeriveFileName(sub.Title, sub.Type.String())
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"mailto": h.composer.Draft(sub, fileName),
		"file":   fileName,
	})
}

// HandleCompletion handles POST /api/completion: the completion meter.
func (h *NoteHandler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid form")
			return
		}
	}

	sub := h.buildSubmission(r)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"completion": content.Completion(sub),
	})
}

// HandlePhoneFormat handles POST /api/phone/format: returns the canonical
// stored value plus the grouped display form for the edit field.
func (h *NoteHandler) HandlePhoneFormat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid form")
		return
	}

	canonical := common.NormalizePhone(r.FormValue("country_code"), r.FormValue("national"))
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"canonical": canonical,
		"display":   common.FormatPhoneDisplay(r.FormValue("national")),
	})
}

// buildSubmission assembles a FormSubmission from posted fields. Nothing is
// validated here: the assembler accepts whatever strings it is given.
func (h *NoteHandler) buildSubmission(r *http.Request) *models.FormSubmission {
	sub := &models.FormSubmission{
		Type:  noteType(r.FormValue("note_type")),
		Title: r.FormValue("title"),
		Topic: r.FormValue("topic"),
		PrimaryAuthor: models.Author{
			LastName:  r.FormValue("author_last_name"),
			FirstName: r.FormValue("author_first_name"),
			Phone:     common.NormalizePhone(r.FormValue("author_phone_cc"), r.FormValue("author_phone")),
		},
		CoAuthors:    coAuthors(r),
		Analysis:     r.FormValue("analysis"),
		KeyTakeaways: r.FormValue("key_takeaways"),
		Content:      r.FormValue("content"),
		CordobaView:  r.FormValue("cordoba_view"),
		GeneratedAt:  time.Now(),
	}

	if sub.Type == models.NoteEquityResearch {
		sub.Equity = &models.EquityFields{
			Ticker:           r.FormValue("ticker"),
			CRGRating:        r.FormValue("crg_rating"),
			TargetPrice:      r.FormValue("target_price"),
			ValuationSummary: r.FormValue("valuation_summary"),
			KeyAssumptions:   r.FormValue("key_assumptions"),
			ScenarioNotes:    r.FormValue("scenario_notes"),
			ModelLink:        r.FormValue("model_link"),
			ModelFiles:       modelFileNames(r),
		}
	}

	return sub
}

// noteType maps the posted value onto the tagged note type; anything
// unrecognized is treated as a general note.
func noteType(v string) models.NoteType {
	if v == string(models.NoteEquityResearch) {
		return models.NoteEquityResearch
	}
	return models.NoteGeneral
}

// coAuthors collects the co-author rows in form order. Rows with no name at
// all are skipped; partially filled rows are kept as entered.
func coAuthors(r *http.Request) []models.Author {
	lastNames := formValues(r, "coauthor_last_name")
	firstNames := formValues(r, "coauthor_first_name")
	phones := formValues(r, "coauthor_phone")

	var authors []models.Author
	for i := range lastNames {
		a := models.Author{LastName: lastNames[i]}
		if i < len(firstNames) {
			a.FirstName = firstNames[i]
		}
		if i < len(phones) {
			a.Phone = common.NormalizePhoneValue(phones[i])
		}
		if strings.TrimSpace(a.LastName) == "" && strings.TrimSpace(a.FirstName) == "" {
			continue
		}
		authors = append(authors, a)
	}
	return authors
}

func formValues(r *http.Request, key string) []string {
	if r.MultipartForm != nil {
		return r.MultipartForm.Value[key]
	}
	return r.Form[key]
}

// modelFileNames lists attached equity model files by name only; the file
// content is never embedded in the document.
func modelFileNames(r *http.Request) []string {
	if r.MultipartForm == nil {
		return nil
	}
	var names []string
	for _, fh := range r.MultipartForm.File["model_files"] {
		names = append(names, fh.Filename)
	}
	return names
}

// uploadedImages wraps the uploaded image files as readable binaries, in
// upload order.
func uploadedImages(r *http.Request) []content.ReadableBinary {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File["images"]
	files := make([]content.ReadableBinary, 0, len(headers))
	for _, fh := range headers {
		files = append(files, &multipartFile{header: fh})
	}
	return files
}

// multipartFile adapts a multipart file header to content.ReadableBinary.
type multipartFile struct {
	header *multipart.FileHeader
}

func (f *multipartFile) Name() string { return f.header.Filename }

func (f *multipartFile) ReadBytes() ([]byte, error) {
	file, err := f.header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
