package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// historyTextLimit caps how much of each input document is persisted with a
// saved scan. The scan itself runs over the full text.
const historyTextLimit = 10000

// previewLimit is the per-document preview length in history listings.
const previewLimit = 200

// scanHistoryItem is one row in the scan history listing. The stored texts
// are replaced by short previews; Result is returned verbatim.
type scanHistoryItem struct {
	ID            uuid.UUID       `json:"id"`
	ResumePreview string          `json:"resume_preview"`
	JDPreview     string          `json:"jd_preview"`
	Result        json.RawMessage `json:"result"`
	CreatedAt     time.Time       `json:"created_at"`
}

// handleScan runs a compatibility scan over the submitted resume and job
// description and returns the full result without persisting anything.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.checkInputSize("resume_text", req.ResumeText); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.checkInputSize("jd_text", req.JDText); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.scanner.Scan(r.Context(), req.ResumeText, req.JDText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Scan failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSaveScan persists a completed scan to the caller's history.
func (s *Server) handleSaveScan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resumeText := ingestion.Truncate(req.ResumeText, historyTextLimit)
	jdText := ingestion.Truncate(req.JDText, historyTextLimit)

	id, err := s.db.CreateScan(r.Context(), userID, resumeText, jdText, req.Result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save scan")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListScans lists the caller's saved scans, newest first.
func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := s.db.ListScans(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list scans")
		return
	}

	items := make([]scanHistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, scanHistoryItem{
			ID:            rec.ID,
			ResumePreview: ingestion.Truncate(rec.ResumeText, previewLimit),
			JDPreview:     ingestion.Truncate(rec.JDText, previewLimit),
			Result:        rec.Result,
			CreatedAt:     rec.CreatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"scans": items})
}

// checkInputSize enforces the configured per-document size limit.
func (s *Server) checkInputSize(field, text string) error {
	if s.maxInputChars > 0 && len(text) > s.maxInputChars {
		return &ErrInputTooLarge{Field: field, Max: s.maxInputChars}
	}
	return nil
}
