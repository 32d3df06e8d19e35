package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// resumeResponse is a stored resume in API responses.
type resumeResponse struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Body      string    `json:"body,omitempty"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

// handleCreateResume stores a resume submitted as pre-extracted plain text.
// PDF or DOCX decoding happens upstream of this service.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	body := ingestion.CleanText(req.Text)
	if err := s.checkInputSize("text", body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills := s.extractor.Extract(body).Skills

	id, err := s.db.CreateResume(r.Context(), userID, req.Filename, body, skills)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resumeResponse{
		ID:       id,
		Filename: req.Filename,
		Skills:   skills,
	})
}

// handleListResumes lists the caller's resumes without their bodies.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	items := make([]resumeResponse, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, resumeResponse{
			ID:        sum.ID,
			Filename:  sum.Filename,
			Skills:    sum.Skills,
			CreatedAt: sum.CreatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": items})
}

// handleGetResume returns one of the caller's resumes, body included.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), userID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if resume == nil {
		notFound := &ErrNotFound{Resource: "resume", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, toResumeResponse(resume))
}

func toResumeResponse(resume *db.Resume) resumeResponse {
	return resumeResponse{
		ID:        resume.ID,
		Filename:  resume.Filename,
		Body:      resume.Body,
		Skills:    resume.Skills,
		CreatedAt: resume.CreatedAt,
	}
}
