package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// jobResponse is a stored job posting in API responses.
type jobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

// handleCreateJob stores a job posting from inline description text or from
// a URL, in which case the posting's main text is fetched and extracted.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.Description == "" && req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either description or url is required")
		return
	}

	description := req.Description
	if description == "" {
		fetched, err := ingestion.IngestFromURL(r.Context(), req.URL)
		if err != nil {
			switch {
			case errors.Is(err, ingestion.ErrInvalidURL):
				s.errorResponse(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ingestion.ErrFetchFailed), errors.Is(err, ingestion.ErrExtractionFailed):
				s.errorResponse(w, http.StatusBadGateway, err.Error())
			default:
				s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch job posting")
			}
			return
		}
		description = fetched
	}

	description = ingestion.CleanText(description)
	if err := s.checkInputSize("description", description); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills := s.extractor.Extract(description).Skills

	id, err := s.db.CreateJob(r.Context(), userID, req.Title, description, req.URL, skills)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, jobResponse{
		ID:          id,
		Title:       req.Title,
		Description: description,
		SourceURL:   req.URL,
		Skills:      skills,
	})
}

// handleListJobs lists the caller's job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	items := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobResponse{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			SourceURL:   j.SourceURL,
			Skills:      j.Skills,
			CreatedAt:   j.CreatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": items})
}
