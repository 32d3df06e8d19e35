package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/server/middleware"
)

// matchResponse is one job-to-resume coverage result in API responses.
type matchResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	ResumeID      uuid.UUID `json:"resume_id"`
	Score         float64   `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// handleRunMatch scores each of the caller's resumes against one job's
// extracted skills and upserts the results. This is a coarse skill-coverage
// ranking across stored resumes, not the full scan rubric.
func (s *Server) handleRunMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_id query parameter is required")
		return
	}

	job, err := s.getOwnedJob(r, userID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	results := make([]matchResponse, 0, len(resumes))
	for _, resume := range resumes {
		matched, missing := skillCoverage(job.Skills, resume.Skills)
		score := 1.0
		if len(job.Skills) > 0 {
			score = float64(len(matched)) / float64(len(job.Skills))
		}

		m := db.Match{
			JobID:         jobID,
			ResumeID:      resume.ID,
			Score:         score,
			MatchedSkills: matched,
			MissingSkills: missing,
		}
		if err := s.db.UpsertMatch(r.Context(), m); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store match")
			return
		}

		results = append(results, matchResponse{
			JobID:         jobID,
			ResumeID:      resume.ID,
			Score:         score,
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": results})
}

// handleListJobMatches lists stored matches for one job, best score first.
func (s *Server) handleListJobMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if _, err := s.getOwnedJob(r, userID, jobID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	matches, err := s.db.ListMatchesForJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	items := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchResponse{
			JobID:         m.JobID,
			ResumeID:      m.ResumeID,
			Score:         m.Score,
			MatchedSkills: m.MatchedSkills,
			MissingSkills: m.MissingSkills,
			UpdatedAt:     m.UpdatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": items})
}

// getOwnedJob loads a job and verifies the caller owns it. Jobs owned by
// other users surface as not-found rather than forbidden.
func (s *Server) getOwnedJob(r *http.Request, userID, jobID uuid.UUID) (*db.Job, error) {
	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.UserID != userID {
		return nil, &ErrNotFound{Resource: "job", ID: jobID}
	}
	return job, nil
}

// skillCoverage splits a job's skills into those present in the resume's
// skill list and those absent. Both inputs hold canonical skill names.
func skillCoverage(jobSkills, resumeSkills []string) (matched, missing []string) {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = true
	}

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0)
	for _, skill := range jobSkills {
		if have[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}
