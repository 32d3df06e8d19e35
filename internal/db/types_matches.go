package db

import (
	"time"

	"github.com/google/uuid"
)

// Match is a job-to-resume coverage result. The (JobID, ResumeID) pair is
// unique; re-running a match upserts the row.
type Match struct {
	JobID         uuid.UUID
	ResumeID      uuid.UUID
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	UpdatedAt     time.Time
}
