package db

import (
	"time"

	"github.com/google/uuid"
)

// Job is a stored job posting row.
type Job struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	SourceURL   string
	Skills      []string
	CreatedAt   time.Time
}
