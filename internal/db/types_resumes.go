package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a stored resume row. Body holds the pre-extracted plain text
// (PDF decoding happens upstream of this service).
type Resume struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Filename  string
	Body      string
	Skills    []string
	CreatedAt time.Time
}

// ResumeSummary is a listing row without the (potentially large) body.
type ResumeSummary struct {
	ID        uuid.UUID
	Filename  string
	Skills    []string
	CreatedAt time.Time
}
