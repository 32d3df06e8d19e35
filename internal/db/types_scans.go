package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanRecord is a saved scan-history row. Result holds the full scan result
// JSON as produced at scan time.
type ScanRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ResumeText string
	JDText     string
	Result     json.RawMessage
	CreatedAt  time.Time
}
