package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CreateScan saves a scan-history record and returns its ID. The result is
// marshaled here so callers pass the structured value, not raw JSON.
func (db *DB) CreateScan(ctx context.Context, userID uuid.UUID, resumeText, jdText string, result any) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal scan result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scans (user_id, resume_text, jd_text, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, resumeText, jdText, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create scan record: %w", err)
	}
	return id, nil
}

// ListScans returns a user's scan history, newest first, bounded by limit.
func (db *DB) ListScans(ctx context.Context, userID uuid.UUID, limit int) ([]ScanRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_text, jd_text, result, created_at
		 FROM scans WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var out []ScanRecord
	for rows.Next() {
		var s ScanRecord
		if err := rows.Scan(&s.ID, &s.UserID, &s.ResumeText, &s.JDText, &s.Result, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return out, nil
}
