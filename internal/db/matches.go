package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertMatch stores or refreshes a job-to-resume match result.
func (db *DB) UpsertMatch(ctx context.Context, m Match) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO matches (job_id, resume_id, score, matched_skills, missing_skills)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, resume_id)
		 DO UPDATE SET score = $3, matched_skills = $4, missing_skills = $5, updated_at = NOW()`,
		m.JobID, m.ResumeID, m.Score, m.MatchedSkills, m.MissingSkills,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}
	return nil
}

// ListMatchesForJob returns all match results for a job, best score first.
func (db *DB) ListMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT job_id, resume_id, score, matched_skills, missing_skills, updated_at
		 FROM matches WHERE job_id = $1
		 ORDER BY score DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.JobID, &m.ResumeID, &m.Score, &m.MatchedSkills, &m.MissingSkills, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match rows: %w", err)
	}
	return out, nil
}
