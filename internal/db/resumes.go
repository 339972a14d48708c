package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/resumelab/resume-analyzer/internal/types"
)

// SaveResume stores a resume and its extracted profile, returning the new ID.
// The profile is stored as JSONB so later reads do not re-run extraction.
// Every resume has an owning user; uploads go through the auth middleware.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, fileName, fileType, originalText string, profile *types.CandidateProfile) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, file_type, original_text, profile)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, fileName, fileType, originalText, profileJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var (
		resume      Resume
		profileJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, file_type, original_text, profile, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.UserID, &resume.FileName, &resume.FileType,
		&resume.OriginalText, &profileJSON, &resume.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	resume.Profile = &profile

	return &resume, nil
}

// ResumeFilters holds optional filters for listing resumes
type ResumeFilters struct {
	UserID uuid.UUID
	Limit  int
}

// ListResumes retrieves recent resumes, newest first
func (db *DB) ListResumes(ctx context.Context, filters ResumeFilters) ([]ResumeSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, file_name, file_type, COALESCE(profile->>'seniority', ''), created_at
		FROM resumes WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.FileName, &r.FileType, &r.Seniority, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// DeleteResume deletes a stored resume
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
