package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/resumelab/resume-analyzer/internal/types"
)

// Resume represents a stored resume with its extracted profile
type Resume struct {
	ID           uuid.UUID               `json:"id"`
	UserID       uuid.UUID               `json:"user_id"` // Owning user; uploads require authentication
	FileName     string                  `json:"file_name"`
	FileType     string                  `json:"file_type"`
	OriginalText string                  `json:"original_text,omitempty"`
	Profile      *types.CandidateProfile `json:"profile"`
	CreatedAt    time.Time               `json:"created_at"`
}

// ResumeSummary is a lightweight view of a resume for listing
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	Seniority string    `json:"seniority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
